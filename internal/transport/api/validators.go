package api

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-bills/internal/domain"
)

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param() // получаем значение из тега
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

// validateMoney проверяет денежную сумму: не отрицательная, не больше двух знаков после запятой и
// помещается в NUMERIC(10,2). decimal.Decimal приходит сюда строкой через decimalTypeFunc.
func validateMoney(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	amount, err := decimal.NewFromString(str)
	if err != nil {
		return false
	}
	return domain.ValidateMoney(fl.FieldName(), amount) == nil
}

func decimalTypeFunc(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

var (
	registerOnce sync.Once
	registerErr  error
)

func registerValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
			return
		}
		v.RegisterCustomTypeFunc(decimalTypeFunc, decimal.Decimal{})
		if err := v.RegisterValidation("max_bytes", validateMaxBytes); err != nil {
			registerErr = fmt.Errorf("validator registration: %s", err.Error())
			return
		}
		if err := v.RegisterValidation("money", validateMoney); err != nil {
			registerErr = fmt.Errorf("validator registration: %s", err.Error())
		}
	})
	return registerErr
}
