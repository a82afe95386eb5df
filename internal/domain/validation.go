package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	MaxTitleLength = 200

	// MoneyMaxDigits и MoneyDecimalPlaces соответствуют колонкам NUMERIC(10,2).
	MoneyMaxDigits     = 10
	MoneyDecimalPlaces = 2
)

var maxMoney = decimal.New(1, MoneyMaxDigits-MoneyDecimalPlaces) //nolint:gochecknoglobals

// ValidateTitle проверяет, что заголовок непустой и не длиннее MaxTitleLength символов.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "must not be empty")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return NewValidationError("title", "is too long")
	}
	return nil
}

// ValidateMoney проверяет денежную сумму: >= 0, не более двух знаков после запятой и помещается в NUMERIC(10,2).
func ValidateMoney(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return NewValidationError(field, "must not be negative")
	}
	return validatePrecision(field, amount)
}

// ValidatePositiveMoney то же, что ValidateMoney, но ноль тоже запрещен.
func ValidatePositiveMoney(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return NewValidationError(field, "must be greater than zero")
	}
	return validatePrecision(field, amount)
}

func validatePrecision(field string, amount decimal.Decimal) error {
	if !amount.Equal(amount.Truncate(MoneyDecimalPlaces)) {
		return NewValidationError(field, "must have at most two decimal places")
	}
	if amount.Abs().GreaterThanOrEqual(maxMoney) {
		return NewValidationError(field, "is too large")
	}
	return nil
}
