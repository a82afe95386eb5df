package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/groph-bills/internal/domain"
	"github.com/fsdevblog/groph-bills/internal/transport/api/middlewares"
)

var errTryAgain = errors.New("concurrent update, try again")

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа -
// вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

// billIDParam читает :id из пути. При некорректном значении отвечает 404 и возвращает false.
func billIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// bindJSON биндит тело запроса. Ошибки валидатора отдаются как 422 с перечнем полей, прочие - 400.
func bindJSON(c *gin.Context, params any) bool {
	bindErr := c.ShouldBindJSON(params)
	if bindErr == nil {
		return true
	}
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		fields := make(gin.H, len(valErrs))
		for _, fe := range valErrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": fields})
		return false
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
	return false
}

// abortWithServiceErr переводит ошибку сервисного слоя в http ответ.
//
//   - *domain.ValidationError - 422 с полем.
//   - domain.ErrDuplicateParticipant, domain.ErrInvariantViolation - 409 с текстом причины.
//   - domain.ErrConcurrencyConflict - 409, клиенту стоит повторить запрос.
//   - domain.ErrRecordNotFound - 404.
//   - остальное - 500, текст ошибки только в логе.
func abortWithServiceErr(c *gin.Context, err error) {
	var (
		valErr *domain.ValidationError
		invErr *domain.InvariantError
		dupErr *domain.DuplicateParticipantError
	)
	switch {
	case errors.As(err, &valErr):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, valErr).
			SetType(gin.ErrorTypePublic).
			SetMeta(gin.H{"field": valErr.Field})
	case errors.As(err, &dupErr):
		_ = c.AbortWithError(http.StatusConflict, dupErr).SetType(gin.ErrorTypePublic)
	case errors.As(err, &invErr):
		_ = c.AbortWithError(http.StatusConflict, invErr).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrConcurrencyConflict):
		_ = c.AbortWithError(http.StatusConflict, errTryAgain).SetType(gin.ErrorTypePublic)
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePrivate)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
