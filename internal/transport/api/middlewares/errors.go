package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	case http.StatusConflict:
		return "conflict"
	case http.StatusGatewayTimeout:
		return "timeout"
	default:
		return "internal server error"
	}
}

// Errors отдает клиенту первую ошибку из c.Errors. Текст публичных ошибок (gin.ErrorTypePublic) уходит клиенту
// как есть, для остальных - общий текст по статусу. Ответ в JSON, если клиент явно не просит text/plain.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// тело уже отдано обработчиком
		if len(c.Errors) == 0 || c.Writer.Size() > 0 {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]
		var msg string
		if firstErr.IsType(gin.ErrorTypePublic) {
			msg = firstErr.Error()
		} else {
			msg = statusErrorText(c.Writer.Status())
		}

		status := c.Writer.Status()
		if strings.Contains(c.GetHeader("Accept"), "text/plain") {
			c.String(status, msg)
			c.Abort()
			return
		}

		body := gin.H{"error": msg}
		if reqID := c.GetString(RequestIDKey); reqID != "" {
			body["request_id"] = reqID
		}
		if meta, ok := firstErr.Meta.(gin.H); ok {
			for k, v := range meta {
				body[k] = v
			}
		}
		c.JSON(status, body)
		c.Abort()
	}
}
