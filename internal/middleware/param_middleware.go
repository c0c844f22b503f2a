package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/handler"
)

// ExtractUintParam создает middleware для извлечения и валидации числового
// параметра URL. paramName — имя параметра в маршруте (например, "id"),
// contextKey — ключ, под которым значение сохраняется в контексте Gin.
// Нечисловое значение — 400 в конверте исторического контракта.
func ExtractUintParam(paramName, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(paramName)
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			handler.RespondError(c, http.StatusBadRequest)
			c.Abort()
			return
		}
		c.Set(contextKey, uint(id))
		c.Next()
	}
}
