package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// StatusMessage возвращает текст сообщения для кода ошибки.
// Тексты — часть внешнего контракта, существующий клиент сравнивает их
// со строками из обработчиков ошибок старого API.
func StatusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusMethodNotAllowed:
		return "method not allowed"
	case http.StatusUnprocessableEntity:
		return "unprocessable"
	default:
		return "internal server error"
	}
}

// RespondError отправляет ошибку в конверте исторического контракта:
// {"success": false, "error": <код>, "message": <текст>}
func RespondError(c *gin.Context, status int) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   status,
		"message": StatusMessage(status),
	})
}

// HandleServiceError переводит доменную ошибку в HTTP-статус.
// Единственное место, где виды ошибок становятся статусами; сервисы и
// репозитории про HTTP не знают. Экспортирована, потому что маршрутизатор
// направляет сюда NoMethod с ErrMethodNotAllowed.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		RespondError(c, http.StatusNotFound)
	case errors.Is(err, apperrors.ErrBadRequest):
		RespondError(c, http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrUnprocessable):
		RespondError(c, http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrMethodNotAllowed):
		RespondError(c, http.StatusMethodNotAllowed)
	default:
		log.Printf("[Handler] Внутренняя ошибка: %v", err)
		RespondError(c, http.StatusInternalServerError)
	}
}

// pageParam извлекает параметр ?page= (по умолчанию 1).
// Нечисловое значение — ошибка клиента, не молчаливый откат к первой странице.
func pageParam(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return page, true
}
