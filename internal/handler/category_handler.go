package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/handler/dto"
	"github.com/yourusername/trivia-bank/internal/service"
)

// CategoryHandler обрабатывает запросы к справочнику категорий
type CategoryHandler struct {
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(questionService *service.QuestionService) *CategoryHandler {
	return &CategoryHandler{questionService: questionService}
}

// ListCategories возвращает справочник категорий
// GET /api/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.questionService.Categories()
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": dto.NewCategoryListResponse(categories),
	})
}

// QuestionsByCategory возвращает вопросы категории по клиентскому индексу.
// Индекс в пути — клиентский (с нуля); в ответе current_category — хранимый
// id, который реально использовался для фильтра.
// GET /api/categories/:id/questions
func (h *CategoryHandler) QuestionsByCategory(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста

	questions, total, currentCategory, err := h.questionService.QuestionsByCategory(categoryID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        dto.NewQuestionListResponse(questions),
		"total_questions":  total,
		"current_category": currentCategory,
	})
}
