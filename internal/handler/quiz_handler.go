package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/handler/dto"
	"github.com/yourusername/trivia-bank/internal/service"
)

// QuizHandler обрабатывает запросы игровой сессии викторины
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuizCategoryPayload представляет селектор категории в запросе викторины.
// ID — указатель: отсутствие поля отличимо от явного 0 ("любая категория").
type QuizCategoryPayload struct {
	ID   *uint  `json:"id"`
	Type string `json:"type"`
}

// DrawQuestionRequest представляет запрос очередного вопроса сессии.
// previous_questions накапливает клиент; сервер между вызовами ничего не хранит.
type DrawQuestionRequest struct {
	PreviousQuestions []uint               `json:"previous_questions"`
	QuizCategory      *QuizCategoryPayload `json:"quiz_category"`
}

// DrawQuestion выдает случайный еще не заданный вопрос сессии.
// Исчерпание кандидатов — не ошибка: ответ 200 с question: null,
// клиент по нему завершает игру.
// POST /api/quizzes
func (h *QuizHandler) DrawQuestion(c *gin.Context) {
	var req DrawQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest)
		return
	}

	// Отсутствующий или неполный селектор категории — ошибка клиента,
	// намеренно отличная от исчерпания сессии: у них разные действия
	// восстановления.
	if req.QuizCategory == nil || req.QuizCategory.ID == nil {
		RespondError(c, http.StatusBadRequest)
		return
	}

	question, err := h.quizService.DrawQuestion(*req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	if question == nil {
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"question": nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": dto.NewQuestionResponse(question),
	})
}
