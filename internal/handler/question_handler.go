package handler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
	"github.com/yourusername/trivia-bank/internal/service"
)

// QuestionHandler обрабатывает запросы к банку вопросов
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListQuestions возвращает страницу вопросов со справочником категорий
// GET /api/questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		RespondError(c, http.StatusBadRequest)
		return
	}

	questions, total, categories, err := h.questionService.ListPage(page)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"questions":       dto.NewQuestionListResponse(questions),
		"total_questions": total,
		"categories":      dto.NewCategoryListResponse(categories),
	})
}

// CreateQuestionRequest представляет запрос на создание вопроса.
// Все четыре поля обязательны по контракту. Difficulty — указатель:
// required отклоняет отсутствие поля, но пропускает явный 0
// (значение сложности не интерпретируется сервисом).
type CreateQuestionRequest struct {
	Question   string `json:"question" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
	Category   uint   `json:"category" binding:"required"`
	Difficulty *int   `json:"difficulty" binding:"required"`
}

// CreateQuestion создает вопрос и возвращает обновленную страницу списка
// POST /api/questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest)
		return
	}

	page, ok := pageParam(c)
	if !ok {
		RespondError(c, http.StatusBadRequest)
		return
	}

	created, err := h.questionService.Create(&entity.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		CategoryID: req.Category,
		Difficulty: *req.Difficulty,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	questions, total, err := h.questionService.CurrentPage(page)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"created":         created.ID,
		"questions":       dto.NewQuestionListResponse(questions),
		"total_questions": total,
	})
}

// BatchCreateRequest представляет запрос на пакетную загрузку вопросов
type BatchCreateRequest struct {
	Questions []CreateQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

// CreateQuestionsBatch загружает пакет вопросов одной транзакцией
// POST /api/questions/batch
func (h *QuestionHandler) CreateQuestionsBatch(c *gin.Context) {
	var req BatchCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest)
		return
	}

	questions := make([]entity.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, entity.Question{
			Question:   q.Question,
			Answer:     q.Answer,
			CategoryID: q.Category,
			Difficulty: *q.Difficulty,
		})
	}

	if err := h.questionService.CreateBatch(questions); err != nil {
		HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"created": len(questions),
	})
}

// DeleteQuestion удаляет вопрос и возвращает обновленную страницу списка
// DELETE /api/questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	page, ok := pageParam(c)
	if !ok {
		RespondError(c, http.StatusBadRequest)
		return
	}

	if err := h.questionService.Delete(questionID); err != nil {
		// Legacy-контракт: удаление несуществующего id старый API отдавал
		// как 422, а не 404. Внутри вид ошибки остается NotFound.
		if errors.Is(err, apperrors.ErrNotFound) {
			RespondError(c, http.StatusUnprocessableEntity)
			return
		}
		HandleServiceError(c, err)
		return
	}

	questions, total, err := h.questionService.CurrentPage(page)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"deleted":         questionID,
		"questions":       dto.NewQuestionListResponse(questions),
		"total_questions": total,
	})
}

// SearchRequest представляет запрос поиска по подстроке.
// Пустой или отсутствующий searchTerm совпадает со всеми вопросами.
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// SearchQuestions ищет вопросы по подстроке без учета регистра
// POST /api/questions/search
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest)
		return
	}

	questions, total, err := h.questionService.Search(req.SearchTerm)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"questions":       dto.NewQuestionListResponse(questions),
		"total_questions": total,
	})
}

// ExportQuestions выгружает весь банк вопросов в CSV или Excel
// GET /api/questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	questions, labels, err := h.questionService.ExportData()
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, labels, filename)
	default:
		h.exportCSV(c, questions, labels, filename)
	}
}

// exportCSV пишет банк вопросов в CSV с корректным экранированием
func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.Question, labels map[uint]string, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"ID", "Question", "Answer", "Category", "Difficulty"})

	for _, q := range questions {
		writer.Write([]string{
			strconv.FormatUint(uint64(q.ID), 10),
			q.Question,
			q.Answer,
			labels[q.CategoryID],
			strconv.Itoa(q.Difficulty),
		})
	}
}

// exportXLSX пишет банк вопросов в Excel через StreamWriter
func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.Question, labels map[uint]string, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuestionHandler] Ошибка создания StreamWriter: %v", err)
		RespondError(c, http.StatusInternalServerError)
		return
	}

	headers := []interface{}{"ID", "Question", "Answer", "Category", "Difficulty"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи заголовков: %v", err)
	}

	for i, q := range questions {
		cell := fmt.Sprintf("A%d", i+2) // Первая строка — заголовки
		row := []interface{}{q.ID, q.Question, q.Answer, labels[q.CategoryID], q.Difficulty}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[QuestionHandler] Ошибка записи строки %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuestionHandler] Ошибка завершения StreamWriter: %v", err)
		RespondError(c, http.StatusInternalServerError)
		return
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuestionHandler] Ошибка отправки файла: %v", err)
	}
}
