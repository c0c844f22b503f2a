package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// makeQuestions создает n вопросов с последовательными id для тестов нарезки
func makeQuestions(n int) []entity.Question {
	questions := make([]entity.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, entity.Question{
			ID:         uint(i),
			Question:   fmt.Sprintf("Вопрос %d", i),
			Answer:     fmt.Sprintf("Ответ %d", i),
			CategoryID: 1,
			Difficulty: 1,
		})
	}
	return questions
}

func TestPaginateQuestions_FirstPage(t *testing.T) {
	// Arrange
	questions := makeQuestions(25)

	// Act
	page := PaginateQuestions(questions, 1)

	// Assert
	require.Len(t, page, QuestionsPerPage, "первая страница должна быть полной")
	assert.Equal(t, uint(1), page[0].ID)
	assert.Equal(t, uint(10), page[9].ID)
}

func TestPaginateQuestions_LastPartialPage(t *testing.T) {
	// Arrange: 25 вопросов — третья страница содержит остаток из 5
	questions := makeQuestions(25)

	// Act
	page := PaginateQuestions(questions, 3)

	// Assert
	require.Len(t, page, 5)
	assert.Equal(t, uint(21), page[0].ID)
	assert.Equal(t, uint(25), page[4].ID)
}

func TestPaginateQuestions_BeyondRangeIsEmptyNotError(t *testing.T) {
	// Arrange
	questions := makeQuestions(25)

	// Act & Assert: выход за пределы — пустая страница, а не паника/ошибка
	assert.Empty(t, PaginateQuestions(questions, 4))
	assert.Empty(t, PaginateQuestions(questions, 1000))
	assert.Empty(t, PaginateQuestions([]entity.Question{}, 1))
}

func TestPaginateQuestions_PageBelowOneTreatedAsFirst(t *testing.T) {
	// Arrange
	questions := makeQuestions(15)

	// Act & Assert: отсутствующий параметр страницы приходит как 1,
	// но и мусорные значения меньше единицы не должны ломать нарезку
	assert.Equal(t, PaginateQuestions(questions, 1), PaginateQuestions(questions, 0))
	assert.Equal(t, PaginateQuestions(questions, 1), PaginateQuestions(questions, -5))
}

func TestPaginateQuestions_PagesRoundTrip(t *testing.T) {
	// Arrange: размер не кратен странице, чтобы проверить хвост
	questions := makeQuestions(37)

	// Act: собираем все страницы подряд
	var collected []entity.Question
	for page := 1; ; page++ {
		chunk := PaginateQuestions(questions, page)
		if len(chunk) == 0 {
			break
		}
		assert.LessOrEqual(t, len(chunk), QuestionsPerPage, "страница не может превышать размер")
		collected = append(collected, chunk...)
	}

	// Assert: конкатенация страниц восстанавливает исходную последовательность
	require.Equal(t, questions, collected)
}
