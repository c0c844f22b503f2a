package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// Моки MockQuestionRepository и MockCategoryRepository объявлены
// в question_service_test.go.

func TestQuizService_DrawQuestion_NeverReturnsPreviousIDs(t *testing.T) {
	// Arrange: репозиторий по контракту уже исключил previousIDs;
	// проверяем, что сервис передает исключения фильтром и не выдает
	// ничего за пределами множества кандидатов
	qRepo := new(MockQuestionRepository)
	cRepo := new(MockCategoryRepository)
	previous := []uint{1, 2, 3}
	eligible := []entity.Question{
		{ID: 4, Question: "q4", Answer: "a4", CategoryID: 2, Difficulty: 1},
		{ID: 5, Question: "q5", Answer: "a5", CategoryID: 2, Difficulty: 2},
	}
	qRepo.On("Find", repository.QuestionFilter{CategoryID: 2, ExcludeIDs: previous}).
		Return(eligible, nil)
	cRepo.On("GetByID", uint(2)).Return(&entity.Category{ID: 2, Type: "Art"}, nil)
	svc := NewQuizService(qRepo, cRepo)

	// Act & Assert: много розыгрышей — ни один не возвращает исключенный id
	for i := 0; i < 100; i++ {
		question, err := svc.DrawQuestion(2, previous)
		require.NoError(t, err)
		require.NotNil(t, question)
		assert.NotContains(t, previous, question.ID)
		assert.Equal(t, uint(2), question.CategoryID)
	}
	qRepo.AssertExpectations(t)
}

func TestQuizService_DrawQuestion_ExhaustionReturnsNilNotError(t *testing.T) {
	// Arrange: все вопросы категории уже заданы
	qRepo := new(MockQuestionRepository)
	cRepo := new(MockCategoryRepository)
	previous := []uint{1, 2, 3}
	cRepo.On("GetByID", uint(2)).Return(&entity.Category{ID: 2, Type: "Art"}, nil)
	qRepo.On("Find", repository.QuestionFilter{CategoryID: 2, ExcludeIDs: previous}).
		Return([]entity.Question{}, nil)
	svc := NewQuizService(qRepo, cRepo)

	// Act
	question, err := svc.DrawQuestion(2, previous)

	// Assert: исчерпание — нормальное завершение сессии
	require.NoError(t, err)
	assert.Nil(t, question)
}

func TestQuizService_DrawQuestion_UnknownCategoryIsBadRequest(t *testing.T) {
	// Arrange
	qRepo := new(MockQuestionRepository)
	cRepo := new(MockCategoryRepository)
	cRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound)
	svc := NewQuizService(qRepo, cRepo)

	// Act
	_, err := svc.DrawQuestion(99, nil)

	// Assert: несуществующая категория — ошибка клиента,
	// отличимая от исчерпания
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	qRepo.AssertNotCalled(t, "Find", mock.Anything)
}

func TestQuizService_DrawQuestion_AnyCategorySkipsCategoryLookup(t *testing.T) {
	// Arrange: селектор "любая категория" не должен ходить в справочник
	qRepo := new(MockQuestionRepository)
	cRepo := new(MockCategoryRepository)
	eligible := []entity.Question{
		{ID: 1, Question: "q1", Answer: "a1", CategoryID: 1, Difficulty: 1},
	}
	qRepo.On("Find", repository.QuestionFilter{CategoryID: AnyCategory, ExcludeIDs: []uint(nil)}).
		Return(eligible, nil)
	svc := NewQuizService(qRepo, cRepo)

	// Act
	question, err := svc.DrawQuestion(AnyCategory, nil)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, question)
	cRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestQuizService_DrawQuestion_CoversAllEligibleOverTrials(t *testing.T) {
	// Arrange: при достаточном числе розыгрышей каждый кандидат
	// должен выпасть хотя бы раз — выбор не вырожден в константу
	qRepo := new(MockQuestionRepository)
	cRepo := new(MockCategoryRepository)
	eligible := makeQuestions(5)
	qRepo.On("Find", repository.QuestionFilter{}).Return(eligible, nil)
	svc := NewQuizService(qRepo, cRepo)

	// Act
	seen := make(map[uint]int)
	for i := 0; i < 500; i++ {
		question, err := svc.DrawQuestion(AnyCategory, nil)
		require.NoError(t, err)
		require.NotNil(t, question)
		seen[question.ID]++
	}

	// Assert
	require.Len(t, seen, 5, "каждый из 5 кандидатов должен выпасть хотя бы раз за 500 попыток")
	for id, count := range seen {
		assert.Greater(t, count, 0, "вопрос %d не выпал ни разу", id)
	}
}
