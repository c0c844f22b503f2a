package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// QuestionService предоставляет методы для работы с банком вопросов:
// постраничный список, поиск, фильтр по категории, создание и удаление
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	config       *Config
}

// NewQuestionService создает новый сервис банка вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	config *Config,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		config:       config,
	}
}

// Categories возвращает справочник категорий.
// Пустой справочник — ErrBadRequest: так отвечает существующий API,
// когда категории еще не засеяны.
func (s *QuestionService) Categories() ([]entity.Category, error) {
	categories, err := s.categoryRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("no categories exist: %w", apperrors.ErrBadRequest)
	}
	return categories, nil
}

// ListPage возвращает страницу вопросов, общее количество вопросов до
// нарезки и справочник категорий. Пустая страница (номер за пределами
// выборки) — ErrNotFound.
func (s *QuestionService) ListPage(page int) ([]entity.Question, int, []entity.Category, error) {
	all, err := s.questionRepo.ListAll()
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to list questions: %w", err)
	}

	pageQuestions := PaginateQuestions(all, page)
	if len(pageQuestions) == 0 {
		return nil, 0, nil, fmt.Errorf("page %d is beyond the last page: %w", page, apperrors.ErrNotFound)
	}

	categories, err := s.categoryRepo.ListAll()
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return pageQuestions, len(all), categories, nil
}

// CurrentPage возвращает страницу вопросов и общее количество без политики
// "пустая страница — NotFound". Используется для обновленного списка в
// ответах create/delete: после удаления последняя страница может опустеть,
// и это не ошибка.
func (s *QuestionService) CurrentPage(page int) ([]entity.Question, int, error) {
	all, err := s.questionRepo.ListAll()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}
	return PaginateQuestions(all, page), len(all), nil
}

// Search возвращает вопросы, текст которых содержит term без учета
// регистра, и их количество. Пустой term совпадает со всеми вопросами.
// Нулевой результат — ErrUnprocessable, пока включена политика
// ZeroMatchesAsError.
func (s *QuestionService) Search(term string) ([]entity.Question, int, error) {
	questions, err := s.questionRepo.Find(repository.QuestionFilter{SearchTerm: term})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search questions: %w", err)
	}

	if len(questions) == 0 && s.config.ZeroMatchesAsError {
		return nil, 0, fmt.Errorf("no questions match %q: %w", term, apperrors.ErrUnprocessable)
	}

	return questions, len(questions), nil
}

// QuestionsByCategory возвращает вопросы категории по клиентскому индексу,
// их количество и хранимый id категории, использованный для фильтра.
// Отсутствие совпадений (в том числе несуществующая категория) — ErrNotFound.
func (s *QuestionService) QuestionsByCategory(clientCategoryID uint) ([]entity.Question, int, uint, error) {
	storedID := StoredCategoryID(clientCategoryID)

	questions, err := s.questionRepo.Find(repository.QuestionFilter{CategoryID: storedID})
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to filter questions by category %d: %w", storedID, err)
	}

	if len(questions) == 0 {
		return nil, 0, 0, fmt.Errorf("no questions in category %d: %w", storedID, apperrors.ErrNotFound)
	}

	return questions, len(questions), storedID, nil
}

// Create сохраняет новый вопрос и возвращает его с присвоенным id
func (s *QuestionService) Create(question *entity.Question) (*entity.Question, error) {
	if !question.HasRequiredFields() {
		return nil, fmt.Errorf("question, answer and category are required: %w", apperrors.ErrBadRequest)
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	return question, nil
}

// CreateBatch валидирует и сохраняет пакет вопросов одной транзакцией
func (s *QuestionService) CreateBatch(questions []entity.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("no questions provided: %w", apperrors.ErrBadRequest)
	}

	for i := range questions {
		if !questions[i].HasRequiredFields() {
			return fmt.Errorf("question #%d is missing required fields: %w", i+1, apperrors.ErrBadRequest)
		}
	}

	if err := s.questionRepo.CreateBatch(questions); err != nil {
		return fmt.Errorf("failed to create questions batch: %w", err)
	}

	log.Printf("[QuestionService] Batch upload: добавлено %d вопросов", len(questions))
	return nil
}

// Delete удаляет вопрос по id. Несуществующий id — ErrNotFound;
// операция однократная, без повторов.
func (s *QuestionService) Delete(id uint) error {
	if err := s.questionRepo.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("question %d does not exist: %w", id, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	return nil
}

// ExportData возвращает все вопросы и отображение id категории в название
// для выгрузки банка целиком
func (s *QuestionService) ExportData() ([]entity.Question, map[uint]string, error) {
	questions, err := s.questionRepo.ListAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list questions for export: %w", err)
	}

	categories, err := s.categoryRepo.ListAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list categories for export: %w", err)
	}

	labels := make(map[uint]string, len(categories))
	for _, c := range categories {
		labels[c.ID] = c.Type
	}

	return questions, labels, nil
}
