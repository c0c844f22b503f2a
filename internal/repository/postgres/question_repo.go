package postgres

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// ListAll возвращает все вопросы, отсортированные по id
func (r *QuestionRepo) ListAll() ([]entity.Question, error) {
	return r.Find(repository.QuestionFilter{})
}

// Find возвращает вопросы, удовлетворяющие фильтру, отсортированные по id.
// Фильтр раскладывается в параметризованные условия WHERE; никакой
// конкатенации строк запроса.
func (r *QuestionRepo) Find(filter repository.QuestionFilter) ([]entity.Question, error) {
	query := r.db.Model(&entity.Question{})

	if filter.CategoryID != 0 {
		query = query.Where("category = ?", filter.CategoryID)
	}
	if filter.SearchTerm != "" {
		// ESCAPE гарантирует, что строка поиска сравнивается как
		// литеральная подстрока, а не как шаблон LIKE
		query = query.Where("question ILIKE ? ESCAPE '\\'", "%"+escapeLikePattern(filter.SearchTerm)+"%")
	}
	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filter.ExcludeIDs)
	}

	var questions []entity.Question
	if err := query.Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Create создает новый вопрос; id присваивается базой
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// CreateBatch создает пакет вопросов в одной транзакции
func (r *QuestionRepo) CreateBatch(questions []entity.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
}

// Delete удаляет вопрос по id.
// Удаление уже удаленного id — это ErrNotFound, а не успех:
// различие наблюдаемо для клиента.
func (r *QuestionRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// escapeLikePattern экранирует метасимволы LIKE (%, _, \), чтобы
// пользовательская строка поиска не интерпретировалась как шаблон.
func escapeLikePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
