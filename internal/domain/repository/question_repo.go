package repository

import (
	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// QuestionFilter описывает составной фильтр выборки вопросов.
// Поля комбинируются через AND; нулевое значение поля снимает ограничение,
// так что пустой фильтр эквивалентен выборке всей таблицы.
type QuestionFilter struct {
	// CategoryID ограничивает выборку одной категорией. 0 — любая категория.
	CategoryID uint

	// SearchTerm — подстрока для регистронезависимого поиска по тексту
	// вопроса. Пустая строка совпадает с любым вопросом.
	SearchTerm string

	// ExcludeIDs исключает вопросы с перечисленными id
	ExcludeIDs []uint
}

// QuestionRepository определяет методы для работы с вопросами в хранилище.
// Все методы чтения — чистые запросы к текущему состоянию БД, без кеширования.
type QuestionRepository interface {
	// ListAll возвращает все вопросы, отсортированные по id по возрастанию
	ListAll() ([]entity.Question, error)

	// Find возвращает вопросы, удовлетворяющие фильтру,
	// отсортированные по id по возрастанию
	Find(filter QuestionFilter) ([]entity.Question, error)

	// GetByID возвращает вопрос по id или ErrNotFound
	GetByID(id uint) (*entity.Question, error)

	// Create сохраняет новый вопрос; id присваивает хранилище
	Create(question *entity.Question) error

	// CreateBatch сохраняет пакет вопросов в одной транзакции
	CreateBatch(questions []entity.Question) error

	// Delete удаляет вопрос по id; возвращает ErrNotFound,
	// если вопроса с таким id нет
	Delete(id uint) error
}
