package repository

import (
	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// CategoryRepository определяет методы чтения справочника категорий
type CategoryRepository interface {
	// ListAll возвращает все категории, отсортированные по id по возрастанию
	ListAll() ([]entity.Category, error)

	// GetByID возвращает категорию по id или ErrNotFound
	GetByID(id uint) (*entity.Category, error)
}
