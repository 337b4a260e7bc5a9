package repository

import (
	"github.com/yourusername/question-bank/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями.
// Категории создаются при начальном наполнении базы (cmd/seed)
// и в обычной работе только читаются.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id uint) (*entity.Category, error)
	GetAll() ([]entity.Category, error)
}
