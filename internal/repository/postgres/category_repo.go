package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/question-bank/internal/domain/entity"
	apperrors "github.com/yourusername/question-bank/internal/pkg/errors"
)

// CategoryRepo реализует repository.CategoryRepository
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo создает новый репозиторий категорий
func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create создает новую категорию (используется при начальном наполнении)
func (r *CategoryRepo) Create(category *entity.Category) error {
	return r.db.Create(category).Error
}

// GetByID возвращает категорию по ID.
// Существование проверяется напрямую по первичному ключу,
// а не сравнением ID с количеством категорий.
func (r *CategoryRepo) GetByID(id uint) (*entity.Category, error) {
	var category entity.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetAll возвращает все категории, упорядоченные по ID
func (r *CategoryRepo) GetAll() ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.Order("id").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
