package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/question-bank/internal/domain/entity"
	apperrors "github.com/yourusername/question-bank/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос; ID присваивается базой
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// Delete удаляет вопрос. Удаление отсутствующего ID возвращает ErrNotFound,
// чтобы вызывающий код мог отличить его от успешного удаления.
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

// ListAll возвращает все вопросы, упорядоченные по возрастанию ID
func (r *QuestionRepo) ListAll() ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListByCategory возвращает вопросы указанной категории
func (r *QuestionRepo) ListByCategory(categoryID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("category = ?", categoryID).Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Search возвращает вопросы, текст которых содержит term как подстроку.
// ILIKE дает регистронезависимое сравнение на стороне PostgreSQL.
func (r *QuestionRepo) Search(term string) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("question ILIKE ?", "%"+term+"%").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListExcluding возвращает вопросы, не входящие в excludeIDs,
// опционально ограниченные категорией
func (r *QuestionRepo) ListExcluding(excludeIDs []uint, categoryID *uint) ([]entity.Question, error) {
	query := r.db.Model(&entity.Question{})
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	if categoryID != nil {
		query = query.Where("category = ?", *categoryID)
	}

	var questions []entity.Question
	err := query.Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
