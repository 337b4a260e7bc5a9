package repository

import (
	"github.com/yourusername/question-bank/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(question *entity.Question) error
	Delete(id uint) error

	// ListAll возвращает все вопросы, упорядоченные по возрастанию ID
	ListAll() ([]entity.Question, error)

	// ListByCategory возвращает вопросы указанной категории
	ListByCategory(categoryID uint) ([]entity.Question, error)

	// Search возвращает вопросы, текст которых содержит подстроку term
	// (без учёта регистра)
	Search(term string) ([]entity.Question, error)

	// ListExcluding возвращает вопросы, ID которых не входят в excludeIDs.
	// Если categoryID не nil, выборка дополнительно ограничивается категорией.
	ListExcluding(excludeIDs []uint, categoryID *uint) ([]entity.Question, error)
}
