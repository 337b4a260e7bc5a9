package entity

import (
	"strings"

	apperrors "github.com/yourusername/question-bank/internal/pkg/errors"
)

// Question представляет вопрос в банке вопросов.
// Category хранится как есть, без проверки ссылочной целостности:
// вопрос может ссылаться на несуществующую категорию или не иметь её вовсе.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Text       string `gorm:"column:question;size:1000;not null" json:"question"`
	Answer     string `gorm:"size:1000;not null" json:"answer"`
	Category   *uint  `gorm:"column:category;index" json:"category"`
	Difficulty int    `json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// Validate проверяет обязательные поля перед созданием.
// Текст вопроса и ответа не могут быть пустыми; категория и сложность опциональны.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return apperrors.ErrValidation
	}
	if strings.TrimSpace(q.Answer) == "" {
		return apperrors.ErrValidation
	}
	return nil
}

// HasCategory сообщает, привязан ли вопрос к категории
func (q *Question) HasCategory() bool {
	return q.Category != nil
}
