package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/question-bank/internal/pkg/errors"
)

func uintPtr(v uint) *uint { return &v }

func TestQuestion_Validate_ValidQuestion(t *testing.T) {
	// Arrange
	question := &Question{
		Text:       "What is the largest lake in Africa?",
		Answer:     "Lake Victoria",
		Category:   uintPtr(3),
		Difficulty: 2,
	}

	// Act & Assert
	require.NoError(t, question.Validate(), "Вопрос с текстом и ответом должен проходить валидацию")
}

func TestQuestion_Validate_EmptyText(t *testing.T) {
	// Arrange
	question := &Question{
		Text:   "",
		Answer: "Lake Victoria",
	}

	// Act
	err := question.Validate()

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation, "Пустой текст вопроса должен давать ErrValidation")
}

func TestQuestion_Validate_WhitespaceOnlyAnswer(t *testing.T) {
	// Arrange
	question := &Question{
		Text:   "Who discovered penicillin?",
		Answer: "   ",
	}

	// Act
	err := question.Validate()

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation, "Ответ из одних пробелов должен давать ErrValidation")
}

func TestQuestion_Validate_OptionalFields(t *testing.T) {
	// Категория и сложность опциональны: валидация их не проверяет
	question := &Question{
		Text:   "La Giaconda is better known as what?",
		Answer: "Mona Lisa",
	}

	assert.NoError(t, question.Validate(), "Вопрос без категории и сложности должен проходить валидацию")
	assert.False(t, question.HasCategory(), "HasCategory должен вернуть false без категории")
}

func TestQuestion_HasCategory(t *testing.T) {
	// Arrange
	question := &Question{
		Text:     "Which country won the first ever soccer World Cup in 1930?",
		Answer:   "Uruguay",
		Category: uintPtr(6),
	}

	// Act & Assert
	assert.True(t, question.HasCategory(), "HasCategory должен вернуть true при заданной категории")
}
