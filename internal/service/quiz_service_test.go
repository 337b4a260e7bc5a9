package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/question-bank/internal/domain/entity"
)

func TestQuizService_NextQuestion_AllCategoriesDisablesFilter(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("ListExcluding", []uint(nil), (*uint)(nil)).
		Return(makeSelection(3), nil)

	svc := NewQuizService(questionRepo)

	// Act
	question, err := svc.NextQuestion(AllCategories, nil)

	// Assert: категория 0 не попадает в фильтр запроса
	require.NoError(t, err)
	require.NotNil(t, question)
	questionRepo.AssertExpectations(t)
}

func TestQuizService_NextQuestion_ExampleScenario(t *testing.T) {
	// Сценарий: категория {1: "Science"} с вопросами 1 и 2.
	// После вопроса 1 должен прийти вопрос 2, затем — завершение игры.
	questionRepo := new(MockQuestionRepository)

	remaining := []entity.Question{
		{ID: 2, Text: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: uintPtr(1)},
	}
	questionRepo.On("ListExcluding", []uint{1}, uintPtr(1)).Return(remaining, nil).Once()
	questionRepo.On("ListExcluding", []uint{1, 2}, uintPtr(1)).Return([]entity.Question{}, nil).Once()

	svc := NewQuizService(questionRepo)

	// Act & Assert: единственный оставшийся вопрос
	question, err := svc.NextQuestion(1, []uint{1})
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, uint(2), question.ID)

	// Act & Assert: пул исчерпан — (nil, nil), а не ошибка
	question, err = svc.NextQuestion(1, []uint{1, 2})
	require.NoError(t, err)
	assert.Nil(t, question)

	questionRepo.AssertExpectations(t)
}

func TestQuizService_NextQuestion_ExhaustionCoversWholePool(t *testing.T) {
	// До исчерпания пула объединение всех выданных вопросов
	// равно полному пулу, без повторов
	const poolSize = 5
	all := makeSelection(poolSize)

	questionRepo := new(MockQuestionRepository)
	svc := NewQuizService(questionRepo)

	var previous []uint
	seen := make(map[uint]bool)

	for i := 0; i < poolSize; i++ {
		// Пул на этом шаге — все вопросы, кроме уже заданных
		var pool []entity.Question
		for _, q := range all {
			if !seen[q.ID] {
				pool = append(pool, q)
			}
		}
		questionRepo.On("ListExcluding", previous, (*uint)(nil)).Return(pool, nil).Once()

		question, err := svc.NextQuestion(AllCategories, previous)
		require.NoError(t, err)
		require.NotNil(t, question)
		assert.False(t, seen[question.ID], "Вопрос не должен выдаваться повторно")

		seen[question.ID] = true
		previous = append(previous, question.ID)
	}

	assert.Len(t, seen, poolSize, "До исчерпания должны быть выданы все вопросы пула")

	// Последний вызов — завершение игры
	questionRepo.On("ListExcluding", previous, (*uint)(nil)).Return([]entity.Question{}, nil).Once()
	question, err := svc.NextQuestion(AllCategories, previous)
	require.NoError(t, err)
	assert.Nil(t, question)
}

func TestQuizService_NextQuestion_StoreError(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("ListExcluding", []uint(nil), (*uint)(nil)).
		Return(nil, errors.New("connection refused"))

	svc := NewQuizService(questionRepo)

	// Act
	question, err := svc.NextQuestion(AllCategories, nil)

	// Assert
	require.Error(t, err)
	assert.Nil(t, question)
}
