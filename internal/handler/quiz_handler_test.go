package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/yourusername/question-bank/internal/domain/entity"
	"github.com/yourusername/question-bank/internal/service"
)

func newQuizHandlerWithMocks() (*QuizHandler, *MockQuestionRepoForHandler) {
	questionRepo := new(MockQuestionRepoForHandler)
	svc := service.NewQuizService(questionRepo)
	return NewQuizHandler(svc), questionRepo
}

func TestQuizNextQuestion_Success(t *testing.T) {
	// Arrange
	handler, questionRepo := newQuizHandlerWithMocks()
	pool := []entity.Question{
		{ID: 2, Text: "question 2", Answer: "answer 2", Category: uintPtrForHandler(1)},
	}
	questionRepo.On("ListExcluding", []uint{1}, uintPtrForHandler(1)).Return(pool, nil)

	body := map[string]interface{}{
		"quiz_category":      map[string]interface{}{"id": 1},
		"previous_questions": []uint{1},
	}
	c, w := newTestGinContext("POST", "/quizzes", body)

	// Act
	handler.NextQuestion(c)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])

	question := resp["question"].(map[string]interface{})
	assert.Equal(t, float64(2), question["id"])
	assert.Len(t, resp["previousQuestion"], 1, "previousQuestion должен повторять previous_questions из запроса")
}

func TestQuizNextQuestion_AllCategories(t *testing.T) {
	// Arrange: категория 0 означает отсутствие фильтра
	handler, questionRepo := newQuizHandlerWithMocks()
	pool := []entity.Question{{ID: 7, Text: "question 7", Answer: "answer 7"}}
	questionRepo.On("ListExcluding", []uint(nil), (*uint)(nil)).Return(pool, nil)

	body := map[string]interface{}{
		"quiz_category": map[string]interface{}{"id": 0},
	}
	c, w := newTestGinContext("POST", "/quizzes", body)

	// Act
	handler.NextQuestion(c)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	question := resp["question"].(map[string]interface{})
	assert.Equal(t, float64(7), question["id"])
}

func TestQuizNextQuestion_PoolExhausted(t *testing.T) {
	// Arrange
	handler, questionRepo := newQuizHandlerWithMocks()
	questionRepo.On("ListExcluding", []uint{1, 2}, uintPtrForHandler(1)).
		Return([]entity.Question{}, nil)

	body := map[string]interface{}{
		"quiz_category":      map[string]interface{}{"id": 1},
		"previous_questions": []uint{1, 2},
	}
	c, w := newTestGinContext("POST", "/quizzes", body)

	// Act
	handler.NextQuestion(c)

	// Assert: исчерпанный пул — сигнал клиенту завершить игру
	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["forceEnd"])
	assert.NotContains(t, resp, "question")
}

func TestQuizNextQuestion_MalformedBody(t *testing.T) {
	// Arrange
	handler, questionRepo := newQuizHandlerWithMocks()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/quizzes", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	// Act
	handler.NextQuestion(c)

	// Assert
	assertErrorEnvelope(t, w, http.StatusBadRequest, "Bad request")
	questionRepo.AssertNotCalled(t, "ListExcluding", mock.Anything, mock.Anything)
}

func TestQuizNextQuestion_StoreError(t *testing.T) {
	// Arrange
	handler, questionRepo := newQuizHandlerWithMocks()
	questionRepo.On("ListExcluding", []uint(nil), (*uint)(nil)).
		Return(nil, assert.AnError)

	body := map[string]interface{}{
		"quiz_category": map[string]interface{}{"id": 0},
	}
	c, w := newTestGinContext("POST", "/quizzes", body)

	// Act
	handler.NextQuestion(c)

	// Assert
	assertErrorEnvelope(t, w, http.StatusNotFound, "Page not found")
}
