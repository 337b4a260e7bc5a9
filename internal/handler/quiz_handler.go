package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-bank/internal/service"
)

// QuizHandler обрабатывает запросы игры по банку вопросов
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик игры
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuizCategory представляет выбранную категорию игры.
// ID == 0 означает игру по всем категориям.
type QuizCategory struct {
	ID uint `json:"id"`
}

// QuizRequest представляет запрос очередного вопроса игры.
// Вызывающий ведет множество уже заданных вопросов и передает его целиком
// на каждом запросе — сервер между запросами состояние не хранит.
type QuizRequest struct {
	QuizCategory      QuizCategory `json:"quiz_category"`
	PreviousQuestions []uint       `json:"previous_questions"`
}

// NextQuestion возвращает случайный еще не заданный вопрос или
// {"forceEnd": true}, когда пул вопросов исчерпан.
// POST /quizzes
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	question, err := h.quizService.NextQuestion(req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		// Внутренние ошибки выбора вопроса исторически отдаются как 404
		log.Printf("[QuizHandler] Ошибка выбора вопроса: %v", err)
		errorResponse(c, http.StatusNotFound, msgNotFound)
		return
	}

	// Пустой пул — нормальное завершение игры, а не ошибка
	if question == nil {
		c.JSON(http.StatusOK, gin.H{"forceEnd": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"question":         question,
		"previousQuestion": req.PreviousQuestions,
	})
}
