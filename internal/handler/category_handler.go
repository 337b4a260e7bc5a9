package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-bank/internal/handler/dto"
	apperrors "github.com/yourusername/question-bank/internal/pkg/errors"
	"github.com/yourusername/question-bank/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(questionService *service.QuestionService) *CategoryHandler {
	return &CategoryHandler{questionService: questionService}
}

// ListCategories возвращает справочник категорий {id: type}.
// Типы отдаются в нижнем регистре.
// GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.questionService.Categories()
	if err != nil {
		handleCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": dto.NewLowercaseCategoryMap(categories),
	})
}

// CategoryQuestions возвращает страницу вопросов указанной категории.
// Несуществующая категория — 404.
// GET /categories/:id/questions
func (h *CategoryHandler) CategoryQuestions(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint)

	category, page, err := h.questionService.QuestionsByCategory(categoryID, pageParam(c))
	if err != nil {
		handleCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"current_category": category.Type,
		"questions":        page.Questions,
		"total_questions":  page.Total,
	})
}

// handleCategoryError схлопывает ошибки категорийных операций в 404:
// этот код исторически отдает API для всего класса "ничего не нашлось".
// Исходная причина при этом остается в логе.
func handleCategoryError(c *gin.Context, err error) {
	if !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("[CategoryHandler] Внутренняя ошибка: %v", err)
	}
	errorResponse(c, http.StatusNotFound, msgNotFound)
}
