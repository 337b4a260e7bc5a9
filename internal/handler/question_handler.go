package handler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/question-bank/internal/domain/entity"
	"github.com/yourusername/question-bank/internal/handler/dto"
	apperrors "github.com/yourusername/question-bank/internal/pkg/errors"
	"github.com/yourusername/question-bank/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с банком вопросов
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// pageParam извлекает номер страницы из query (?page=N).
// Некорректное или отсутствующее значение приводится к 1.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}

// ListQuestions возвращает страницу полного списка вопросов
// вместе со справочником категорий и общим количеством.
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	categories, err := h.questionService.Categories()
	if err != nil {
		h.handleReadError(c, err)
		return
	}

	page, err := h.questionService.ListQuestions(pageParam(c))
	if err != nil {
		h.handleReadError(c, err)
		return
	}

	// Страница за пределами списка — 404, как и раньше
	if len(page.Questions) == 0 {
		errorResponse(c, http.StatusNotFound, msgNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"categories":      dto.NewCategoryMap(categories),
		"questions":       page.Questions,
		"total_questions": page.Total,
	})
}

// CreateQuestionRequest представляет запрос на создание вопроса.
// Обязательность полей проверяет сервис, чтобы пустой текст давал 422,
// а не 400 от binding.
type CreateQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   *uint  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CreateQuestion создает новый вопрос и возвращает его ID вместе
// с обновленной страницей списка.
// POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	question := &entity.Question{
		Text:       req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}

	page, err := h.questionService.CreateQuestion(question, pageParam(c))
	if err != nil {
		// Ошибка валидации и ошибка записи схлопываются в 422:
		// этот код исторически отдает API при неудачном создании
		if !errors.Is(err, apperrors.ErrValidation) {
			log.Printf("[QuestionHandler] Ошибка создания вопроса: %v", err)
		}
		errorResponse(c, http.StatusUnprocessableEntity, msgUnprocessable)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"created":         question.ID,
		"questions":       page.Questions,
		"total_questions": page.Total,
	})
}

// DeleteQuestion удаляет вопрос по ID.
// Удаление несуществующего ID — ошибка клиента (422), а не 404.
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id := c.MustGet("questionID").(uint)

	page, err := h.questionService.DeleteQuestion(id, pageParam(c))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[QuestionHandler] Ошибка удаления вопроса #%d: %v", id, err)
		}
		errorResponse(c, http.StatusUnprocessableEntity, msgUnprocessable)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"question_deleted_id": id,
		"questions":           page.Questions,
		"total_questions":     page.Total,
	})
}

// SearchRequest представляет запрос поиска по подстроке текста вопроса
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// SearchQuestions возвращает вопросы, содержащие искомую подстроку
// (без учёта регистра). Отсутствие совпадений — 404.
// POST /questions/search
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	page, err := h.questionService.SearchQuestions(req.SearchTerm, pageParam(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			errorResponse(c, http.StatusBadRequest, msgBadRequest)
			return
		}
		h.handleReadError(c, err)
		return
	}

	if page.Total == 0 {
		errorResponse(c, http.StatusNotFound, msgNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"questions":       page.Questions,
		"total_questions": page.Total,
		"currentCategory": "--",
	})
}

// ExportQuestions экспортирует весь банк вопросов в CSV или Excel
// GET /questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	// Экспортируем всю выборку без пагинации
	questions, err := h.questionService.AllQuestions()
	if err != nil {
		h.handleReadError(c, err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, filename)
	default:
		h.exportCSV(c, questions, filename)
	}
}

// handleReadError обрабатывает ошибки операций чтения
func (h *QuestionHandler) handleReadError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		errorResponse(c, http.StatusNotFound, msgNotFound)
		return
	}
	log.Printf("[QuestionHandler] Внутренняя ошибка: %v", err)
	errorResponse(c, http.StatusInternalServerError, msgInternalError)
}

// exportCSV экспортирует вопросы в CSV с правильным экранированием спецсимволов
func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	// Используем encoding/csv для правильного экранирования запятых/кавычек
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"ID", "Вопрос", "Ответ", "Категория", "Сложность"})

	for _, q := range questions {
		category := ""
		if q.Category != nil {
			category = strconv.Itoa(int(*q.Category))
		}
		writer.Write([]string{
			strconv.Itoa(int(q.ID)),
			sanitizeForExcel(q.Text),
			sanitizeForExcel(q.Answer),
			category,
			strconv.Itoa(q.Difficulty),
		})
	}
}

// exportXLSX экспортирует вопросы в Excel с использованием StreamWriter
func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Вопросы"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuestionHandler] Ошибка создания StreamWriter: %v", err)
		errorResponse(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	headers := []interface{}{"ID", "Вопрос", "Ответ", "Категория", "Сложность"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи заголовков: %v", err)
	}

	for i, q := range questions {
		rowNum := i + 2 // Начинаем со 2 строки (1 — заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		category := ""
		if q.Category != nil {
			category = strconv.Itoa(int(*q.Category))
		}

		row := []interface{}{q.ID, sanitizeForExcel(q.Text), sanitizeForExcel(q.Answer), category, q.Difficulty}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[QuestionHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuestionHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
