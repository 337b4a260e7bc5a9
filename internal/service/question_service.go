package service

import (
	"fmt"
	"strings"

	"github.com/yourusername/question-bank/internal/domain/entity"
	"github.com/yourusername/question-bank/internal/domain/repository"
	apperrors "github.com/yourusername/question-bank/internal/pkg/errors"
)

// QuestionPage представляет одну страницу выборки вопросов
// вместе с общим размером выборки до пагинации
type QuestionPage struct {
	Questions []entity.Question
	Total     int
}

// QuestionService предоставляет методы для работы с банком вопросов
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// Categories возвращает все категории.
// Пустой справочник категорий считается ErrNotFound: без категорий
// фронтенд не может отрисовать ни списки, ни форму добавления.
func (s *QuestionService) Categories() ([]entity.Category, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return categories, nil
}

// ListQuestions возвращает страницу полного списка вопросов (по возрастанию ID).
// Пустая страница — валидный результат; 404 за нее решает обработчик.
func (s *QuestionService) ListQuestions(page int) (*QuestionPage, error) {
	selection, err := s.questionRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return &QuestionPage{
		Questions: PaginateQuestions(selection, page),
		Total:     len(selection),
	}, nil
}

// AllQuestions возвращает полный список вопросов без пагинации
// (используется экспортом банка)
func (s *QuestionService) AllQuestions() ([]entity.Question, error) {
	selection, err := s.questionRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return selection, nil
}

// CreateQuestion валидирует и сохраняет новый вопрос, затем возвращает
// обновленную страницу полного списка. ID присваивается базой и доступен
// вызывающему через переданную структуру question.
func (s *QuestionService) CreateQuestion(question *entity.Question, page int) (*QuestionPage, error) {
	if err := question.Validate(); err != nil {
		return nil, err
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	return s.ListQuestions(page)
}

// DeleteQuestion удаляет вопрос по ID и возвращает обновленную страницу списка.
// Удаление отсутствующего ID возвращает ErrNotFound, хранилище не меняется.
func (s *QuestionService) DeleteQuestion(id uint, page int) (*QuestionPage, error) {
	if err := s.questionRepo.Delete(id); err != nil {
		return nil, err
	}
	return s.ListQuestions(page)
}

// SearchQuestions возвращает страницу вопросов, текст которых содержит term
// как подстроку без учёта регистра. Пустой term — ошибка вызывающего.
func (s *QuestionService) SearchQuestions(term string, page int) (*QuestionPage, error) {
	if strings.TrimSpace(term) == "" {
		return nil, apperrors.ErrValidation
	}

	matches, err := s.questionRepo.Search(term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return &QuestionPage{
		Questions: PaginateQuestions(matches, page),
		Total:     len(matches),
	}, nil
}

// QuestionsByCategory возвращает категорию и страницу ее вопросов.
// Существование категории проверяется напрямую по ID.
func (s *QuestionService) QuestionsByCategory(categoryID uint, page int) (*entity.Category, *QuestionPage, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, nil, err
	}

	selection, err := s.questionRepo.ListByCategory(categoryID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list questions for category %d: %w", categoryID, err)
	}

	return category, &QuestionPage{
		Questions: PaginateQuestions(selection, page),
		Total:     len(selection),
	}, nil
}
