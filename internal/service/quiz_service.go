package service

import (
	"fmt"
	"math/rand"

	"github.com/yourusername/question-bank/internal/domain/entity"
	"github.com/yourusername/question-bank/internal/domain/repository"
)

// AllCategories — значение категории, отключающее фильтр по категории
// при выборе вопроса для игры
const AllCategories uint = 0

// QuizService выбирает очередной вопрос для игры
type QuizService struct {
	questionRepo repository.QuestionRepository
}

// NewQuizService создает новый сервис игры
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{questionRepo: questionRepo}
}

// NextQuestion возвращает случайный вопрос, не входящий в previousIDs.
// categoryID == AllCategories отключает фильтр по категории.
// Пустой пул — нормальное завершение игры: возвращается (nil, nil),
// а не ошибка. Сервис не хранит состояние между вызовами; множество
// исключений каждый раз передает вызывающий.
func (s *QuizService) NextQuestion(categoryID uint, previousIDs []uint) (*entity.Question, error) {
	var categoryFilter *uint
	if categoryID != AllCategories {
		categoryFilter = &categoryID
	}

	pool, err := s.questionRepo.ListExcluding(previousIDs, categoryFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to build quiz pool: %w", err)
	}

	if len(pool) == 0 {
		return nil, nil
	}

	// Равномерный выбор без весов по сложности или давности
	next := pool[rand.Intn(len(pool))]
	return &next, nil
}
