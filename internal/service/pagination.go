package service

import (
	"github.com/yourusername/question-bank/internal/domain/entity"
)

// QuestionsPerPage — фиксированный размер страницы списка вопросов
const QuestionsPerPage = 10

// PaginateQuestions возвращает срез выборки для страницы page (нумерация с 1).
// Страница за пределами выборки дает пустой срез — это результат, а не ошибка;
// решение вернуть 404 остается за обработчиком. page < 1 приводится к 1.
func PaginateQuestions(selection []entity.Question, page int) []entity.Question {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * QuestionsPerPage
	if start >= len(selection) {
		return []entity.Question{}
	}

	end := start + QuestionsPerPage
	if end > len(selection) {
		end = len(selection)
	}
	return selection[start:end]
}
