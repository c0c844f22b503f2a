package service

import (
	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// PaginateQuestions возвращает страницу page (нумерация с 1) из
// отсортированного списка вопросов. Срез [start, end) обрезается по границам
// списка: выход за пределы дает пустую страницу, а не ошибку. Политика
// "страница слишком далеко — это NotFound" остается на вызывающей стороне,
// чтобы сама нарезка была чистой функцией.
func PaginateQuestions(questions []entity.Question, page int) []entity.Question {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * QuestionsPerPage
	if start >= len(questions) {
		return []entity.Question{}
	}

	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}

	return questions[start:end]
}
