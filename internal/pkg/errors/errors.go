package errors

import "errors"

// Общие ошибки приложения.
// Репозитории и сервисы оборачивают их через fmt.Errorf("...: %w", ...),
// а в HTTP-статусы они превращаются только в обработчиках.
var (
	// ErrNotFound используется, когда запись или ресурс не найдены:
	// вопрос по id, категория, страница за пределами выборки,
	// пустой результат фильтра по категории.
	ErrNotFound = errors.New("resource not found")

	// ErrBadRequest используется для некорректного запроса клиента:
	// отсутствующий или нечисловой селектор категории викторины,
	// нечисловой параметр страницы, незаполненные поля вопроса.
	ErrBadRequest = errors.New("bad request")

	// ErrUnprocessable используется, когда запрос корректен по форме,
	// но семантически отклонен: нулевой результат поиска при включенной
	// политике "пусто — это ошибка".
	ErrUnprocessable = errors.New("unprocessable")

	// ErrMethodNotAllowed порождается на уровне маршрутизации (хук
	// NoMethod), когда метод не поддерживается ресурсом — например,
	// POST на путь конкретного вопроса.
	ErrMethodNotAllowed = errors.New("method not allowed")
)
