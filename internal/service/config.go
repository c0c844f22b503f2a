package service

// QuestionsPerPage — фиксированный размер страницы списка вопросов
const QuestionsPerPage = 10

// Config содержит политики поведения сервисов банка вопросов
type Config struct {
	// ZeroMatchesAsError: пустой результат поиска трактуется как
	// семантическая ошибка (422), а не как валидная пустая страница.
	// Исторический контракт API; спорное решение осознанно вынесено
	// во флаг, чтобы его можно было инвертировать конфигурацией,
	// не трогая код поиска.
	ZeroMatchesAsError bool
}

// DefaultConfig возвращает конфигурацию по умолчанию,
// совпадающую с наблюдаемым поведением существующего API
func DefaultConfig() *Config {
	return &Config{
		ZeroMatchesAsError: true,
	}
}

// StoredCategoryID переводит клиентский индекс категории в хранимый id.
// Клиентский список категорий нумеруется с нуля, а id в БД — с единицы,
// поэтому хранимый id = клиентский + 1. Смещение — контракт существующего
// клиента; менять его — значит менять внешне наблюдаемое поведение,
// поэтому оно изолировано в этой функции, а не размазано по коду.
func StoredCategoryID(clientID uint) uint {
	return clientID + 1
}
