package entity

// Question представляет вопрос в банке вопросов
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"size:500;not null" json:"question"`
	Answer     string `gorm:"size:500;not null" json:"answer"`
	CategoryID uint   `gorm:"column:category;not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// HasRequiredFields проверяет, что текст вопроса и ответа заполнены.
// Категория и сложность проверяются на уровне запроса: ссылочную целостность
// категории гарантирует БД, а сложность хранится как есть, без диапазона.
func (q *Question) HasRequiredFields() bool {
	return q.Question != "" && q.Answer != "" && q.CategoryID != 0
}
