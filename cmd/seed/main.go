package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/yourusername/trivia-bank/internal/config"
)

// Сидер наполняет пустую базу классическим набором категорий и стартовыми
// вопросами. Повторный запуск безопасен: вставки идут с ON CONFLICT /
// проверкой наличия.
func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	if err := seedCategories(db); err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}
	if err := seedQuestions(db); err != nil {
		log.Fatalf("Failed to seed questions: %v", err)
	}

	fmt.Println("Seed completed.")
}

// seedCategories вставляет шесть классических категорий с фиксированными id.
// Id важны: клиент опирается на нумерацию с единицы.
func seedCategories(db *sql.DB) error {
	categories := []string{
		"Science",
		"Art",
		"Geography",
		"History",
		"Entertainment",
		"Sports",
	}

	for i, label := range categories {
		_, err := db.Exec(
			`INSERT INTO categories (id, type) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			i+1, label,
		)
		if err != nil {
			return err
		}
	}

	// Сдвигаем sequence за вставленные вручную id
	_, err := db.Exec(`SELECT setval('categories_id_seq', (SELECT MAX(id) FROM categories))`)
	return err
}

type seedQuestion struct {
	question   string
	answer     string
	category   int
	difficulty int
}

// seedQuestions вставляет стартовый набор вопросов, если таблица пуста
func seedQuestions(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Questions table is not empty (%d rows), skipping question seed", count)
		return nil
	}

	questions := []seedQuestion{
		{"What is the heaviest organ in the human body?", "The Liver", 1, 4},
		{"Who discovered penicillin?", "Alexander Fleming", 1, 3},
		{"Hematology is a branch of medicine involving the study of what?", "Blood", 1, 4},
		{"Which Dutch graphic artist was initialed M.C.?", "Escher", 2, 1},
		{"La Giaconda is better known as what?", "Mona Lisa", 2, 3},
		{"How many paintings did Van Gogh sell in his lifetime?", "One", 2, 4},
		{"What is the largest lake in Africa?", "Lake Victoria", 3, 2},
		{"In which royal palace would you find the Hall of Mirrors?", "The Palace of Versailles", 3, 3},
		{"The Taj Mahal is located in which Indian city?", "Agra", 3, 2},
		{"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 4, 2},
		{"What boxer's original name is Cassius Clay?", "Muhammad Ali", 4, 1},
		{"Which US city is known as the birthplace of jazz?", "New Orleans", 4, 2},
		{"What movie earned Tom Hanks his third straight Oscar nomination in 1996?", "Apollo 13", 5, 4},
		{"What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", "Tom Cruise", 5, 4},
		{"Which team holds the record for the most Super Bowl titles?", "The Pittsburgh Steelers", 6, 3},
		{"Which country won the first ever soccer World Cup in 1930?", "Uruguay", 6, 4},
	}

	for _, q := range questions {
		_, err := db.Exec(
			`INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4)`,
			q.question, q.answer, q.category, q.difficulty,
		)
		if err != nil {
			return err
		}
	}

	log.Printf("Seeded %d questions", len(questions))
	return nil
}
