package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/yourusername/question-bank/internal/config"
	"github.com/yourusername/question-bank/internal/domain/entity"
	pgRepo "github.com/yourusername/question-bank/internal/repository/postgres"
	"github.com/yourusername/question-bank/pkg/database"
)

// seedFile описывает формат файла начального наполнения
type seedFile struct {
	Categories []string `json:"categories"`
	Questions  []struct {
		Question   string `json:"question"`
		Answer     string `json:"answer"`
		Category   *uint  `json:"category"`
		Difficulty int    `json:"difficulty"`
	} `json:"questions"`
}

func main() {
	filePath := flag.String("file", "seed/questions.json", "путь к JSON-файлу с категориями и вопросами")
	flag.Parse()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.MigrateDB(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("Не удалось прочитать файл %s: %v", *filePath, err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		log.Fatalf("Некорректный JSON в %s: %v", *filePath, err)
	}

	categoryRepo := pgRepo.NewCategoryRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)

	// Категории заливаются только в пустой справочник:
	// сидирование должно быть безопасно повторяемым
	existing, err := categoryRepo.GetAll()
	if err != nil {
		log.Fatalf("Не удалось прочитать категории: %v", err)
	}
	if len(existing) == 0 {
		for _, categoryType := range seed.Categories {
			category := &entity.Category{Type: categoryType}
			if err := categoryRepo.Create(category); err != nil {
				log.Fatalf("Не удалось создать категорию %q: %v", categoryType, err)
			}
		}
		log.Printf("Создано категорий: %d", len(seed.Categories))
	} else {
		log.Printf("Категории уже существуют (%d), пропускаем", len(existing))
	}

	created := 0
	skipped := 0
	for _, q := range seed.Questions {
		question := &entity.Question{
			Text:       q.Question,
			Answer:     q.Answer,
			Category:   q.Category,
			Difficulty: q.Difficulty,
		}
		if err := question.Validate(); err != nil {
			log.Printf("Пропущен вопрос без текста или ответа: %+v", q)
			skipped++
			continue
		}
		if err := questionRepo.Create(question); err != nil {
			log.Fatalf("Не удалось создать вопрос %q: %v", q.Question, err)
		}
		created++
	}

	log.Printf("Сидирование завершено: вопросов создано %d, пропущено %d", created, skipped)
}
