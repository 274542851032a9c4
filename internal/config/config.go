package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries the settings shared by the three front-ends. The question
// list itself is resolved at startup (file, then stored deck, then the
// built-in deck) and passed to the session controller explicitly; nothing
// here reaches into the domain.
type Config struct {
	Addr          string // HTTP listen address for quiz-server.
	QuestionsFile string // Optional YAML/JSON deck file.
	DBPath        string // Optional SQLite deck store path.
	DeckName      string // Deck to load from the store.
	TelegramToken string // Required by quiz-bot only.
	LogLevel      string // logrus level name, defaults to "info".
}

// Load reads configuration from a .env file (if present) and the
// environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:          getEnv("ADDR", ":8080"),
		QuestionsFile: os.Getenv("QUIZ_QUESTIONS_FILE"),
		DBPath:        os.Getenv("QUIZ_DB_PATH"),
		DeckName:      getEnv("QUIZ_DECK", "crypto"),
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
