package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	MongoURI         string
	MongoDatabase    string
	SessionSecretKey string
	ServerPort       int
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	// Загружаем .env файл, если он есть. Ошибку не считаем фатальной.
	_ = godotenv.Load()

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI environment variable is not set")
	}

	mongoDatabase := os.Getenv("MONGODB_DATABASE")
	if mongoDatabase == "" {
		mongoDatabase = "pickup"
	}

	// Пустой ключ означает, что сессии не проверяются и все запросы анонимны.
	sessionKey := os.Getenv("SESSION_SECRET_KEY")

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "3000" // Порт по умолчанию
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	cfg := &Config{
		MongoURI:         mongoURI,
		MongoDatabase:    mongoDatabase,
		SessionSecretKey: sessionKey,
		ServerPort:       port,
	}

	return cfg, nil
}
