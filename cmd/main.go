package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sportsync/pickup-games/config"
	"github.com/sportsync/pickup-games/db"
	"github.com/sportsync/pickup-games/handlers"
	"github.com/sportsync/pickup-games/live"
	"github.com/sportsync/pickup-games/repositories"
	api "github.com/sportsync/pickup-games/routes"
	"github.com/sportsync/pickup-games/services"
)

const (
	templatesDir = "templates"
	publicDir    = "public"
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Подключение к базе данных
	client, err := db.Connect(cfg.MongoURI, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to mongo", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect mongo client", slog.Any("error", err))
		} else {
			logger.Info("mongo connection closed")
		}
	}()
	logger.Info("mongo connection established", slog.String("database", cfg.MongoDatabase))

	database := client.Database(cfg.MongoDatabase)

	// Шаблоны страниц
	if err := handlers.LoadTemplates(templatesDir); err != nil {
		logger.Error("failed to load templates", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("templates loaded")

	// Инициализация live-ленты каталога
	feed := live.NewHub()
	go feed.Run()
	logger.Info("live feed hub started")

	// Инициализация репозиториев
	gameRepo := repositories.NewMongoGameRepository(database)
	playerRepo := repositories.NewMongoPlayerRepository(database)
	logger.Info("repositories initialized")

	// Инициализация сервисов
	rosterService := services.NewRosterService(gameRepo, feed)
	catalogService := services.NewCatalogService(gameRepo)
	playerService := services.NewPlayerService(playerRepo)
	logger.Info("services initialized")

	// Инициализация обработчиков HTTP
	sessionSecret := []byte(cfg.SessionSecretKey)
	pageHandler := handlers.NewPageHandler(publicDir)
	gameHandler := handlers.NewGameHandler(rosterService, catalogService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	authHandler := handlers.NewAuthHandler(sessionSecret)
	webSocketHandler := handlers.NewWebSocketHandler(feed)
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		sessionSecret,
		publicDir,
		pageHandler,
		gameHandler,
		playerHandler,
		authHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
