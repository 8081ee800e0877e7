package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"portfolio/backend/internal/api"
	"portfolio/backend/internal/config"
	"portfolio/backend/internal/database"
	"portfolio/backend/internal/knowledge"
	"portfolio/backend/internal/llm"
	"portfolio/backend/internal/ratelimit"
	"portfolio/backend/internal/repository"
	"portfolio/backend/internal/service"
)

// App bundles the wired-up server and the resources that need closing.
type App struct {
	DB      *sql.DB
	Server  *http.Server
	Limiter ratelimit.Store
}

// NewApp builds the full dependency graph from configuration.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	pool := llm.NewPoolFromKeys(cfg.APIKeys())
	if cfg.ChatEnabled && pool.Size() == 0 {
		slog.Warn("Chat is enabled but no API keys are configured; every chat request will fail gracefully.")
	}
	provider := llm.NewGeminiProvider(cfg.GeminiBaseURL, cfg.GeminiModel,
		time.Duration(cfg.UpstreamTimeoutSeconds)*time.Second)
	llmClient := llm.NewRotatingClient(provider, pool, nil)

	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	var limiter ratelimit.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		limiter = ratelimit.NewRedisStore(rdb, cfg.RateLimitPerMinute, window)
		slog.Info("Using Redis-backed rate limiting", "addr", cfg.RedisAddr)
	} else {
		limiter = ratelimit.NewMemoryStore(cfg.RateLimitPerMinute, window)
		slog.Info("Using in-memory rate limiting")
	}

	kb := knowledge.NewCompiler(knowledge.DefaultData())

	chatService := service.NewChatService(limiter, llmClient, kb, cfg.MaxContextTurns)
	contactService := service.NewContactService(repository.NewSQLiteContactRepository(db))

	chatValidator := api.NewChatValidator(cfg.MaxInputLength, cfg.MaxContextTurns, cfg.MaxHistoryEntryLength)
	chatHandler := api.NewChatHandler(chatService, chatValidator, cfg.ChatEnabled)
	contactHandler := api.NewContactHandler(contactService)
	router := api.NewRouter(chatHandler, contactHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &App{DB: db, Server: server, Limiter: limiter}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)
	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		return 1
	}
	defer func() {
		if err := app.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
		if closer, ok := app.Limiter.(interface{ Close() error }); ok {
			_ = closer.Close()
		}
	}()

	// Serve until interrupted, then drain in-flight requests.
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Server.ListenAndServe()
	}()
	slog.Info("Starting server", "addr", app.Server.Addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case sig := <-sigCh:
		slog.Info("Shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := app.Server.Shutdown(ctx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return 1
		}
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
