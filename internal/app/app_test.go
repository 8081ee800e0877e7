package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/backend/internal/config"
)

func TestNewApp(t *testing.T) {
	dbFile, err := os.CreateTemp("", "test-*.db")
	require.NoError(t, err)
	defer func() { require.NoError(t, os.Remove(dbFile.Name())) }()

	cfg := &config.Config{
		AppPort:                8000,
		LogLevel:               "DEBUG",
		ChatEnabled:            true,
		MaxInputLength:         1000,
		MaxContextTurns:        10,
		MaxHistoryEntryLength:  4000,
		RateLimitPerMinute:     60,
		RateLimitWindowSeconds: 60,
		GeminiAPIKeys:          "test-key",
		GeminiBaseURL:          "http://127.0.0.1:0",
		GeminiModel:            "gemini-2.0-flash",
		UpstreamTimeoutSeconds: 5,
		DatabasePath:           dbFile.Name(),
	}

	app, err := NewApp(cfg)
	require.NoError(t, err)
	require.NotNil(t, app)

	defer func() { require.NoError(t, app.DB.Close()) }()

	assert.NotNil(t, app.DB)
	assert.NotNil(t, app.Server)
	assert.NotNil(t, app.Limiter)
	assert.Equal(t, ":8000", app.Server.Addr)
}
