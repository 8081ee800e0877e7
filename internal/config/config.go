package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds every externally supplied constant the pipeline depends on.
// All values come from the environment (or a local .env file); nothing here
// is computed by the core.
type Config struct {
	AppPort  int    `mapstructure:"APP_PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Chat pipeline.
	ChatEnabled           bool `mapstructure:"CHAT_ENABLED"`
	MaxInputLength        int  `mapstructure:"MAX_INPUT_LENGTH"`
	MaxContextTurns       int  `mapstructure:"MAX_CONTEXT_TURNS"`
	MaxHistoryEntryLength int  `mapstructure:"MAX_HISTORY_ENTRY_LENGTH"`

	// Rate limiting. An empty RedisAddr selects the in-memory store.
	RateLimitPerMinute     int    `mapstructure:"RATE_LIMIT_PER_MINUTE"`
	RateLimitWindowSeconds int    `mapstructure:"RATE_LIMIT_WINDOW_SECONDS"`
	RedisAddr              string `mapstructure:"REDIS_ADDR"`

	// Upstream provider. GeminiAPIKeys is a comma-separated credential pool,
	// rotated through on quota/auth failures.
	GeminiAPIKeys          string `mapstructure:"GEMINI_API_KEYS"`
	GeminiBaseURL          string `mapstructure:"GEMINI_BASE_URL"`
	GeminiModel            string `mapstructure:"GEMINI_MODEL"`
	UpstreamTimeoutSeconds int    `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`

	// Contact form storage.
	DatabasePath string `mapstructure:"DATABASE_PATH"`
}

// APIKeys splits the configured credential list, dropping empty entries so a
// trailing comma does not produce a blank credential in the pool.
func (c *Config) APIKeys() []string {
	var keys []string
	for _, k := range strings.Split(c.GeminiAPIKeys, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("CHAT_ENABLED", true)
	viper.SetDefault("MAX_INPUT_LENGTH", 1000)
	viper.SetDefault("MAX_CONTEXT_TURNS", 10)
	viper.SetDefault("MAX_HISTORY_ENTRY_LENGTH", 4000)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("GEMINI_API_KEYS", "")
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 30)
	viper.SetDefault("DATABASE_PATH", "/data/portfolio.db")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
