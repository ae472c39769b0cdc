package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	pkgRetry "github.com/ouvrio/intake-backend/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR,notEmpty"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// External collaborator configurations
	ClassifierConnectorCfg ClassifierConnectorConfig `envPrefix:"CLASSIFIER_"`
	GeneratorConnectorCfg  GeneratorConnectorConfig  `envPrefix:"GENERATOR_"`

	// Dialogue engine configuration
	DialogueCfg DialogueConfig `envPrefix:"DIALOGUE_"`

	// Field catalog file (optional; embedded defaults are used when
	// empty or missing)
	CatalogPath string `env:"CATALOG_PATH" envDefault:"internal/config/field_catalog.json"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS,notEmpty"`

	// Environment (set from flag, not from env var)
	Environment string
}

// DialogueConfig bounds the runtime behavior of dialogue sessions.
type DialogueConfig struct {
	// DraftTTL is how long an abandoned draft survives before the
	// session expires; every turn refreshes it.
	DraftTTL        time.Duration `env:"DRAFT_TTL" envDefault:"2h"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"10m"`

	// ClassifyTimeout and GenerateTimeout bound the collaborator calls;
	// on expiry the local fallback policy applies.
	ClassifyTimeout time.Duration `env:"CLASSIFY_TIMEOUT" envDefault:"5s"`
	GenerateTimeout time.Duration `env:"GENERATE_TIMEOUT" envDefault:"8s"`

	// MaxReplyLength truncates collaborator-generated text before
	// display; longer output falls back to the deterministic prompt.
	MaxReplyLength int `env:"MAX_REPLY_LENGTH" envDefault:"2000"`

	// RecentTurnWindow is the number of history turns sent along for
	// intent disambiguation.
	RecentTurnWindow int `env:"RECENT_TURN_WINDOW" envDefault:"6"`
}

type ClassifierConnectorConfig struct {
	HTTPClientConfig
	ClassifyEndpoint string               `env:"CLASSIFY_ENDPOINT,notEmpty"`
	Retry            pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type GeneratorConnectorConfig struct {
	HTTPClientConfig
	QuestionEndpoint    string               `env:"QUESTION_ENDPOINT,notEmpty"`
	SuggestionsEndpoint string               `env:"SUGGESTIONS_ENDPOINT,notEmpty"`
	AnswerEndpoint      string               `env:"ANSWER_ENDPOINT,notEmpty"`
	Retry               pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT,notEmpty"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT,notEmpty"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE,notEmpty"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT,notEmpty"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT,notEmpty"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL,notEmpty"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if cfg.DialogueCfg.DraftTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("DIALOGUE_DRAFT_TTL must be at least 1m, got %s", cfg.DialogueCfg.DraftTTL))
	}

	if cfg.DialogueCfg.ClassifyTimeout <= 0 || cfg.DialogueCfg.ClassifyTimeout > 30*time.Second {
		errors = append(errors, fmt.Sprintf("DIALOGUE_CLASSIFY_TIMEOUT must be between 0 and 30s, got %s", cfg.DialogueCfg.ClassifyTimeout))
	}

	if cfg.DialogueCfg.GenerateTimeout <= 0 || cfg.DialogueCfg.GenerateTimeout > 30*time.Second {
		errors = append(errors, fmt.Sprintf("DIALOGUE_GENERATE_TIMEOUT must be between 0 and 30s, got %s", cfg.DialogueCfg.GenerateTimeout))
	}

	if cfg.DialogueCfg.MaxReplyLength < 100 || cfg.DialogueCfg.MaxReplyLength > 20000 {
		errors = append(errors, fmt.Sprintf("DIALOGUE_MAX_REPLY_LENGTH must be between 100 and 20000, got %d", cfg.DialogueCfg.MaxReplyLength))
	}

	if cfg.DialogueCfg.RecentTurnWindow < 0 || cfg.DialogueCfg.RecentTurnWindow > 50 {
		errors = append(errors, fmt.Sprintf("DIALOGUE_RECENT_TURN_WINDOW must be between 0 and 50, got %d", cfg.DialogueCfg.RecentTurnWindow))
	}

	// Validate Database configuration
	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errors = append(errors, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errors = append(errors, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
