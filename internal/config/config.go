package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultConflictRetries = 3
	DefaultTokenTTL        = 24 * time.Hour
)

type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	DatabaseDSN     string        `env:"DATABASE_URI"`
	MigrationsDir   string        `env:"MIGRATIONS_DIR"`
	JWTSecret       string        `env:"JWT_SECRET"`
	ConflictRetries int           `env:"CONFLICT_RETRIES"`
	TokenTTL        time.Duration `env:"TOKEN_TTL"`
	LogLevel        string        `env:"LOG_LEVEL"`
}

// LoadConfig собирает конфиг из флагов, переменных окружения и файла .env (если он есть).
// Переменные окружения имеют приоритет над флагами.
func LoadConfig(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %w", flagsErr)
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("jwt secret is not set")
	}
	if conf.ConflictRetries < 1 {
		return nil, fmt.Errorf("conflict retries must be positive, got %d", conf.ConflictRetries)
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config, args []string) error {
	flags := flag.NewFlagSet("bills", flag.ContinueOnError)
	flags.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flags.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flags.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flags.StringVar(&flagConfig.JWTSecret, "j", "", "JWT signing secret")
	flags.IntVar(&flagConfig.ConflictRetries, "r", DefaultConflictRetries, "Attempts for a write that hits a concurrent update")
	flags.DurationVar(&flagConfig.TokenTTL, "t", DefaultTokenTTL, "Identity token lifetime")
	flags.StringVar(&flagConfig.LogLevel, "l", "", "Log level (debug, info, warn, error)")

	return flags.Parse(args) //nolint:wrapcheck
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:      defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:     defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:   defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:       defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		ConflictRetries: defaultIfZero(envConfig.ConflictRetries, flagsConfig.ConflictRetries),
		TokenTTL:        defaultIfZero(envConfig.TokenTTL, flagsConfig.TokenTTL),
		LogLevel:        defaultIfBlank(envConfig.LogLevel, flagsConfig.LogLevel),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfZero[T int | time.Duration](value, defaultValue T) T {
	if value == 0 {
		return defaultValue
	}
	return value
}
