package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	GinMode     string   `env:"GIN_MODE" envDefault:"release"`
	DBHost      string   `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string   `env:"DB_PORT" envDefault:"5432"`
	DBUser      string   `env:"DB_USER" envDefault:"postgres"`
	DBPass      string   `env:"DB_PASS"`
	DBName      string   `env:"DB_NAME" envDefault:"portfolio"`
	DBSSLMode   string   `env:"DB_SSLMODE" envDefault:"disable"`
	DBMigrate   bool     `env:"DB_MIGRATE" envDefault:"false"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
	LogFile     string   `env:"LOG_FILE"`
}

// Load reads configuration from the environment, loading a .env file first
// when one is present.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName, c.DBSSLMode,
	)
}
