// Package config provides application configuration loading from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Bot      BotConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string
	Port string
}

// DatabaseConfig contains PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// SMTPConfig contains the digest delivery settings. Server may be empty, in
// which case digests cannot be sent until an operator configures SMTP.
type SMTPConfig struct {
	From     string
	Login    string
	Password string
	Server   string
	Port     int
	Timeout  time.Duration
}

// Enabled reports whether an SMTP server was configured.
func (c *SMTPConfig) Enabled() bool {
	return c.Server != ""
}

// BotConfig describes the bot's own chat identity.
type BotConfig struct {
	// Name is the mention token members address reports to.
	Name string
}

// Load reads configuration from environment variables.
// Returns error if required variables are not set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		SMTP: SMTPConfig{
			From:     os.Getenv("SMTP_FROM"),
			Login:    os.Getenv("SMTP_LOGIN"),
			Password: os.Getenv("SMTP_PASSWORD"),
			Server:   os.Getenv("SMTP_SERVER"),
		},
		Bot: BotConfig{
			Name: getEnv("BOT_NAME", "@standup"),
		},
	}

	required := []struct {
		key string
		dst *string
	}{
		{"SERVER_HOST", &cfg.Server.Host},
		{"SERVER_PORT", &cfg.Server.Port},
		{"DB_HOST", &cfg.Database.Host},
		{"DB_PORT", &cfg.Database.Port},
		{"DB_USER", &cfg.Database.User},
		{"DB_PASSWORD", &cfg.Database.Password},
		{"DB_NAME", &cfg.Database.DBName},
		{"DB_SSLMODE", &cfg.Database.SSLMode},
	}
	for _, v := range required {
		value, err := getRequiredEnv(v.key)
		if err != nil {
			return nil, err
		}
		*v.dst = value
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	cfg.SMTP.Port = smtpPort

	smtpTimeout, err := time.ParseDuration(getEnv("SMTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_TIMEOUT: %w", err)
	}
	cfg.SMTP.Timeout = smtpTimeout

	return cfg, nil
}

// DSN returns PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// getRequiredEnv reads required environment variable or returns error.
func getRequiredEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
