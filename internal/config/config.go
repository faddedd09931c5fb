package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	ServerPort              string
	PostgreConnectionString string

	AllowedOrigins []string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	ContactFrom  string
	ContactTo    string
	AppName      string

	SeedData bool
}

// Load reads configuration from the environment, loading a .env file first
// when one is present for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, reading from environment variables")
	}
	return &Config{
		ServerPort:              getEnv("SERVER_PORT"),
		PostgreConnectionString: getEnv("POSTGRE_CONNECTION_STRING"),
		AllowedOrigins:          splitList(getEnvOrDefault("ALLOWED_ORIGINS", "*")),
		SMTPHost:                getEnvOrDefault("SMTP_HOST", "localhost"),
		SMTPPort:                getEnvInt("SMTP_PORT", 587),
		SMTPUsername:            getEnvOrDefault("SMTP_USERNAME", ""),
		SMTPPassword:            getEnvOrDefault("SMTP_PASSWORD", ""),
		ContactFrom:             getEnvOrDefault("CONTACT_FROM_EMAIL", "noreply@localhost"),
		ContactTo:               getEnv("CONTACT_TO_EMAIL"),
		AppName:                 getEnvOrDefault("APP_NAME", "Website"),
		SeedData:                getEnvBool("SEED_DATA", false),
	}
}

// getEnv retrieves the value of the environment variable named by the key.
func getEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	panic("critical config missing: " + key)
}

// getEnvOrDefault retrieves the value or returns default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
