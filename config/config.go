package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the process needs at startup. It is built once in
// main and handed to constructors; nothing in this package holds mutable state.
type Config struct {
	Port  string
	DBURL string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	RemindersEnabled bool
}

// Load reads configuration from the environment. Call godotenv.Load first if a
// .env file should be honored.
func Load() *Config {
	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		DBURL: os.Getenv("DB_URL"),

		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 25),
		ConnMaxLifetime: 5 * time.Minute,

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_PHONE_NUMBER"),
		RemindersEnabled: os.Getenv("REMINDERS_ENABLED") == "true",
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
