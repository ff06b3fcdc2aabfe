package config

import "os"

// DefaultBaseURL points at the provider sandbox. Production would override it
// via PAYPAL_API_BASE_URL.
const DefaultBaseURL = "https://api-m.sandbox.paypal.com"

// Config holds everything the gateway reads from the environment at startup.
// It is loaded once in main and passed down explicitly; nothing else in the
// codebase reads env vars ad hoc.

type Config struct {
	Port         string
	ClientID     string
	ClientSecret string
	BaseURL      string
	StaticDir    string
}

func LoadConfig() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		ClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
		ClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
		BaseURL:      getEnv("PAYPAL_API_BASE_URL", DefaultBaseURL),
		StaticDir:    getEnv("STATIC_DIR", "./client"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
