package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string
	BaseURL  string
	LogLevel string
	Branding Branding
}

// Branding is what the PWA manifest and page head announce.
type Branding struct {
	AppName     string
	ShortName   string
	Description string
	ThemeColor  string
	Version     string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// pick prefers an explicitly set flag over the environment.
func pick(flag, key, fallback string) string {
	if flag != "" {
		return flag
	}
	return getEnv(key, fallback)
}

// Load reads .env from the working directory when present, then the
// environment. Non-empty flags win over both.
func Load(flagAddr, flagBaseURL, flagLogLevel string) (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return Config{
		Addr:     pick(flagAddr, "PROMPT101_ADDR", ":8080"),
		BaseURL:  pick(flagBaseURL, "PROMPT101_BASE_URL", "http://localhost:8080"),
		LogLevel: pick(flagLogLevel, "PROMPT101_LOG_LEVEL", "info"),
		Branding: Branding{
			AppName:     getEnv("PROMPT101_APP_NAME", "Prompt 101"),
			ShortName:   getEnv("PROMPT101_SHORT_NAME", "Prompt101"),
			Description: getEnv("PROMPT101_DESCRIPTION", "Marketplace for text and image prompt templates"),
			ThemeColor:  getEnv("PROMPT101_THEME_COLOR", "#ccff00"),
			Version:     getEnv("PROMPT101_VERSION", ""),
		},
	}, nil
}
