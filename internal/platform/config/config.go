package config

import (
	"errors"
	"os"
	"strings"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	PrivyAppID     string
	PrivyAppSecret string
	PrivyBaseURL   string
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "nusakarya"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "3000"
	}

	appID := strings.TrimSpace(os.Getenv("PRIVY_APP_ID"))
	appSecret := strings.TrimSpace(os.Getenv("PRIVY_APP_SECRET"))
	if appID == "" || appSecret == "" {
		return Config{}, errors.New("PRIVY_APP_ID and PRIVY_APP_SECRET must be set in environment variables")
	}

	baseURL := strings.TrimSpace(os.Getenv("PRIVY_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://auth.privy.io"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		PrivyAppID:     appID,
		PrivyAppSecret: appSecret,
		PrivyBaseURL:   strings.TrimRight(baseURL, "/"),
	}, nil
}
