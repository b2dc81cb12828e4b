package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type config struct {
	Port                string
	ProjectID           string
	SessionSecret       string
	OrderBackendURL     string
	ContinueShoppingURL string
}

// loadConfig reads the environment, optionally primed from a .env file in the working directory
func loadConfig() config {
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file loaded: %s", err)
	}

	cfg := config{
		Port:                getenvOrDefault("PORT", "8080"),
		ProjectID:           os.Getenv("GOOGLE_CLOUD_PROJECT"),
		SessionSecret:       os.Getenv("SESSION_SECRET"),
		OrderBackendURL:     os.Getenv("ORDER_BACKEND_URL"),
		ContinueShoppingURL: getenvOrDefault("CONTINUE_SHOPPING_URL", "/cart"),
	}
	if cfg.SessionSecret == "" {
		if cfg.ProjectID != "" {
			log.Fatalf("Missing env-var SESSION_SECRET")
		}
		cfg.SessionSecret = "local-development-only"
	}

	return cfg
}

func getenvOrDefault(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
