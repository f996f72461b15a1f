package main

import (
	"log"
	"os"
	"time"
)

type Config struct {
	Port         string
	DatabasePath string
	JWTSecret    string
	JWTExpiry    time.Duration
}

func loadConfig() Config {
	cfg := Config{
		Port:         getenv("PORT", "8080"),
		DatabasePath: getenv("DATABASE_PATH", "portfolio.db"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiry:    24 * time.Hour,
	}

	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET is not set, using insecure default")
		cfg.JWTSecret = "your-secret-key"
	}

	if v := os.Getenv("JWT_EXPIRY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("Invalid JWT_EXPIRY %q, falling back to 24h", v)
		} else {
			cfg.JWTExpiry = d
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
