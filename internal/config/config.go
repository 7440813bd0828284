package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default exempt paths: registration and login must stay reachable with no
// prior credential. Extend via EXEMPT_PATHS without a code change.
var defaultExemptPaths = []string{
	"/api/v1/auth/register",
	"/api/v1/auth/login",
}

type Config struct {
	DSN           string
	JWTSecret     string
	AppPort       string
	TokenTTL      time.Duration
	ExemptPaths   []string
	AdminPassword string
}

func Load() Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	} else {
		log.Println("✅ .env file loaded successfully!")
	}

	cfg := Config{
		DSN:           os.Getenv("MYSQL_DSN"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AppPort:       os.Getenv("APP_PORT"),
		TokenTTL:      24 * time.Hour,
		ExemptPaths:   defaultExemptPaths,
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.DSN == "" {
		log.Fatal("❌ MYSQL_DSN not set in environment")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-only"
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
	}

	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			log.Fatalf("❌ Invalid TOKEN_TTL_HOURS: %q", v)
		}
		cfg.TokenTTL = time.Duration(hours) * time.Hour
	}

	if v := os.Getenv("EXEMPT_PATHS"); v != "" {
		cfg.ExemptPaths = nil
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.ExemptPaths = append(cfg.ExemptPaths, p)
			}
		}
	}

	return cfg
}
