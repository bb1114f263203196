package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	Timezone    string
	DBPath      string
	JWTSecret   string
	TokenTTLMin int
	CORSOrigins []string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	ttl, err := strconv.Atoi(get("TOKEN_TTL_MIN", "30"))
	if err != nil || ttl <= 0 {
		ttl = 30
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		Timezone:    get("TZ", "Asia/Jakarta"),
		DBPath:      get("DB_PATH", "fapagri.db"),
		JWTSecret:   get("JWT_SECRET", "dev-secret-change-me"),
		TokenTTLMin: ttl,
		CORSOrigins: strings.Split(get("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"), ","),
	}
	log.Printf("[cfg] port=%s tz=%s db=%s token_ttl_min=%d", cfg.Port, cfg.Timezone, cfg.DBPath, cfg.TokenTTLMin)
	return cfg
}
