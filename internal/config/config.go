package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config collects every environment-driven setting in one place.
type Config struct {
	AppPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Static shared secret required on every /api route.
	APIKey string

	JR JRConfig
}

// JRConfig holds the external JR tariff provider settings. The credential
// fields are sent verbatim in every request body; they are injected here so
// the client can be pointed at a fake endpoint in tests.
type JRConfig struct {
	URL        string
	APIKey     string
	Cat        string
	Tipe       string
	SesID      string
	KodeCabang string

	Timeout     time.Duration
	MaxAttempts int
	BackoffBase time.Duration
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort +
		"/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

// Load reads configs/.env when present and resolves all settings.
// Required variables (API key, JR endpoint) fail fast; infrastructure
// settings fall back to local-development defaults.
func Load() (*Config, error) {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	cfg := &Config{
		AppPort:    getenv("APP_PORT", "8080"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "postgres"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),
	}

	var err error
	if cfg.APIKey, err = require("API_KEY"); err != nil {
		return nil, err
	}

	jr := JRConfig{
		Cat:         getenv("JR_CAT", "SW_CHECK_TARIF"),
		Tipe:        getenv("JR_TIPE", "getData"),
		SesID:       getenv("JR_SESID", "JAMBI-002"),
		KodeCabang:  getenv("JR_KODE_CABANG", "21"),
		Timeout:     getenvDuration("JR_TIMEOUT", 30*time.Second),
		MaxAttempts: getenvInt("JR_MAX_ATTEMPTS", 5),
		BackoffBase: getenvDuration("JR_BACKOFF_BASE", 2*time.Second),
	}
	if jr.URL, err = require("URL_JR"); err != nil {
		return nil, err
	}
	if jr.APIKey, err = require("JR_API_KEY"); err != nil {
		return nil, err
	}
	cfg.JR = jr

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func require(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("environment variable %s tidak ditemukan. Pastikan sudah diset di file .env", key)
	}
	return v, nil
}
