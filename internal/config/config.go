package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/fjod/go_storefront/internal/checkout"
)

type Config struct {
	APIBaseURL     string
	CartFile       string
	TaxRate        decimal.Decimal
	UserID         int64
	RequestTimeout time.Duration
}

// Load reads configuration from the environment, after a best-effort .env
// load. Every setting has a working default.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080"),
		CartFile:       getEnv("CART_FILE", defaultCartFile()),
		TaxRate:        getTaxRate(),
		UserID:         getEnvInt64("USER_ID", 1), // stand-in until authentication exists
		RequestTimeout: 30 * time.Second,
	}
}

func defaultCartFile() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "storefront", "cart.json")
	}
	return "cart.json"
}

func getTaxRate() decimal.Decimal {
	raw := getEnv("TAX_RATE", checkout.DefaultTaxRate)
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		rate, _ = decimal.NewFromString(checkout.DefaultTaxRate)
	}
	return rate
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}
