package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port            string
	Env             string
	StoreDriver     string
	SpreadsheetID   string
	CredentialsFile string
	ReportFontPath  string
	ReportPrefix    string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.StoreDriver = getEnv("STORE_DRIVER", "sheets")
	cfg.SpreadsheetID = getEnv("SPREADSHEET_ID", "")
	cfg.CredentialsFile = getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	cfg.ReportFontPath = getEnv("REPORT_FONT_PATH", "")
	cfg.ReportPrefix = getEnv("REPORT_PREFIX", "detailed_report")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}
