package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration values.
type Config struct {
	ServerHost        string
	ServerPort        string
	ServerMode        string
	DatabaseHost      string
	DatabasePort      string
	DatabaseUser      string
	DatabasePassword  string
	DatabaseName      string
	DatabaseURL       string
	LogLevel          string
	PluginSecret      string
	WatercrawlAPIKey  string
	WatercrawlBaseURL string
	PollInterval      time.Duration
	PollTimeout       time.Duration
	RequestTimeout    time.Duration
	CORSOrigins       []string
}

// Load reads configuration exclusively from environment variables (optionally .env file).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.ServerHost = getEnv("HOST", "0.0.0.0")
	cfg.ServerPort = getEnv("PORT", "8080")
	cfg.ServerMode = getEnv("GIN_MODE", "debug")

	// Database
	cfg.DatabaseHost = getEnv("DB_HOST", "localhost")
	cfg.DatabasePort = getEnv("DB_PORT", "3306")
	cfg.DatabaseUser = getEnv("DB_USER", "")
	cfg.DatabasePassword = getEnv("DB_PASSWORD", "")
	cfg.DatabaseName = getEnv("DB_NAME", "")
	if cfg.DatabaseUser == "" || cfg.DatabasePassword == "" || cfg.DatabaseName == "" {
		return nil, fmt.Errorf("missing required database env vars")
	}
	// Build DSN: user:pass@tcp(host:port)/dbname?parseTime=true
	cfg.DatabaseURL = fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DatabaseUser, cfg.DatabasePassword,
		cfg.DatabaseHost, cfg.DatabasePort,
		cfg.DatabaseName,
	)

	// Logging & host auth
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.PluginSecret = os.Getenv("PLUGIN_SECRET")
	if cfg.PluginSecret == "" {
		return nil, fmt.Errorf("missing PLUGIN_SECRET environment variable")
	}

	// Watercrawl service
	cfg.WatercrawlAPIKey = os.Getenv("WATERCRAWL_API_KEY")
	if cfg.WatercrawlAPIKey == "" {
		return nil, fmt.Errorf("missing WATERCRAWL_API_KEY environment variable")
	}
	cfg.WatercrawlBaseURL = getEnv("WATERCRAWL_BASE_URL", "https://app.watercrawl.dev")

	// Polling
	pollIntervalSec := getEnv("POLL_INTERVAL_SECONDS", "5")
	pi, err := strconv.Atoi(pollIntervalSec)
	if err != nil || pi <= 0 {
		return nil, fmt.Errorf("invalid POLL_INTERVAL_SECONDS: %q", pollIntervalSec)
	}
	cfg.PollInterval = time.Duration(pi) * time.Second

	pollTimeoutSec := getEnv("POLL_TIMEOUT_SECONDS", "300")
	pt, err := strconv.Atoi(pollTimeoutSec)
	if err != nil || pt <= 0 {
		return nil, fmt.Errorf("invalid POLL_TIMEOUT_SECONDS: %q", pollTimeoutSec)
	}
	cfg.PollTimeout = time.Duration(pt) * time.Second

	reqTimeoutSec := getEnv("REQUEST_TIMEOUT_SECONDS", "15")
	rt, err := strconv.Atoi(reqTimeoutSec)
	if err != nil || rt <= 0 {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT_SECONDS: %q", reqTimeoutSec)
	}
	cfg.RequestTimeout = time.Duration(rt) * time.Second

	// CORS
	origins := getEnv("CORS_ORIGINS", "")
	if origins != "" {
		cfg.CORSOrigins = strings.Split(origins, ",")
	}

	return cfg, nil
}

// getEnv returns env var or default.
func getEnv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}
