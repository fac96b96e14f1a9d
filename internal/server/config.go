package server

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven server settings.
type Config struct {
	Port         string
	FrontendURL  string
	CORSDebug    bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	RateLimit    RateLimitConfig
	LogLevel     string
	LogJSON      bool
}

// RateLimitConfig controls the per-client request limiter.
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
	TrustProxy        bool
}

// LoadConfig reads settings from a .env file if present, falling back to
// the process environment and then to development defaults.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using system environment variables")
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT_SECONDS", "15"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT_SECONDS", "15"))
	idleTimeout, _ := strconv.Atoi(getEnv("SERVER_IDLE_TIMEOUT_SECONDS", "60"))

	return Config{
		Port:         getEnv("PORT", "8080"),
		FrontendURL:  getEnv("FRONTEND_URL", "http://localhost:3000"),
		CORSDebug:    getEnv("CORS_DEBUG", "") == "true",
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
		IdleTimeout:  time.Duration(idleTimeout) * time.Second,
		RateLimit:    loadRateLimitConfig(),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogJSON:      getEnv("LOG_FORMAT", "text") == "json",
	}
}

func loadRateLimitConfig() RateLimitConfig {
	requestsPerSecond, _ := strconv.ParseFloat(getEnv("RATE_LIMIT_REQUESTS_PER_SECOND", "10"), 64)
	burstSize, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST_SIZE", "20"))

	return RateLimitConfig{
		Enabled:           getEnv("RATE_LIMIT_ENABLED", "true") == "true",
		RequestsPerSecond: requestsPerSecond,
		BurstSize:         burstSize,
		TrustProxy:        getEnv("RATE_LIMIT_TRUST_PROXY", "") == "true",
	}
}

// SetupLogging installs the default slog handler per the config.
func SetupLogging(cfg Config) {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}
	if cfg.LogJSON {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func parseLogLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
