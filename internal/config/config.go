package config

import (
	"os"
	"strconv"
	"time"

	"webex_gacha/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	BotAccessToken string
	WebexAPIURL    string
	BotMarker      string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RequestTimeout time.Duration
	DedupTTL       time.Duration

	// Webhook rate limit (fixed window)
	RateLimit  int
	RateWindow time.Duration

	LogLevel string
	LogJSON  bool
}

// Load reads configuration from the environment (.env supported).
func Load() *Config {
	_ = godotenv.Load()

	token := os.Getenv("BOT_ACCESS_TOKEN")
	if token == "" {
		logger.Fatal("BOT_ACCESS_TOKEN is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	apiURL := os.Getenv("WEBEX_API_URL")
	if apiURL == "" {
		apiURL = "https://webexapis.com/v1/messages"
	}

	// Suffix identifying the bot's own account, used by the self-message filter.
	botMarker := os.Getenv("BOT_MARKER")
	if botMarker == "" {
		botMarker = "webex.bot"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	requestTimeout := 10 * time.Second
	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			requestTimeout = time.Duration(n) * time.Second
		}
	}

	dedupTTL := 5 * time.Minute
	if v := os.Getenv("DEDUP_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			dedupTTL = time.Duration(n) * time.Second
		}
	}

	rateLimit := 60
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateLimit = n
		}
	}

	rateWindow := time.Minute
	if v := os.Getenv("RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateWindow = time.Duration(n) * time.Second
		}
	}

	return &Config{
		AppPort:        port,
		BotAccessToken: token,
		WebexAPIURL:    apiURL,
		BotMarker:      botMarker,
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		RequestTimeout: requestTimeout,
		DedupTTL:       dedupTTL,
		RateLimit:      rateLimit,
		RateWindow:     rateWindow,
		LogLevel:       os.Getenv("LOG_LEVEL"),
		LogJSON:        os.Getenv("LOG_JSON") == "true",
	}
}
