package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv       string
	GeminiKey    string
	Model        string
	OutputDir    string
	AgentTimeout time.Duration
	AgentRPS     int
	Telemetry    bool
	MetricsAddr  string
	RedisAddr    string
	RedisPass    string
	RedisDB      int
	CacheTTL     time.Duration
	Workers      int
}

func Load() Config {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:       env("TRAVEL_APP_ENV", "dev"),
		GeminiKey:    env("GOOGLE_API_KEY", ""),
		Model:        env("TRAVEL_MODEL", "gemini-2.0-flash"),
		OutputDir:    env("TRAVEL_OUTPUT_DIR", "travel_guides"),
		AgentTimeout: time.Duration(atoi("TRAVEL_AGENT_TIMEOUT_SECS", 90)) * time.Second,
		AgentRPS:     atoi("TRAVEL_AGENT_RPS", 2),
		Telemetry:    !abool("TRAVEL_TELEMETRY_DISABLED"),
		MetricsAddr:  env("TRAVEL_METRICS_ADDR", ""),
		RedisAddr:    env("TRAVEL_REDIS_ADDR", ""),
		RedisPass:    env("TRAVEL_REDIS_PASSWORD", ""),
		RedisDB:      atoi("TRAVEL_REDIS_DB", 0),
		CacheTTL:     time.Duration(atoi("TRAVEL_CACHE_TTL_SECS", 3600)) * time.Second,
		Workers:      atoi("TRAVEL_WORKERS", 3),
	}
	if c.GeminiKey == "" {
		log.Warn().Msg("GOOGLE_API_KEY is empty; running in fallback mode")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func abool(k string) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes":
		return true
	}
	return false
}
