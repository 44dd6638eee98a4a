package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SeedFile       string   // path to a YAML file of groups/sites imported on first start (optional)
	AllowedOrigins []string // CORS origins, empty = allow any

	AutoSyncInterval time.Duration // interval between automatic WebDAV uploads (default: 30m)

	// Upstream overrides, empty = production endpoints
	QuoteBaseURL     string
	WeatherBaseURL   string
	WallpaperBaseURL string

	// Redis. Empty addr = in-memory persistence (state lost on restart).
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDT             time.Duration // dial timeout (ex: 5s)
	RedisRT             time.Duration // read timeout (ex: 3s)
	RedisWT             time.Duration // write timeout (ex: 3s)
	RedisPoolSize       int
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // initial wait between retries, grows exponentially
	RedisMaxWait        time.Duration // cap on the retry backoff
	RedisWarnThreshold  int           // warn after this many attempts
}

func Load() *Config {
	return &Config{
		// Server settings
		ListenPort:      getenv("NEWTAB_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("NEWTAB_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("NEWTAB_LOG_LEVEL", "info"),
		PrettyLog: mustBool("NEWTAB_PRETTY_LOG", true),

		SeedFile:       getenv("NEWTAB_SEED_FILE", ""),
		AllowedOrigins: splitAndTrim(getenv("NEWTAB_ALLOWED_ORIGINS", "")),

		AutoSyncInterval: mustDuration("NEWTAB_AUTOSYNC_INTERVAL", 30*time.Minute),

		QuoteBaseURL:     getenv("NEWTAB_QUOTE_BASE_URL", ""),
		WeatherBaseURL:   getenv("NEWTAB_WEATHER_BASE_URL", ""),
		WallpaperBaseURL: getenv("NEWTAB_WALLPAPER_BASE_URL", ""),

		// Redis settings
		RedisAddr:           getenv("NEWTAB_REDIS_ADDR", ""),
		RedisUser:           getenv("NEWTAB_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("NEWTAB_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("NEWTAB_REDIS_DB", 0),
		RedisDT:             mustDuration("NEWTAB_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("NEWTAB_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("NEWTAB_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("NEWTAB_REDIS_POOL_SIZE", 10),
		RedisPingTimeout:    mustDuration("NEWTAB_REDIS_PING_TIMEOUT", 5*time.Second),
		RedisConnectTimeout: mustDuration("NEWTAB_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("NEWTAB_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("NEWTAB_REDIS_MAX_WAIT", 10*time.Second),
		RedisWarnThreshold:  getenvInt("NEWTAB_REDIS_WARN_THRESHOLD", 3),
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
