package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	SourceSeed  = "seed"
	SourceYAML  = "yaml"
	SourceMongo = "mongo"

	JoinedPlaceholder = "placeholder"
	JoinedRedis       = "redis"
)

type Config struct {
	Port      string
	JWTSecret []byte

	DataSource string
	DataFile   string
	MongoURI   string
	Database   string

	RedisURL      string
	RedisPassword string
	CacheTTL      time.Duration
	JoinedSource  string

	DisplayTZ *time.Location
	RateLimit float64
	RateBurst int
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:          get("PORT", ":8080"),
		JWTSecret:     []byte(get("JWT_SECRET", "your_secret_key")),
		DataSource:    get("DATA_SOURCE", SourceSeed),
		DataFile:      get("DATA_FILE", "listings.yaml"),
		MongoURI:      get("MONGO_URI", "mongodb://localhost:27017"),
		Database:      get("LISTINGS_DB", "devhub"),
		RedisURL:      getenv("REDIS_URL"),
		RedisPassword: getenv("REDIS_PASSWORD"),
		JoinedSource:  get("JOINED_SOURCE", JoinedPlaceholder),
	}
	if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}

	switch cfg.DataSource {
	case SourceSeed, SourceYAML, SourceMongo:
	default:
		return nil, fmt.Errorf("DATA_SOURCE: unknown source %q", cfg.DataSource)
	}
	switch cfg.JoinedSource {
	case JoinedPlaceholder:
	case JoinedRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("JOINED_SOURCE=redis requires REDIS_URL")
		}
	default:
		return nil, fmt.Errorf("JOINED_SOURCE: unknown source %q", cfg.JoinedSource)
	}

	ttl, err := time.ParseDuration(get("CACHE_TTL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	cfg.DisplayTZ = time.Local
	if tz := getenv("DISPLAY_TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("DISPLAY_TZ: %w", err)
		}
		cfg.DisplayTZ = loc
	}

	cfg.RateLimit, err = strconv.ParseFloat(get("RATE_LIMIT", "5"), 64)
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT: %w", err)
	}
	cfg.RateBurst, err = strconv.Atoi(get("RATE_BURST", "10"))
	if err != nil {
		return nil, fmt.Errorf("RATE_BURST: %w", err)
	}
	return cfg, nil
}
