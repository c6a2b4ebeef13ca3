package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverBolt     = "bolt"

	EventsDriverNone     = "none"
	EventsDriverRabbitMQ = "rabbitmq"
	EventsDriverKafka    = "kafka"

	defaultAccountCacheTTL = 5 * time.Minute
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	StorageDriver string

	// Postgres
	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string

	// bbolt
	BoltPath string

	// Redis backs the account cache and the rate limit store when set
	RedisURL        string
	AccountCacheTTL time.Duration

	// Ledger events
	EventsDriver     string
	RabbitMQURL      string
	RabbitMQExchange string
	KafkaBrokers     []string
	KafkaTopic       string

	RateLimit          string
	PosthogAPIKey      string
	PosthogEndpoint    string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("BOLT_PATH", "bank_ledger.db")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("ACCOUNT_CACHE_TTL", defaultAccountCacheTTL.String())
	v.SetDefault("EVENTS_DRIVER", EventsDriverNone)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "ledger_events")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "ledger-events")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://us.i.posthog.com")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Environment variables override .env values which override defaults.
	v.AutomaticEnv()

	cfg := &Config{
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		StorageDriver:    strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		DatabaseURL:      v.GetString("PGSQL_URL"),
		EnableDBCheck:    v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:   v.GetString("MIGRATIONS_PATH"),
		BoltPath:         v.GetString("BOLT_PATH"),
		RedisURL:         v.GetString("REDIS_URL"),
		EventsDriver:     strings.ToLower(strings.TrimSpace(v.GetString("EVENTS_DRIVER"))),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		RabbitMQExchange: v.GetString("RABBITMQ_EXCHANGE"),
		KafkaBrokers:     splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:       v.GetString("KAFKA_TOPIC"),
		RateLimit:        v.GetString("RATE_LIMIT"),
		PosthogAPIKey:    v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:  v.GetString("POSTHOG_ENDPOINT"),
	}
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	ttlStr := v.GetString("ACCOUNT_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = defaultAccountCacheTTL
		log.Printf("Warning: Invalid value for ACCOUNT_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl.String())
	}
	cfg.AccountCacheTTL = ttl

	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_DRIVER is %q", StorageDriverPostgres)
		}
	case StorageDriverBolt:
		if cfg.BoltPath == "" {
			return nil, fmt.Errorf("BOLT_PATH is required when STORAGE_DRIVER is %q", StorageDriverBolt)
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	switch cfg.EventsDriver {
	case EventsDriverNone:
	case EventsDriverRabbitMQ:
		if cfg.RabbitMQURL == "" {
			return nil, fmt.Errorf("RABBITMQ_URL is required when EVENTS_DRIVER is %q", EventsDriverRabbitMQ)
		}
	case EventsDriverKafka:
		if len(cfg.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("KAFKA_BROKERS is required when EVENTS_DRIVER is %q", EventsDriverKafka)
		}
	default:
		return nil, fmt.Errorf("unknown EVENTS_DRIVER %q", cfg.EventsDriver)
	}

	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set. Account cache disabled and rate limits kept in memory.")
	}
	if cfg.PosthogAPIKey == "" {
		log.Println("Warning: POSTHOG_API_KEY not set. Request analytics disabled.")
	}

	return cfg, nil
}

// splitList splits a comma separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
