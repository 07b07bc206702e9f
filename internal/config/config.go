package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full configuration surface shared by api, worker and consumer.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Mongo    MongoConfig
	Auth     AuthConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// requests per second per client IP
	RateLimit float64
	RateBurst int
}

type DatabaseConfig struct {
	Host       string
	User       string
	Password   string
	Name       string
	Port       string
	SSLMode    string
	MaxRetries int
}

type RedisConfig struct {
	Addr     string
	CacheTTL time.Duration
}

type KafkaConfig struct {
	Brokers      []string
	GroupID      string
	PollInterval time.Duration
	// Sent outbox rows older than OutboxRetention are purged on PurgeSchedule
	OutboxRetention time.Duration
	PurgeSchedule   string
}

type MongoConfig struct {
	URI    string
	DBName string
}

type AuthConfig struct {
	JWTSecret string
}

type LogConfig struct {
	// "development" uses zap's console encoder, anything else JSON.
	Env string
}

// Load reads environment variables (optionally from envFile) into a Config.
// A missing env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getenvWithDefault("PORT", "3000"),
			ReadTimeout:  getDuration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
			RateLimit:    getFloat("RATE_LIMIT_RPS", 10),
			RateBurst:    getInt("RATE_LIMIT_BURST", 20),
		},
		Database: DatabaseConfig{
			Host:       getenvWithDefault("DB_HOST", "localhost"),
			User:       os.Getenv("DB_USER"),
			Password:   os.Getenv("DB_PASSWORD"),
			Name:       getenvWithDefault("DB_NAME", "shopbook"),
			Port:       getenvWithDefault("DB_PORT", "5432"),
			SSLMode:    getenvWithDefault("DB_SSLMODE", "disable"),
			MaxRetries: getInt("DB_MAX_RETRIES", 5),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			CacheTTL: getDuration("CACHE_TTL", 30*time.Minute),
		},
		Kafka: KafkaConfig{
			Brokers:         splitList(os.Getenv("KAFKA_BROKER")),
			GroupID:         getenvWithDefault("KAFKA_GROUP_ID", "go-shopbook-statements"),
			PollInterval:    getDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
			OutboxRetention: getDuration("OUTBOX_RETENTION", 7*24*time.Hour),
			PurgeSchedule:   getenvWithDefault("OUTBOX_PURGE_SCHEDULE", "0 3 * * *"),
		},
		Mongo: MongoConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "shopbook"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Log: LogConfig{
			Env: getenvWithDefault("APP_ENV", "development"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate only checks what every binary needs. Binary-specific requirements
// (KAFKA_BROKER for the worker, MONGODB_URI for the consumer) are checked by
// RequireKafka / RequireMongo.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.Database.User == "" {
		return errors.New("DB_USER must be provided")
	}
	if c.Database.MaxRetries < 1 {
		return errors.New("DB_MAX_RETRIES must be at least 1")
	}
	return nil
}

func (c *Config) RequireKafka() error {
	if len(c.Kafka.Brokers) == 0 {
		return errors.New("KAFKA_BROKER is required")
	}
	return nil
}

func (c *Config) RequireMongo() error {
	if c.Mongo.URI == "" {
		return errors.New("MONGODB_URI is required")
	}
	return nil
}

func (c *Config) RequireAuth() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
