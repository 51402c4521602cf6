package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	// пустой токен отключает проверку Authorization
	AuthToken string

	Client Client

	Cache Cache

	Retry Retry

	Kafka Kafka
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`
}

type Client struct {
	Mode   string `validate:"required,oneof=stub remote"`
	Remote Remote `validate:"-"`
}

// Remote проверяется только в режиме remote.
type Remote struct {
	BaseURL        string        `validate:"required,http_url"`
	BearerToken    string        `validate:"omitempty"`
	ConnectTimeout time.Duration `validate:"gt=0"`
	ReadTimeout    time.Duration `validate:"gt=0"`
}

type Cache struct {
	Backend  string        `validate:"required,oneof=memory redis"`
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`

	Redis Redis `validate:"-"`
}

// Redis проверяется только при Backend=redis.
type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
}

type Retry struct {
	MaxAttempts  int           `validate:"gte=1,lte=10"`
	InitialDelay time.Duration `validate:"gte=0"`
}

type Kafka struct {
	Enabled bool

	GroupID string   `validate:"required_if=Enabled true"`
	Brokers []string `validate:"required_if=Enabled true,dive,hostname_port"`
	Topic   string   `validate:"required_if=Enabled true"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		AuthToken: env("AUTH_TOKEN", ""),

		Client: Client{
			Mode: strings.ToLower(env("MARKETPLACE_CLIENT_MODE", "stub")),
			Remote: Remote{
				BaseURL:        env("MARKETPLACE_REMOTE_BASE_URL", ""),
				BearerToken:    env("MARKETPLACE_REMOTE_BEARER_TOKEN", ""),
				ConnectTimeout: envDuration("MARKETPLACE_REMOTE_CONNECT_TIMEOUT", 5*time.Second),
				ReadTimeout:    envDuration("MARKETPLACE_REMOTE_READ_TIMEOUT", 30*time.Second),
			},
		},

		Cache: Cache{
			Backend:  strings.ToLower(env("CACHE_BACKEND", "memory")),
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
			Redis: Redis{
				Addr:     env("REDIS_ADDR", "localhost:6379"),
				Password: env("REDIS_PASSWORD", ""),
				DB:       envInt("REDIS_DB", 0),
			},
		},

		Retry: Retry{
			MaxAttempts:  envInt("RETRY_MAX_ATTEMPTS", 3),
			InitialDelay: envDuration("RETRY_INITIAL_DELAY", 200*time.Millisecond),
		},

		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", false),
			GroupID: env("KAFKA_GROUP_ID", "marketplace-connector"),
			Topic:   env("KAFKA_TOPIC", "marketplace-orders"),
			Brokers: splitNonEmpty(env("KAFKA_BROKERS", "localhost:9092")),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Client.Mode == "remote" {
		if err := validate.Struct(c.Client.Remote); err != nil {
			return fmt.Errorf("remote client: %w", err)
		}
	}
	if c.Cache.Backend == "redis" {
		if err := validate.Struct(c.Cache.Redis); err != nil {
			return fmt.Errorf("redis cache: %w", err)
		}
	}
	return nil
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
