package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("MARKETPLACE_CLIENT_MODE", "STUB")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("CACHE_BACKEND", "memory")

	cfg := New()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "stub", cfg.Client.Mode)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, "memory", cfg.Cache.Backend)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Env:    "production",
			Http:   Http{Host: "0.0.0.0", Port: "8080"},
			Cors:   CORS{AllowedOrigins: []string{"http://localhost:3000"}},
			Client: Client{Mode: "stub"},
			Cache:  Cache{Backend: "memory", Capacity: 10, TTL: time.Minute},
			Retry:  Retry{MaxAttempts: 3},
		}
	}

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "stub mode ignores remote settings", mutate: func(c *Config) {}},
		{name: "unknown env", mutate: func(c *Config) { c.Env = "dev" }, wantErr: true},
		{name: "unknown mode", mutate: func(c *Config) { c.Client.Mode = "mock" }, wantErr: true},
		{name: "remote mode without base url", mutate: func(c *Config) { c.Client.Mode = "remote" }, wantErr: true},
		{
			name: "remote mode",
			mutate: func(c *Config) {
				c.Client.Mode = "remote"
				c.Client.Remote = Remote{BaseURL: "https://connector.internal", ConnectTimeout: time.Second, ReadTimeout: time.Second}
			},
		},
		{name: "kafka enabled without brokers", mutate: func(c *Config) { c.Kafka.Enabled = true; c.Kafka.Topic = "orders"; c.Kafka.GroupID = "g" }, wantErr: true},
		{
			name: "kafka enabled",
			mutate: func(c *Config) {
				c.Kafka = Kafka{Enabled: true, Topic: "orders", GroupID: "g", Brokers: []string{"localhost:9092"}}
			},
		},
		{name: "redis backend without address", mutate: func(c *Config) { c.Cache.Backend = "redis" }, wantErr: true},
		{
			name: "redis backend",
			mutate: func(c *Config) {
				c.Cache.Backend = "redis"
				c.Cache.Redis = Redis{Addr: "localhost:6379"}
			},
		},
		{name: "zero cache capacity", mutate: func(c *Config) { c.Cache.Capacity = 0 }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
