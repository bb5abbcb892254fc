package main

import (
	"os"
	"time"

	"github.com/KirkDiggler/entity-arena/internal/content"
	"github.com/KirkDiggler/entity-arena/internal/errors"
)

const defaultRedisURL = "redis://localhost:6379"

var (
	redisURL    string
	contentPath string
)

// serverConfig is the validated form of the server flags
type serverConfig struct {
	Port           int
	RedisURL       string
	ContentPath    string
	EnemyTurnDelay time.Duration
	SeedOnBoot     bool
}

// Validate checks the flag values
func (c *serverConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("port", c.Port, 1, 65535, vb)
	errors.ValidateRequired("redis-url", c.RedisURL, vb)
	if c.EnemyTurnDelay < 0 {
		vb.Field("enemy-turn-delay", "must not be negative")
	}

	return vb.Build()
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// loadContent reads the content file, or the embedded content when path is empty
func loadContent(path string) (*content.Content, error) {
	if path == "" {
		return content.Default()
	}
	return content.LoadFile(path)
}
