// Package config loads server settings from the environment, reading a
// local .env file first when one exists.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          int
	AdminUsername string
	AdminPassword string
	JWTSecret     []byte
	JWTTTL        time.Duration
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:          8080,
		AdminUsername: getenv("ADMIN_USERNAME"),
		AdminPassword: getenv("ADMIN_PASSWORD"),
		JWTSecret:     []byte(getenv("JWT_SECRET")),
		JWTTTL:        time.Hour,
	}

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}

	if v := getenv("JWT_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return Config{}, fmt.Errorf("invalid JWT_TTL %q", v)
		}
		cfg.JWTTTL = ttl
	}

	return cfg, nil
}

// AdminEnabled reports whether the admin endpoints can be served.
func (c Config) AdminEnabled() bool {
	return c.AdminUsername != "" && c.AdminPassword != "" && len(c.JWTSecret) > 0
}
