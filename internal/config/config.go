// Package config loads application configuration from environment
// variables.  Every knob has a default suitable for local development;
// the server starts with no environment at all and degrades gracefully
// when optional backends (Redis, RabbitMQ) are absent.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the core runtime settings.  Cache and rate-limit settings
// have their own loaders in this package.
type Config struct {
	Env                string // application environment (e.g. "dev", "prod")
	Port               string // HTTP port to listen on
	SeedDemoProperties bool   // populate demo fixtures at startup
	EventsEnabled      bool   // publish/consume booking events over AMQP
}

// Load reads the core configuration from the environment.
func Load() Config {
	return Config{
		Env:                envStr("APP_ENV", "dev"),
		Port:               envStr("APP_PORT", "8080"),
		SeedDemoProperties: envBool("SEED_DEMO_PROPERTIES", false),
		EventsEnabled:      envBool("BOOKING_EVENTS_ENABLED", true),
	}
}

// Environment helpers shared by the loaders in this package.

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "":
		return def
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}
