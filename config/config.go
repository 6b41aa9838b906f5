package config

import (
	"log/slog"
	"strings"

	"github.com/golobby/config/v3"
	"github.com/golobby/config/v3/pkg/feeder"
)

type Config struct {
	Server ServerConfig
	Steam  SteamConfig
	Cache  CacheConfig
}

type ServerConfig struct {
	Port     string `env:"PORT"`
	LogLevel string `env:"LOG_LEVEL"`
}

type SteamConfig struct {
	APIKey string `env:"STEAM_API_KEY"`
}

type CacheConfig struct {
	Backend       string `env:"CACHE_BACKEND"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`
}

// Load reads configuration from the environment. Values already loaded from
// .env by godotenv are picked up the same way.
func Load() (Config, error) {
	var cfg Config
	if err := config.New().AddFeeder(feeder.Env{}).AddStruct(&cfg).Feed(); err != nil {
		return Config{}, err
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "memory"
	}
	if cfg.Cache.RedisAddr == "" {
		cfg.Cache.RedisAddr = "localhost:6379"
	}
	return cfg, nil
}

func (c *Config) GetLogLevel() slog.Leveler {
	logLevel := strings.ToLower(c.Server.LogLevel)
	if logLevel == "error" {
		return slog.LevelError
	}
	if logLevel == "warning" {
		return slog.LevelWarn
	}
	if logLevel == "info" {
		return slog.LevelInfo
	}
	if logLevel == "debug" {
		return slog.LevelDebug
	}
	// default to info if unknown
	return slog.LevelInfo
}
