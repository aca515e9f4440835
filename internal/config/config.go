package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Config struct {
	App     AppConfig     `toml:"app"`
	Library LibraryConfig `toml:"library"`
	Redis   RedisConfig   `toml:"redis"`
}

type AppConfig struct {
	Name    string `toml:"name"`
	Env     string `toml:"env"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	GinMode string `toml:"gin_mode"`
}

type LibraryConfig struct {
	// Root is the directory whose immediate subdirectories are the
	// report folders.
	Root string `toml:"root"`
	// ScanWorkers bounds parallel text extraction; 0 means NumCPU.
	ScanWorkers int `toml:"scan_workers"`
	// SnippetRadius is the context kept on each side of a search match.
	SnippetRadius int `toml:"snippet_radius"`
	// MaxSnippets caps the snippet list per document in search results.
	MaxSnippets int `toml:"max_snippets"`
	// MaxExtractBytes skips text extraction for files larger than this.
	MaxExtractBytes int64 `toml:"max_extract_bytes"`
}

type RedisConfig struct {
	Enabled        bool   `toml:"enabled"`
	Addr           string `toml:"addr"`
	Password       string `toml:"password"`
	DB             int    `toml:"db"`
	TextTTLSeconds int    `toml:"text_ttl_seconds"`
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "reportshelf",
			Env:     "dev",
			Host:    "0.0.0.0",
			Port:    8080,
			GinMode: "debug",
		},
		Library: LibraryConfig{
			Root:            "./reports",
			ScanWorkers:     0,
			SnippetRadius:   80,
			MaxSnippets:     5,
			MaxExtractBytes: 50 << 20,
		},
		Redis: RedisConfig{
			Enabled:        false,
			Addr:           "127.0.0.1:6379",
			Password:       "",
			DB:             0,
			TextTTLSeconds: 300,
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("APP_PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)

	cfg.Library.Root = getEnv("LIBRARY_ROOT", cfg.Library.Root)
	cfg.Library.ScanWorkers = getEnvAsInt("LIBRARY_SCAN_WORKERS", cfg.Library.ScanWorkers)
	cfg.Library.SnippetRadius = getEnvAsInt("LIBRARY_SNIPPET_RADIUS", cfg.Library.SnippetRadius)
	cfg.Library.MaxSnippets = getEnvAsInt("LIBRARY_MAX_SNIPPETS", cfg.Library.MaxSnippets)
	if v := getEnvAsInt("LIBRARY_MAX_EXTRACT_BYTES", 0); v > 0 {
		cfg.Library.MaxExtractBytes = int64(v)
	}

	if raw, ok := os.LookupEnv("REDIS_ENABLED"); ok {
		cfg.Redis.Enabled = raw == "1" || raw == "true"
	}
	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.TextTTLSeconds = getEnvAsInt("REDIS_TEXT_TTL_SECONDS", cfg.Redis.TextTTLSeconds)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
