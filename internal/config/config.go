package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Port              string `yaml:"port"`
	DBPath            string `yaml:"db_path"`
	JWTSecret         string `yaml:"jwt_secret"`
	TokenTTLMinutes   int    `yaml:"token_ttl_minutes"`
	DashboardUser     string `yaml:"dashboard_user"`
	DashboardPassword string `yaml:"dashboard_password"`
	MaxUploadBytes    int64  `yaml:"max_upload_bytes"`
	RateLimit         int    `yaml:"rate_limit"`          // requests per window
	RateWindowSeconds int    `yaml:"rate_window_seconds"` // sliding window length
}

// defaults 默认配置
func defaults() *Config {
	return &Config{
		Port:              ":8080",
		DBPath:            "./data/mocap/sessions.db",
		JWTSecret:         "your-secret-key-change-in-production",
		TokenTTLMinutes:   720,
		DashboardUser:     "coach",
		DashboardPassword: "changeme",
		MaxUploadBytes:    64 << 20, // capture exports run tens of MB
		RateLimit:         120,
		RateWindowSeconds: 60,
	}
}

// Load 加载配置: defaults, then the YAML file named by CONFIG_PATH (if
// any), then individual environment overrides.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overlays environment variables onto the config.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("DASHBOARD_USER"); v != "" {
		cfg.DashboardUser = v
	}
	if v := os.Getenv("DASHBOARD_PASSWORD"); v != "" {
		cfg.DashboardPassword = v
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MaxUploadBytes = n
		}
	}
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TokenTTLMinutes = n
		}
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit = n
		}
	}
	if v := os.Getenv("RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateWindowSeconds = n
		}
	}
}
