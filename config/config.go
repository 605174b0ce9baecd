package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all console configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Upstream content backend (the API this console consumes)
	Backend BackendConfig

	Cache     CacheConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendConfig points the console at the upstream REST backend that owns
// all content records (news, events, photos, videos, users).
type BackendConfig struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
}

type CacheConfig struct {
	Capacity int
	ListTTL  time.Duration
	StatsTTL time.Duration
}

type AuthConfig struct {
	JWTSecret string
	Disabled  bool
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Backend.BaseURL = viper.GetString("backend.base_url")
	cfg.Backend.AccessToken = viper.GetString("backend.access_token")
	cfg.Backend.Timeout = viper.GetDuration("backend.timeout")
	// Flat env aliases (BACKEND_URL, BACKEND_ACCESS_TOKEN) win when set.
	if backendURL := viper.GetString("backend_url"); backendURL != "" {
		cfg.Backend.BaseURL = backendURL
	}
	if backendToken := viper.GetString("backend_access_token"); backendToken != "" {
		cfg.Backend.AccessToken = backendToken
	}

	cfg.Cache.Capacity = viper.GetInt("cache.capacity")
	cfg.Cache.ListTTL = viper.GetDuration("cache.list_ttl")
	cfg.Cache.StatsTTL = viper.GetDuration("cache.stats_ttl")

	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	cfg.Auth.Disabled = viper.GetBool("auth.disabled")
	if jwtSecret := viper.GetString("auth_jwt_secret"); jwtSecret != "" {
		cfg.Auth.JWTSecret = jwtSecret
	}

	cfg.RateLimit.PerMin = viper.GetInt("ratelimit.per_min")

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("backend.base_url is required - set backend.base_url in config.yaml or BACKEND_URL")
	}
	if !cfg.Auth.Disabled && cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required unless auth.disabled is true")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("backend.timeout", "15s")

	viper.SetDefault("cache.capacity", 512)
	viper.SetDefault("cache.list_ttl", "5m")
	viper.SetDefault("cache.stats_ttl", "5m")

	viper.SetDefault("auth.disabled", false)
	viper.SetDefault("ratelimit.per_min", 120)
}
