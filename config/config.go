package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Fallback credentials used when the environment does not provide any.
// They are insecure and only meant for local development.
const (
	DefaultSecretKey     = "fallback-secret-key"
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "@dminsesg705"
)

type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	App    AppConfig
}

type ServerConfig struct {
	Port        string `env:"PORT,default=8001"`
	CORSOrigins string `env:"CORS_ORIGINS,default=*"`
}

type AuthConfig struct {
	SecretKey          string `env:"SECRET_KEY,default=fallback-secret-key"`
	AdminUsername      string `env:"ADMIN_USERNAME,default=admin"`
	AdminPassword      string `env:"ADMIN_PASSWORD,default=@dminsesg705"`
	TokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES,default=30"`
}

type AppConfig struct {
	Environment string `env:"APP_ENV,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
	Version     string `env:"APP_VERSION,default=1.0.0"`
	SeedPath    string `env:"SEED_PATH"`
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Auth.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}
	if c.Auth.AdminUsername == "" || c.Auth.AdminPassword == "" {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}
	if c.Auth.TokenExpireMinutes <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", c.Auth.TokenExpireMinutes)
	}
	switch strings.ToLower(c.App.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.App.LogFormat)
	}
	return nil
}

// TokenTTL is the lifetime of an issued access token.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenExpireMinutes) * time.Minute
}

// AllowedOrigins splits CORS_ORIGINS. A single "*" means any origin.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.Server.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// InsecureDefaults names the settings still running on their hardcoded fallback.
func (c *Config) InsecureDefaults() []string {
	var out []string
	if c.Auth.SecretKey == DefaultSecretKey {
		out = append(out, "SECRET_KEY")
	}
	if c.Auth.AdminUsername == DefaultAdminUsername {
		out = append(out, "ADMIN_USERNAME")
	}
	if c.Auth.AdminPassword == DefaultAdminPassword {
		out = append(out, "ADMIN_PASSWORD")
	}
	return out
}
