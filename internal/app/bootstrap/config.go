package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration for the SafePlace server.
// It merges compiled defaults, an optional YAML file, and environment
// overrides so local and deployed runs share one code path.
type Config struct {
	ServiceID string
	HTTPPort  int

	DatabaseURL string
	MaxDBConns  int

	JWTSecret string
	TokenTTL  time.Duration

	BcryptCost int
	ListLimit  int

	OpenAIBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAITimeout time.Duration
}

// configFile mirrors the YAML schema used by configs/default.yaml.
// It is intentionally separate from Config so runtime-only fields stay internal.
type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL string `yaml:"postgres_url"`
		MaxConns    int    `yaml:"max_conns"`
	} `yaml:"dependencies"`
	Auth struct {
		JWTSecret  string `yaml:"jwt_secret"`
		TokenTTL   string `yaml:"token_ttl"`
		BcryptCost int    `yaml:"bcrypt_cost"`
	} `yaml:"auth"`
	OpenAI struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		Model   string `yaml:"model"`
		Timeout string `yaml:"timeout"`
	} `yaml:"openai"`
	Listing struct {
		Limit int `yaml:"limit"`
	} `yaml:"listing"`
}

// LoadConfig resolves configuration in priority order: defaults -> file -> env.
// The process refuses to start without a signing secret or database URL.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:     "safeplace-server",
		HTTPPort:      5000,
		MaxDBConns:    20,
		TokenTTL:      7 * 24 * time.Hour,
		BcryptCost:    10,
		ListLimit:     200,
		OpenAIModel:   "gpt-4o-mini",
		OpenAITimeout: 30 * time.Second,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.MaxConns > 0 {
			cfg.MaxDBConns = f.Dependencies.MaxConns
		}
		if f.Auth.JWTSecret != "" {
			cfg.JWTSecret = f.Auth.JWTSecret
		}
		if d, parseErr := time.ParseDuration(f.Auth.TokenTTL); parseErr == nil && d > 0 {
			cfg.TokenTTL = d
		}
		if f.Auth.BcryptCost > 0 {
			cfg.BcryptCost = f.Auth.BcryptCost
		}
		if f.OpenAI.BaseURL != "" {
			cfg.OpenAIBaseURL = f.OpenAI.BaseURL
		}
		if f.OpenAI.APIKey != "" {
			cfg.OpenAIAPIKey = f.OpenAI.APIKey
		}
		if f.OpenAI.Model != "" {
			cfg.OpenAIModel = f.OpenAI.Model
		}
		if d, parseErr := time.ParseDuration(f.OpenAI.Timeout); parseErr == nil && d > 0 {
			cfg.OpenAITimeout = d
		}
		if f.Listing.Limit > 0 {
			cfg.ListLimit = f.Listing.Limit
		}
	}

	applyEnvOverrides(&cfg)

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database url is required (SAFEPLACE_DATABASE_URL)")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("jwt secret is required (SAFEPLACE_JWT_SECRET)")
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("SAFEPLACE_HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPPort = n
		}
	}
	if v := os.Getenv("SAFEPLACE_DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("SAFEPLACE_MAX_DB_CONNS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxDBConns = n
		}
	}
	if v := os.Getenv("SAFEPLACE_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := strings.TrimSpace(os.Getenv("SAFEPLACE_TOKEN_TTL")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.TokenTTL = d
		}
	}
	if v := strings.TrimSpace(os.Getenv("SAFEPLACE_BCRYPT_COST")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BcryptCost = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("SAFEPLACE_LIST_LIMIT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ListLimit = n
		}
	}
	if v := os.Getenv("SAFEPLACE_OPENAI_BASE_URL"); v != "" {
		cfg.OpenAIBaseURL = v
	}
	if v := os.Getenv("SAFEPLACE_OPENAI_API_KEY"); v != "" {
		cfg.OpenAIAPIKey = v
	}
	if v := os.Getenv("SAFEPLACE_OPENAI_MODEL"); v != "" {
		cfg.OpenAIModel = v
	}
	if v := strings.TrimSpace(os.Getenv("SAFEPLACE_OPENAI_TIMEOUT")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.OpenAITimeout = d
		}
	}
}
