package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/robfig/cron/v3"
)

// Config represents the application configuration
type Config struct {
	Environment string           `toml:"environment" validate:"oneof=development preview production"` // controls simulation-mode selection
	Server      ServerConfig     `toml:"server"`
	Logging     LoggingConfig    `toml:"logging"`
	Knowledge   KnowledgeConfig  `toml:"knowledge"`
	WebSearch   WebSearchConfig  `toml:"web_search"`
	Retrieval   RetrievalConfig  `toml:"retrieval"`
	Collection  CollectionConfig `toml:"collection"`
	Storage     StorageConfig    `toml:"storage"`
}

type ServerConfig struct {
	Port int    `toml:"port" validate:"gt=0,lte=65535"`
	Host string `toml:"host" validate:"required"`
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
}

// KnowledgeConfig configures the static knowledge base. The compiled-in seed
// list is always loaded; Dir optionally adds extra entries from *.yaml files.
type KnowledgeConfig struct {
	Dir string `toml:"dir"`
}

// WebSearchConfig configures the browser-automation backend.
type WebSearchConfig struct {
	Mode           string        `toml:"mode" validate:"omitempty,oneof=simulation api browser"` // empty = auto-select
	APIKey         string        `toml:"api_key"`
	BaseURL        string        `toml:"base_url"`
	SearchURL      string        `toml:"search_url"` // Search engine results URL, %s receives the escaped query
	UserAgent      string        `toml:"user_agent"`
	RequestTimeout time.Duration `toml:"request_timeout"`
	RateLimit      float64       `toml:"rate_limit"` // Requests per second against the API backend
}

// RetrievalConfig tunes the retrieval pipeline.
type RetrievalConfig struct {
	CacheTTL     time.Duration `toml:"cache_ttl"`      // Web content cache expiry (default: 1h)
	StaticLimit  int           `toml:"static_limit"`   // Max static matches returned (default: 3)
	DefaultModel string        `toml:"default_model"`  // Model name echoed in query envelopes
}

// CollectionConfig configures scheduled background content collection.
type CollectionConfig struct {
	Enabled    bool     `toml:"enabled"`
	Schedule   string   `toml:"schedule"` // Cron schedule format
	Topics     []string `toml:"topics"`
	MaxResults int      `toml:"max_results"` // Web results fetched per topic per run
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
}

// NewDefaultConfig creates a configuration with default values.
// Only user-facing settings should be exposed in responsa.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8085,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
		Knowledge: KnowledgeConfig{
			Dir: "",
		},
		WebSearch: WebSearchConfig{
			Mode:           "",
			BaseURL:        "https://api.browserbase.com/v1",
			SearchURL:      "https://www.google.com/search?q=%s",
			UserAgent:      "Mozilla/5.0 (compatible; Responsa/1.0)",
			RequestTimeout: 30 * time.Second,
			RateLimit:      5,
		},
		Retrieval: RetrievalConfig{
			CacheTTL:     time.Hour,
			StaticLimit:  3,
			DefaultModel: "gpt-4o",
		},
		Collection: CollectionConfig{
			Enabled:    false,
			Schedule:   "0 */6 * * *",
			MaxResults: 5,
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data/responsa-db",
			},
		},
	}
}

// LoadFromFiles loads configuration from default values, then applies each
// config file in order (later files override earlier ones), then environment
// variables. Missing files are an error; an empty path list is allowed.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	// Environment configuration (highest priority: RESPONSA_ENV, fallback: GO_ENV)
	if env := os.Getenv("RESPONSA_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("RESPONSA_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("RESPONSA_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Logging configuration
	if level := os.Getenv("RESPONSA_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("RESPONSA_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	// Web search configuration
	if mode := os.Getenv("RESPONSA_WEB_SEARCH_MODE"); mode != "" {
		config.WebSearch.Mode = mode
	}
	if apiKey := os.Getenv("RESPONSA_WEB_SEARCH_API_KEY"); apiKey != "" {
		config.WebSearch.APIKey = apiKey
	}
	if baseURL := os.Getenv("RESPONSA_WEB_SEARCH_BASE_URL"); baseURL != "" {
		config.WebSearch.BaseURL = baseURL
	}

	// Knowledge configuration
	if dir := os.Getenv("RESPONSA_KNOWLEDGE_DIR"); dir != "" {
		config.Knowledge.Dir = dir
	}

	// Storage configuration
	if badgerPath := os.Getenv("RESPONSA_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.Collection.Enabled {
		parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
		if _, err := parser.Parse(c.Collection.Schedule); err != nil {
			return fmt.Errorf("invalid collection schedule %q: %w", c.Collection.Schedule, err)
		}
	}

	if c.Retrieval.CacheTTL <= 0 {
		return fmt.Errorf("retrieval cache_ttl must be positive, got %s", c.Retrieval.CacheTTL)
	}

	return nil
}

// IsDevelopment reports whether the app runs in a development or preview
// environment. Together with a missing API key this selects simulation mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Environment)
	return env == "development" || env == "preview"
}
