// Package config loads and validates lineseek configuration.
//
// Precedence, lowest to highest: built-in defaults, YAML config file,
// LINESEEK_* environment variables.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"

	apperrors "github.com/lineseek/lineseek/internal/errors"
)

// Config represents the complete lineseek configuration.
type Config struct {
	Corpus CorpusConfig `yaml:"corpus"`
	Search SearchConfig `yaml:"search"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// CorpusConfig configures document discovery and extraction.
type CorpusConfig struct {
	// Dir is the directory scanned once at startup.
	Dir string `yaml:"dir"`

	// Extension is the document file extension to pick up (e.g. ".pdf").
	Extension string `yaml:"extension"`

	// Workers bounds concurrent extraction tasks. 0 means NumCPU.
	Workers int `yaml:"workers"`
}

// SearchConfig configures ranked lookup and result shaping.
type SearchConfig struct {
	// TitleWeight, BodyWeight and LinesWeight are the query-time field
	// boosts applied during ranked lookup. They are never baked into
	// the index mapping.
	TitleWeight float64 `yaml:"title_weight"`
	BodyWeight  float64 `yaml:"body_weight"`
	LinesWeight float64 `yaml:"lines_weight"`

	// MaxResults caps the number of ranked hits fetched per query.
	MaxResults int `yaml:"max_results"`

	// CacheSize is the number of query results kept in the LRU cache.
	// 0 disables caching.
	CacheSize int `yaml:"cache_size"`
}

// ServerConfig configures the HTTP transport.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig configures diagnostics.
type LogConfig struct {
	Level string `yaml:"level"`

	// Verbose gates whether caller-facing error payloads include the
	// underlying cause and detail fields.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Dir:       "./documents",
			Extension: ".pdf",
			Workers:   runtime.NumCPU(),
		},
		Search: SearchConfig{
			TitleWeight: 1,
			BodyWeight:  2,
			LinesWeight: 3,
			MaxResults:  50,
			CacheSize:   256,
		},
		Server: ServerConfig{
			Addr: ":8712",
		},
		Log: LogConfig{
			Level:   "info",
			Verbose: false,
		},
	}
}

// Load reads configuration from the given YAML file, if present, and applies
// environment overrides. A missing path is not an error; the defaults stand.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			return nil, apperrors.New(apperrors.ErrCodeConfigNotFound,
				fmt.Sprintf("config file not found: %s", path), err)
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeConfigInvalid, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, apperrors.New(apperrors.ErrCodeConfigInvalid,
				fmt.Sprintf("invalid config file %s: %v", path, err), err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides config values from LINESEEK_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("LINESEEK_CORPUS_DIR"); v != "" {
		c.Corpus.Dir = v
	}
	if v := os.Getenv("LINESEEK_EXTENSION"); v != "" {
		c.Corpus.Extension = v
	}
	if v := os.Getenv("LINESEEK_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Corpus.Workers = n
		}
	}
	if v := os.Getenv("LINESEEK_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LINESEEK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Corpus.Dir == "" {
		return apperrors.New(apperrors.ErrCodeConfigInvalid, "corpus.dir must not be empty", nil)
	}
	if c.Corpus.Extension == "" || c.Corpus.Extension[0] != '.' {
		return apperrors.New(apperrors.ErrCodeConfigInvalid,
			fmt.Sprintf("corpus.extension must start with a dot, got %q", c.Corpus.Extension), nil)
	}
	if c.Corpus.Workers < 0 {
		return apperrors.New(apperrors.ErrCodeConfigInvalid, "corpus.workers must not be negative", nil)
	}
	if c.Search.TitleWeight <= 0 || c.Search.BodyWeight <= 0 || c.Search.LinesWeight <= 0 {
		return apperrors.New(apperrors.ErrCodeConfigInvalid, "search field weights must be positive", nil)
	}
	if c.Search.MaxResults <= 0 {
		return apperrors.New(apperrors.ErrCodeConfigInvalid, "search.max_results must be positive", nil)
	}
	if c.Search.CacheSize < 0 {
		return apperrors.New(apperrors.ErrCodeConfigInvalid, "search.cache_size must not be negative", nil)
	}
	return nil
}

// EffectiveWorkers resolves the worker bound, substituting NumCPU for 0.
func (c *Config) EffectiveWorkers() int {
	if c.Corpus.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Corpus.Workers
}
