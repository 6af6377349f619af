package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lineseek/lineseek/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".pdf", cfg.Corpus.Extension)
	assert.Equal(t, float64(1), cfg.Search.TitleWeight)
	assert.Equal(t, float64(2), cfg.Search.BodyWeight)
	assert.Equal(t, float64(3), cfg.Search.LinesWeight)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lineseek.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
corpus:
  dir: /srv/docs
  extension: .txt
  workers: 4
search:
  lines_weight: 5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/docs", cfg.Corpus.Dir)
	assert.Equal(t, ".txt", cfg.Corpus.Extension)
	assert.Equal(t, 4, cfg.Corpus.Workers)
	assert.Equal(t, float64(5), cfg.Search.LinesWeight)
	// Untouched values keep defaults.
	assert.Equal(t, float64(2), cfg.Search.BodyWeight)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lineseek.yaml")
	require.NoError(t, os.WriteFile(path, []byte("corpus:\n  dir: /from/file\n"), 0o644))

	t.Setenv("LINESEEK_CORPUS_DIR", "/from/env")
	t.Setenv("LINESEEK_WORKERS", "2")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.Corpus.Dir)
	assert.Equal(t, 2, cfg.Corpus.Workers)
}

func TestLoad_MissingFileIsError(t *testing.T) {
	_, err := Load("/nonexistent/lineseek.yaml")

	require.Error(t, err)
	var se *apperrors.SeekError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, apperrors.ErrCodeConfigNotFound, se.Code)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Server.Addr, cfg.Server.Addr)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("corpus: [not a map"), 0o644))

	_, err := Load(path)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConfigInvalid, apperrors.GetCode(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"empty dir", func(c *Config) { c.Corpus.Dir = "" }, false},
		{"extension without dot", func(c *Config) { c.Corpus.Extension = "pdf" }, false},
		{"zero weight", func(c *Config) { c.Search.BodyWeight = 0 }, false},
		{"negative weight", func(c *Config) { c.Search.LinesWeight = -1 }, false},
		{"zero max results", func(c *Config) { c.Search.MaxResults = 0 }, false},
		{"negative cache", func(c *Config) { c.Search.CacheSize = -1 }, false},
		{"zero workers allowed", func(c *Config) { c.Corpus.Workers = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestEffectiveWorkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Corpus.Workers = 0
	assert.Greater(t, cfg.EffectiveWorkers(), 0)

	cfg.Corpus.Workers = 7
	assert.Equal(t, 7, cfg.EffectiveWorkers())
}
