package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/triedo"
	"github.com/hupe1980/triedo/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "triedo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewConfig_ReturnsDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "map", cfg.Index.Backend)
	assert.Equal(t, "indexed", cfg.Index.Engine)
	assert.False(t, cfg.Index.PurgeTags)
	assert.Equal(t, ".", cfg.Batch.Source)
	assert.Equal(t, runtime.NumCPU(), cfg.Batch.Concurrency)
	assert.Equal(t, "text", cfg.Batch.Format)
	assert.Equal(t, "go-json", cfg.Batch.Codec)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Metrics.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFile_ReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoad_YamlOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
index:
  backend: radix
  purge_tags: true
batch:
  source: s3://jobs/today
  concurrency: 2
  format: json
log:
  level: debug
  format: json
metrics:
  addr: ":9090"
minio:
  endpoint: localhost:9000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "radix", cfg.Index.Backend)
	assert.Equal(t, "indexed", cfg.Index.Engine) // untouched default
	assert.True(t, cfg.Index.PurgeTags)
	assert.Equal(t, "s3://jobs/today", cfg.Batch.Source)
	assert.Equal(t, 2, cfg.Batch.Concurrency)
	assert.Equal(t, "json", cfg.Batch.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
	assert.Equal(t, "localhost:9000", cfg.Minio.Endpoint)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "index: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(writeConfig(t, "index:\n  bakend: radix\n"))
		assert.Error(t, err)
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := Load(writeConfig(t, "index:\n  backend: btree\n"))
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "index:\n  backend: radix\n")

	t.Setenv("TRIEDO_BACKEND", "nibble")
	t.Setenv("TRIEDO_ENGINE", "linear")
	t.Setenv("TRIEDO_PURGE_TAGS", "true")
	t.Setenv("TRIEDO_SOURCE", "minio://bucket/jobs")
	t.Setenv("TRIEDO_CONCURRENCY", "3")
	t.Setenv("TRIEDO_LOG_LEVEL", "warn")
	t.Setenv("TRIEDO_METRICS_ADDR", ":2112")
	t.Setenv("TRIEDO_MINIO_ACCESS_KEY", "ak")
	t.Setenv("TRIEDO_MINIO_SECRET_KEY", "sk")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "nibble", cfg.Index.Backend)
	assert.Equal(t, "linear", cfg.Index.Engine)
	assert.True(t, cfg.Index.PurgeTags)
	assert.Equal(t, "minio://bucket/jobs", cfg.Batch.Source)
	assert.Equal(t, 3, cfg.Batch.Concurrency)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, ":2112", cfg.Metrics.Addr)
	assert.Equal(t, "ak", cfg.Minio.AccessKey)
	assert.Equal(t, "sk", cfg.Minio.SecretKey)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("TRIEDO_PURGE_TAGS", "maybe")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"engine", func(c *Config) { c.Index.Engine = "fuzzy" }},
		{"format", func(c *Config) { c.Batch.Format = "xml" }},
		{"codec", func(c *Config) { c.Batch.Codec = "msgpack" }},
		{"concurrency", func(c *Config) { c.Batch.Concurrency = 0 }},
		{"io limit", func(c *Config) { c.Batch.IOLimitBytesPerSec = -1 }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.Log.Level = "debug"

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
	assert.NotNil(t, cfg.Logger())
}

func TestListOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.Index.Backend = "radix"
	cfg.Index.PurgeTags = true

	l, err := triedo.New(cfg.ListOptions()...)
	require.NoError(t, err)

	l.Create([]string{"a"}, []string{"t"})
	l.Complete(0)
	assert.Empty(t, l.Search([]model.Term{model.Tag("t")}))
	assert.Equal(t, "radix", string(l.Stats().Backend))
}

func TestOutputCodec(t *testing.T) {
	cfg := NewConfig()
	cfg.Batch.Codec = "json"
	assert.Equal(t, "json", cfg.OutputCodec().Name())
}
