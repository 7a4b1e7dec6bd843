// Package config loads triedo CLI configuration.
//
// Values are resolved in order: built-in defaults, a YAML file, then
// TRIEDO_* environment variables. Command-line flags are applied on top by
// the CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/triedo"
	"github.com/hupe1980/triedo/codec"
	"github.com/hupe1980/triedo/command"
	"github.com/hupe1980/triedo/trie"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete CLI configuration.
type Config struct {
	Index   IndexConfig   `yaml:"index"`
	Batch   BatchConfig   `yaml:"batch"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	S3      S3Config      `yaml:"s3"`
	Minio   MinioConfig   `yaml:"minio"`
}

// IndexConfig selects the search engine and trie backend.
type IndexConfig struct {
	Backend   string `yaml:"backend"`
	Engine    string `yaml:"engine"`
	PurgeTags bool   `yaml:"purge_tags"`
}

// BatchConfig configures batch runs.
type BatchConfig struct {
	// Source is where job files live: a local directory,
	// "s3://bucket/prefix" or "minio://bucket/prefix".
	Source             string `yaml:"source"`
	Concurrency        int    `yaml:"concurrency"`
	IOLimitBytesPerSec int64  `yaml:"io_limit_bytes_per_sec"`
	Format             string `yaml:"format"`
	Codec              string `yaml:"codec"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address for /metrics. Empty disables the endpoint.
	Addr string `yaml:"addr"`
}

// S3Config configures s3:// sources.
type S3Config struct {
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
}

// MinioConfig configures minio:// sources.
type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
	Region    string `yaml:"region"`
}

// NewConfig returns the defaults.
func NewConfig() *Config {
	return &Config{
		Index: IndexConfig{
			Backend: string(trie.BackendMap),
			Engine:  string(triedo.EngineIndexed),
		},
		Batch: BatchConfig{
			Source:      ".",
			Concurrency: runtime.NumCPU(),
			Format:      string(command.FormatText),
			Codec:       codec.Default.Name(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path (if non-empty), applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode unmarshals YAML over the current values. Unknown keys are errors.
func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnvOverrides applies TRIEDO_* environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("TRIEDO_BACKEND"); v != "" {
		c.Index.Backend = v
	}
	if v := os.Getenv("TRIEDO_ENGINE"); v != "" {
		c.Index.Engine = v
	}
	if v := os.Getenv("TRIEDO_PURGE_TAGS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: TRIEDO_PURGE_TAGS: %v", ErrInvalid, err)
		}
		c.Index.PurgeTags = b
	}
	if v := os.Getenv("TRIEDO_SOURCE"); v != "" {
		c.Batch.Source = v
	}
	if v := os.Getenv("TRIEDO_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: TRIEDO_CONCURRENCY: %v", ErrInvalid, err)
		}
		c.Batch.Concurrency = n
	}
	if v := os.Getenv("TRIEDO_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("TRIEDO_METRICS_ADDR"); v != "" {
		c.Metrics.Addr = v
	}
	if v := os.Getenv("TRIEDO_MINIO_ACCESS_KEY"); v != "" {
		c.Minio.AccessKey = v
	}
	if v := os.Getenv("TRIEDO_MINIO_SECRET_KEY"); v != "" {
		c.Minio.SecretKey = v
	}
	return nil
}

// Validate rejects values the CLI cannot act on.
func (c *Config) Validate() error {
	if _, err := trie.ParseBackend(c.Index.Backend); err != nil {
		return fmt.Errorf("%w: index.backend: %v", ErrInvalid, err)
	}
	if _, err := triedo.ParseEngine(c.Index.Engine); err != nil {
		return fmt.Errorf("%w: index.engine: %v", ErrInvalid, err)
	}
	if _, err := command.ParseFormat(c.Batch.Format); err != nil {
		return fmt.Errorf("%w: batch.format: %v", ErrInvalid, err)
	}
	if _, ok := codec.ByName(c.Batch.Codec); !ok {
		return fmt.Errorf("%w: batch.codec: unknown codec %q (want one of %s)",
			ErrInvalid, c.Batch.Codec, strings.Join(codec.Names(), ", "))
	}
	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("%w: batch.concurrency must be at least 1, got %d", ErrInvalid, c.Batch.Concurrency)
	}
	if c.Batch.IOLimitBytesPerSec < 0 {
		return fmt.Errorf("%w: batch.io_limit_bytes_per_sec must be non-negative", ErrInvalid)
	}
	if _, err := c.SlogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// SlogLevel parses Log.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.Log.Level))
	return l, err
}

// Logger builds the configured logger.
func (c *Config) Logger() *triedo.Logger {
	level, _ := c.SlogLevel()
	if c.Log.Format == "json" {
		return triedo.NewJSONLogger(level)
	}
	return triedo.NewTextLogger(level)
}

// ListOptions translates the index section into list options.
func (c *Config) ListOptions() []triedo.Option {
	return []triedo.Option{
		triedo.WithBackend(trie.Backend(c.Index.Backend)),
		triedo.WithEngine(triedo.Engine(c.Index.Engine)),
		triedo.WithTagPurge(c.Index.PurgeTags),
	}
}

// OutputCodec returns the configured JSON codec.
func (c *Config) OutputCodec() codec.Codec {
	cd, ok := codec.ByName(c.Batch.Codec)
	if !ok {
		return codec.Default
	}
	return cd
}
