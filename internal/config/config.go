// Package config loads storefront settings from an optional YAML file with
// STOREFRONT_* environment overrides.
//
//	STOREFRONT_STORAGE_DRIVER: memory|memory-objects|sqlite|postgres|fs|s3 (default sqlite)
//	STOREFRONT_SQLITE_PATH: sqlite file (default ./storefront.db)
//	STOREFRONT_POSTGRES_DSN: DSN when driver=postgres
//	STOREFRONT_BLOB_FS_ROOT: object root when driver=fs (default ./blobdata)
//	STOREFRONT_BLOB_S3_BUCKET / _REGION / _ENDPOINT / _PATH_STYLE: driver=s3
//	STOREFRONT_LOG_LEVEL: debug|info|warn|error (default info)
//	STOREFRONT_METRICS_NAMESPACE: Prometheus namespace (default storefront)
//	STOREFRONT_METRICS_EXPORTER: prometheus|expvar|both (default prometheus)
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"storefront/internal/infra/persistence/sqlite"
	"storefront/internal/storage"
)

// Config is the full application configuration.
type Config struct {
	Storage storage.Config `yaml:"storage"`
	Log     LogConfig      `yaml:"log"`
	Metrics MetricsConfig  `yaml:"metrics"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Exporter names the metrics backends the CLI installs.
type Exporter string

const (
	ExporterPrometheus Exporter = "prometheus"
	ExporterExpvar     Exporter = "expvar"
	ExporterBoth       Exporter = "both"
)

// Prometheus reports whether the Prometheus recorder is installed.
func (e Exporter) Prometheus() bool { return e == "" || e == ExporterPrometheus || e == ExporterBoth }

// Expvar reports whether the expvar recorder is installed.
func (e Exporter) Expvar() bool { return e == ExporterExpvar || e == ExporterBoth }

// MetricsConfig controls the dispatch metrics recorders.
type MetricsConfig struct {
	Namespace string   `yaml:"namespace"`
	Exporter  Exporter `yaml:"exporter"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage: storage.Config{Driver: storage.DriverSQLite, SQLitePath: sqlite.DefaultPath},
		Log:     LogConfig{Level: "info"},
		Metrics: MetricsConfig{Namespace: "storefront", Exporter: ExporterPrometheus},
	}
}

// Load reads path (skipped when empty) over the defaults, then applies
// environment overrides looked up through getenv (os.Getenv when nil).
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := decode(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	if err := applyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(raw []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	strs := []struct {
		key string
		dst *string
	}{
		{"STOREFRONT_SQLITE_PATH", &cfg.Storage.SQLitePath},
		{"STOREFRONT_POSTGRES_DSN", &cfg.Storage.PostgresDSN},
		{"STOREFRONT_BLOB_FS_ROOT", &cfg.Storage.FSRoot},
		{"STOREFRONT_BLOB_S3_BUCKET", &cfg.Storage.S3.Bucket},
		{"STOREFRONT_BLOB_S3_REGION", &cfg.Storage.S3.Region},
		{"STOREFRONT_BLOB_S3_ENDPOINT", &cfg.Storage.S3.Endpoint},
		{"STOREFRONT_LOG_LEVEL", &cfg.Log.Level},
		{"STOREFRONT_METRICS_NAMESPACE", &cfg.Metrics.Namespace},
	}
	for _, s := range strs {
		if v := getenv(s.key); v != "" {
			*s.dst = v
		}
	}
	if v := getenv("STOREFRONT_METRICS_EXPORTER"); v != "" {
		cfg.Metrics.Exporter = Exporter(v)
	}
	if v := getenv("STOREFRONT_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = storage.Driver(v)
	}
	if v := getenv("STOREFRONT_BLOB_S3_PATH_STYLE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("STOREFRONT_BLOB_S3_PATH_STYLE: %w", err)
		}
		cfg.Storage.S3.PathStyle = b
	}
	return nil
}

// Validate rejects unknown drivers, exporters and log levels.
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case "", storage.DriverMemory, storage.DriverMemoryObjects, storage.DriverSQLite, storage.DriverPostgres, storage.DriverFS:
	case storage.DriverS3:
		if c.Storage.S3.Bucket == "" {
			return fmt.Errorf("storage driver s3 requires a bucket")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	switch c.Metrics.Exporter {
	case "", ExporterPrometheus, ExporterExpvar, ExporterBoth:
	default:
		return fmt.Errorf("unknown metrics exporter %q", c.Metrics.Exporter)
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}
	return nil
}

// ZapLevel parses the configured level.
func (l LogConfig) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
