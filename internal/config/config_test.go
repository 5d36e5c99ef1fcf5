package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zapcore"

	"storefront/internal/storage"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storefront.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", envMap(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if cfg.Storage.SQLitePath != "storefront.db" || cfg.Storage.Driver != storage.DriverSQLite {
		t.Fatalf("unexpected storage defaults %+v", cfg.Storage)
	}
}

func TestLoadYAMLThenEnvOverrides(t *testing.T) {
	path := writeFile(t, `
storage:
  driver: s3
  s3:
    bucket: from-file
    region: eu-west-1
log:
  level: debug
metrics:
  namespace: shop
`)
	cfg, err := Load(path, envMap(map[string]string{
		"STOREFRONT_BLOB_S3_BUCKET":     "from-env",
		"STOREFRONT_BLOB_S3_ENDPOINT":   "http://localhost:9000",
		"STOREFRONT_BLOB_S3_PATH_STYLE": "true",
	}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	want.Storage.Driver = storage.DriverS3
	want.Storage.S3.Bucket = "from-env"
	want.Storage.S3.Region = "eu-west-1"
	want.Storage.S3.Endpoint = "http://localhost:9000"
	want.Storage.S3.PathStyle = true
	want.Log.Level = "debug"
	want.Metrics.Namespace = "shop"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	lvl, err := cfg.Log.ZapLevel()
	if err != nil || lvl != zapcore.DebugLevel {
		t.Fatalf("ZapLevel = %v, %v", lvl, err)
	}
}

func TestLoadEnvSelectsDriver(t *testing.T) {
	cfg, err := Load("", envMap(map[string]string{
		"STOREFRONT_STORAGE_DRIVER": "postgres",
		"STOREFRONT_POSTGRES_DSN":   "postgres://db/storefront",
		"STOREFRONT_LOG_LEVEL":      "warn",
	}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Driver != storage.DriverPostgres || cfg.Storage.PostgresDSN != "postgres://db/storefront" || cfg.Log.Level != "warn" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestMetricsExporterSelection(t *testing.T) {
	cfg, err := Load(writeFile(t, "metrics:\n  exporter: expvar\n"), envMap(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Metrics.Exporter.Prometheus() || !cfg.Metrics.Exporter.Expvar() {
		t.Fatalf("expvar exporter resolved to %+v", cfg.Metrics)
	}
	cfg, err = Load("", envMap(map[string]string{"STOREFRONT_METRICS_EXPORTER": "both"}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Metrics.Exporter.Prometheus() || !cfg.Metrics.Exporter.Expvar() {
		t.Fatalf("both exporter resolved to %+v", cfg.Metrics)
	}
	if !Default().Metrics.Exporter.Prometheus() || Default().Metrics.Exporter.Expvar() {
		t.Fatalf("default exporter should be prometheus only")
	}
	if _, err := Load("", envMap(map[string]string{"STOREFRONT_STORAGE_DRIVER": "memory-objects"})); err != nil {
		t.Fatalf("memory-objects driver rejected: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]struct {
		file string
		env  map[string]string
		want string
	}{
		"unknown driver":   {env: map[string]string{"STOREFRONT_STORAGE_DRIVER": "redis"}, want: "unknown storage driver"},
		"s3 sans bucket":   {env: map[string]string{"STOREFRONT_STORAGE_DRIVER": "s3"}, want: "requires a bucket"},
		"bad level":        {env: map[string]string{"STOREFRONT_LOG_LEVEL": "loud"}, want: "log level"},
		"bad path style":   {env: map[string]string{"STOREFRONT_BLOB_S3_PATH_STYLE": "maybe"}, want: "PATH_STYLE"},
		"unknown yaml key": {file: "storage:\n  engine: sqlite\n", want: "parse config"},
		"bad exporter":     {env: map[string]string{"STOREFRONT_METRICS_EXPORTER": "statsd"}, want: "unknown metrics exporter"},
	}
	for name, tc := range cases {
		path := ""
		if tc.file != "" {
			path = writeFile(t, tc.file)
		}
		if _, err := Load(path, envMap(tc.env)); err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error containing %q, got %v", name, tc.want, err)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), envMap(nil)); err == nil {
		t.Fatalf("expected missing file error")
	}
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, ""), envMap(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}
