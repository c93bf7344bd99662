package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// clearEnv blanks every config-related env var for the duration of the test.
// Empty values never override, so this is equivalent to unsetting them.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"ICP_CONFIG_PATH",
		"ICP_DEV_MODE",
		"ICP_PORT",
		"ICP_READ_TIMEOUT",
		"ICP_WRITE_TIMEOUT",
		"ICP_SHUTDOWN_TIMEOUT",
		"ICP_API_KEY",
		"ICP_LOG_LEVEL",
		"ICP_LOG_FORMAT",
		"ICP_METRICS_ENABLED",
		"ICP_METRICS_PATH",
		"ICP_BATCH_WORKERS",
	} {
		t.Setenv(v, "")
	}
	// Keep tests independent of any config/icp.yaml next to the package.
	t.Setenv("ICP_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icp.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func dur(d Duration) time.Duration {
	return time.Duration(d)
}

// --- Defaults and validation ---

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ICP_DEV_MODE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if dur(cfg.Server.ReadTimeout) != 10*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 10s", dur(cfg.Server.ReadTimeout))
	}
	if dur(cfg.Server.WriteTimeout) != 10*time.Second {
		t.Errorf("Server.WriteTimeout = %v, want 10s", dur(cfg.Server.WriteTimeout))
	}
	if dur(cfg.Server.ShutdownTimeout) != 15*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 15s", dur(cfg.Server.ShutdownTimeout))
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want info/json", cfg.Log)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics = %+v, want enabled at /metrics", cfg.Metrics)
	}
	if cfg.Batch.Workers != 8 {
		t.Errorf("Batch.Workers = %d, want 8", cfg.Batch.Workers)
	}
	if cfg.Auth.APIKey != "" {
		t.Errorf("Auth.APIKey = %q, want empty", cfg.Auth.APIKey)
	}
}

func TestLoad_RequiresAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	if err == nil {
		t.Fatal("Load() error = nil, want missing API key error")
	}
	if !strings.Contains(err.Error(), "ICP_API_KEY") {
		t.Errorf("Load() error = %v, want mention of ICP_API_KEY", err)
	}
}

func TestLoad_WithAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("ICP_API_KEY", "test-api-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.APIKey != "test-api-key" {
		t.Errorf("Auth.APIKey = %q, want test-api-key", cfg.Auth.APIKey)
	}
}

func TestLoad_BatchWorkersMustBePositive(t *testing.T) {
	clearEnv(t)
	t.Setenv("ICP_DEV_MODE", "true")
	t.Setenv("ICP_BATCH_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Error("Load() error = nil, want batch.workers error even in dev mode")
	}
}

func TestLoadLocal_NoAPIKeyNeeded(t *testing.T) {
	clearEnv(t)
	t.Setenv("ICP_BATCH_WORKERS", "3")

	cfg, err := LoadLocal()
	if err != nil {
		t.Fatalf("LoadLocal() error = %v", err)
	}
	if cfg.Batch.Workers != 3 {
		t.Errorf("Batch.Workers = %d, want 3", cfg.Batch.Workers)
	}
}

func TestLoadLocal_ReadsYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv("ICP_CONFIG_PATH", writeConfig(t, "batch:\n  workers: 5\n"))

	cfg, err := LoadLocal()
	if err != nil {
		t.Fatalf("LoadLocal() error = %v", err)
	}
	if cfg.Batch.Workers != 5 {
		t.Errorf("Batch.Workers = %d, want 5 from YAML", cfg.Batch.Workers)
	}
}

func TestLoadLocal_RejectsZeroWorkers(t *testing.T) {
	clearEnv(t)
	t.Setenv("ICP_BATCH_WORKERS", "0")

	if _, err := LoadLocal(); err == nil || !strings.Contains(err.Error(), "batch.workers") {
		t.Errorf("LoadLocal() error = %v, want batch.workers error", err)
	}
}

// --- Environment overrides ---

func TestLoad_AllEnvVarMappings(t *testing.T) {
	clearEnv(t)
	t.Setenv("ICP_DEV_MODE", "true")
	t.Setenv("ICP_PORT", "9191")
	t.Setenv("ICP_READ_TIMEOUT", "3s")
	t.Setenv("ICP_WRITE_TIMEOUT", "4s")
	t.Setenv("ICP_SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("ICP_LOG_LEVEL", "debug")
	t.Setenv("ICP_LOG_FORMAT", "text")
	t.Setenv("ICP_METRICS_ENABLED", "false")
	t.Setenv("ICP_METRICS_PATH", "/internal/metrics")
	t.Setenv("ICP_BATCH_WORKERS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Server.Port", cfg.Server.Port, 9191},
		{"Server.ReadTimeout", dur(cfg.Server.ReadTimeout), 3 * time.Second},
		{"Server.WriteTimeout", dur(cfg.Server.WriteTimeout), 4 * time.Second},
		{"Server.ShutdownTimeout", dur(cfg.Server.ShutdownTimeout), 5 * time.Second},
		{"Log.Level", cfg.Log.Level, "debug"},
		{"Log.Format", cfg.Log.Format, "text"},
		{"Metrics.Enabled", cfg.Metrics.Enabled, false},
		{"Metrics.Path", cfg.Metrics.Path, "/internal/metrics"},
		{"Batch.Workers", cfg.Batch.Workers, 2},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoad_UnparseableEnvIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("ICP_DEV_MODE", "true")
	t.Setenv("ICP_PORT", "eighty")
	t.Setenv("ICP_READ_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if dur(cfg.Server.ReadTimeout) != 10*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 10s", dur(cfg.Server.ReadTimeout))
	}
}

// --- YAML ---

func TestLoadFromFile_ValidYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv("ICP_DEV_MODE", "true")

	path := writeConfig(t, `
server:
  port: 9000
  read_timeout: 5m30s
  shutdown_timeout: 2s
log:
  level: warn
metrics:
  enabled: false
batch:
  workers: 3
`)
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if dur(cfg.Server.ReadTimeout) != 5*time.Minute+30*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5m30s", dur(cfg.Server.ReadTimeout))
	}
	if dur(cfg.Server.WriteTimeout) != 10*time.Second {
		t.Errorf("Server.WriteTimeout = %v, want 10s (default)", dur(cfg.Server.WriteTimeout))
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want warn/json", cfg.Log)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = true, want false from YAML")
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics.Path = %q, want default /metrics", cfg.Metrics.Path)
	}
	if cfg.Batch.Workers != 3 {
		t.Errorf("Batch.Workers = %d, want 3", cfg.Batch.Workers)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv("ICP_DEV_MODE", "true")
	t.Setenv("ICP_CONFIG_PATH", writeConfig(t, "server:\n  port: 9000\nlog:\n  level: warn\n"))
	t.Setenv("ICP_PORT", "7000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want 7000 (env)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn (YAML)", cfg.Log.Level)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "server:\n  port: [\n"},
		{"invalid duration", "server:\n  read_timeout: not_a_duration\n"},
		{"zero workers", "batch:\n  workers: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("ICP_DEV_MODE", "true")
			if _, err := LoadFromFile(writeConfig(t, tt.content)); err == nil {
				t.Error("LoadFromFile() error = nil, want error")
			}
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("ICP_DEV_MODE", "true")

	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFromFile() error = nil, want error for missing file")
	}
}

func TestConfig_APIKeyNotInYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv("ICP_API_KEY", "from-env")

	cfg, err := LoadFromFile(writeConfig(t, "auth:\n  api_key: from-yaml\n"))
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if cfg.Auth.APIKey != "from-env" {
		t.Errorf("Auth.APIKey = %q, want from-env", cfg.Auth.APIKey)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	if strings.Contains(string(out), "from-env") {
		t.Errorf("marshaled config leaks API key:\n%s", out)
	}
	if !strings.Contains(string(out), "read_timeout: 10s") {
		t.Errorf("marshaled config = %s, want duration rendered as string", out)
	}
}
