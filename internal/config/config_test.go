package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.SeedFile != defaultSeedFile {
		t.Fatalf("expected default seed file %s, got %s", defaultSeedFile, cfg.SeedFile)
	}
	if cfg.MaxBodyBytes != defaultMaxBodyBytes {
		t.Fatalf("expected default body cap %d, got %d", defaultMaxBodyBytes, cfg.MaxBodyBytes)
	}
	if !cfg.CORS.Enabled || len(cfg.CORS.Origins) != 1 || cfg.CORS.Origins[0] != "*" {
		t.Fatalf("expected permissive cors by default, got %+v", cfg.CORS)
	}
	if cfg.Log.Level != defaultLogLevel || cfg.Log.Format != defaultLogFormat {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected service name %s, got %s", defaultServiceName, cfg.Metrics.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envSeedFile, "seed/players.yaml")
	t.Setenv(envMaxBodyBytes, "2048")
	t.Setenv(envCORSEnabled, "no")
	t.Setenv(envCORSOrigins, "http://a.test, http://b.test")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envMetricsOn, "false")
	t.Setenv(envOtelEndpoint, "collector:4318")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.SeedFile != "seed/players.yaml" {
		t.Fatalf("expected seed file override, got %s", cfg.SeedFile)
	}
	if cfg.MaxBodyBytes != 2048 {
		t.Fatalf("expected body cap 2048, got %d", cfg.MaxBodyBytes)
	}
	if cfg.CORS.Enabled {
		t.Fatalf("expected cors disabled")
	}
	if len(cfg.CORS.Origins) != 2 || cfg.CORS.Origins[1] != "http://b.test" {
		t.Fatalf("expected two trimmed origins, got %v", cfg.CORS.Origins)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
	if cfg.Metrics.OtlpEndpoint != "collector:4318" {
		t.Fatalf("expected otlp endpoint override, got %s", cfg.Metrics.OtlpEndpoint)
	}
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	for _, raw := range []string{"lots", "0", "-5"} {
		t.Setenv(envMaxBodyBytes, raw)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.MaxBodyBytes != defaultMaxBodyBytes {
			t.Fatalf("expected default body cap for %q, got %d", raw, cfg.MaxBodyBytes)
		}
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "port: \"7000\"\nseed_file: squad.yaml\nlog_format: json\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)
	t.Setenv(envLogFormat, "text")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7000" {
		t.Fatalf("expected port from file, got %s", cfg.Port)
	}
	if cfg.SeedFile != "squad.yaml" {
		t.Fatalf("expected seed file from file, got %s", cfg.SeedFile)
	}
	if cfg.Log.Format != "text" {
		t.Fatalf("expected environment to win over file, got %s", cfg.Log.Format)
	}
}

func TestLoadMissingConfigFileFails(t *testing.T) {
	t.Setenv(envConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoadWithFlagsOverridesEnvironment(t *testing.T) {
	t.Setenv(envPort, "8100")
	t.Setenv(envLogLevel, "warn")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("port", "", "")
	flags.String("log-level", "", "")
	if err := flags.Parse([]string{"--port", "8200"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(WithFlags(flags, map[string]string{
		KeyPort:     "port",
		KeyLogLevel: "log-level",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8200" {
		t.Fatalf("expected flag to win over environment, got %s", cfg.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("expected unset flag to fall back to environment, got %s", cfg.Log.Level)
	}
}

func TestLoadWithUnknownFlagFails(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if _, err := Load(WithFlags(flags, map[string]string{KeyPort: "port"})); err == nil {
		t.Fatalf("expected error binding an undefined flag")
	}
}

func TestLoadEnvFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("FOOTBALL_DOTENV_MARKER=loaded\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("FOOTBALL_DOTENV_MARKER", "")
	os.Unsetenv("FOOTBALL_DOTENV_MARKER")

	if err := LoadEnvFiles(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("FOOTBALL_DOTENV_MARKER"); got != "loaded" {
		t.Fatalf("expected value from env file, got %q", got)
	}

	if err := LoadEnvFiles(filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Fatalf("expected error for explicit missing env file")
	}
}

func TestLoadEnvFilesWithoutDefaultFile(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if err := LoadEnvFiles(); err != nil {
		t.Fatalf("expected missing .env to be ignored, got %v", err)
	}
}
