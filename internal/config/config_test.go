package config

import (
	"os"
	"testing"
)

func TestConfigLoad_Defaults(t *testing.T) {
	_ = os.Unsetenv("TURTLE_TRACK_BUILD_TARGET")
	_ = os.Unsetenv("TURTLE_TRACK_STORE_DRIVER")
	_ = os.Unsetenv("TURTLE_TRACK_HTTP_PORT")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.BuildTarget != "local" || cfg.StoreDriver != "memory" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.HTTPPort != 8080 {
		t.Fatalf("unexpected default port: %d", cfg.HTTPPort)
	}
	if cfg.TurtleLatencyMs != 300 || cfg.NestLatencyMs != 500 {
		t.Fatalf("unexpected default latencies: %+v", cfg)
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	_ = os.Setenv("TURTLE_TRACK_HTTP_PORT", "9191")
	defer func() { _ = os.Unsetenv("TURTLE_TRACK_HTTP_PORT") }()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 9191 {
		t.Fatalf("env override failed, got %d", cfg.HTTPPort)
	}
	if cfg.HTTPAddr() != ":9191" {
		t.Fatalf("unexpected addr %q", cfg.HTTPAddr())
	}
}

func TestResolveDefaults_PostgresRequiresDSN(t *testing.T) {
	cfg := &Config{BuildTarget: "cloud", StoreDriver: "auto"}
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatal("expected error for missing DSN")
	}

	cfg = &Config{BuildTarget: "cloud", StoreDriver: "auto", PostgresDSN: "postgres://x"}
	if err := cfg.ResolveDefaults(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StoreDriver != "postgres" {
		t.Fatalf("expected postgres driver, got %s", cfg.StoreDriver)
	}
}

func TestResolveDefaults_RejectsUnknownTarget(t *testing.T) {
	cfg := &Config{BuildTarget: "staging"}
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatal("expected error for unknown build target")
	}
}
