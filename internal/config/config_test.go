package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ShutdownTimeout != 15*time.Second {
		t.Errorf("shutdown_timeout = %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log defaults = %+v", cfg.Log)
	}
}

func TestValidate_Defaults(t *testing.T) {
	if warnings := Default().Validate(); len(warnings) != 0 {
		t.Errorf("default config should have no warnings, got %v", warnings)
	}
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := Default()
	cfg.Server.Addr = ""
	warnings := cfg.Validate()
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "addr") {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected warning about empty addr")
	}
}

func TestValidate_SampleRate(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want bool // true = should warn
	}{
		{"zero", 0, false},
		{"half", 0.5, false},
		{"full", 1.0, false},
		{"negative", -0.1, true},
		{"above one", 1.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Tracing.SampleRate = tt.rate
			warned := false
			for _, w := range cfg.Validate() {
				if strings.Contains(w, "sample_rate") {
					warned = true
				}
			}
			if warned != tt.want {
				t.Errorf("sample_rate %v: warned=%v, want %v", tt.rate, warned, tt.want)
			}
		})
	}
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "verbose"
	warnings := cfg.Validate()
	if len(warnings) != 1 || !strings.Contains(warnings[0], "log level") {
		t.Errorf("expected log level warning, got %v", warnings)
	}
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fable.yaml")
	data := []byte("server:\n  addr: \":9090\"\nlog:\n  level: debug\naudit:\n  enabled: true\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("level = %q", cfg.Log.Level)
	}
	if !cfg.Audit.Enabled {
		t.Error("audit should be enabled")
	}
	// Keys absent from the file keep their defaults.
	if cfg.Server.WriteTimeout != 10*time.Second {
		t.Errorf("write_timeout = %v", cfg.Server.WriteTimeout)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
