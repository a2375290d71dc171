package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/unbound-force/recase/internal/style"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing temp settings: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if len(cfg.Priorities) != 0 {
		t.Errorf("expected no default priorities, got %v", cfg.Priorities)
	}
	if cfg.Level() != log.WarnLevel {
		t.Errorf("Level() = %v, want warn", cfg.Level())
	}
}

func TestLoad_File(t *testing.T) {
	path := writeSettings(t, `priorities:
  - a_b
  - aB
log_level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Level() != log.DebugLevel {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}

	styles, err := cfg.Styles()
	if err != nil {
		t.Fatalf("Styles error: %v", err)
	}
	want := []style.Style{
		{Case: style.Lower, Word: style.Underscore},
		{Case: style.Camel},
	}
	if len(styles) != len(want) {
		t.Fatalf("got %d styles, want %d", len(styles), len(want))
	}
	for i := range want {
		if styles[i] != want[i] {
			t.Errorf("styles[%d] = %+v, want %+v", i, styles[i], want[i])
		}
	}
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := Load(writeSettings(t, ""))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestLoad_InvalidPriorityRejected(t *testing.T) {
	path := writeSettings(t, "priorities: [\"a_b\", \"nope\"]\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid priority")
	}
	if !strings.Contains(err.Error(), "settings file") {
		t.Errorf("error should mention 'settings file', got: %s", err)
	}
	var pe *style.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("expected wrapped *style.ParseError, got %T", err)
	}
}

func TestLoad_InvalidLogLevelRejected(t *testing.T) {
	if _, err := Load(writeSettings(t, "log_level: loud\n")); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	_, err := Load(writeSettings(t, "priority: [a_b]\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "parsing YAML") {
		t.Errorf("unexpected error: %s", err)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit settings file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoad_EnvPath(t *testing.T) {
	path := writeSettings(t, "log_level: error\n")
	t.Setenv(EnvPath, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Level() != log.ErrorLevel {
		t.Errorf("Level() = %v, want error", cfg.Level())
	}
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Setenv(EnvPath, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want default warn", cfg.LogLevel)
	}
}
