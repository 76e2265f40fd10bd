// File: config_test.go
// Title: Configuration Tests
// Description: Unit tests for configuration loading, typed getters and
//              environment variable overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const tomlSample = `
[interpreter]
max_statement_length = 2048
render_width = 100
trace_bindings = true

[shell]
prompt = "parley> "
history_size = 500

[session]
save_dir = "/tmp/parley"

[logging]
level = "debug"
format = "console"
timeout = "30s"

tags = ["repl", "batch"]
`

const yamlSample = `
interpreter:
  max_statement_length: 2048
shell:
  prompt: "parley> "
`

func TestLoadFromStringTOML(t *testing.T) {
	cfg, err := LoadFromString(tomlSample, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}

	tests := []struct {
		name  string
		check func(t *testing.T)
	}{
		{"String value", func(t *testing.T) {
			if got := cfg.GetString("shell.prompt"); got != "parley> " {
				t.Errorf("shell.prompt = %q", got)
			}
		}},
		{"Int value", func(t *testing.T) {
			if got := cfg.GetInt("interpreter.max_statement_length"); got != 2048 {
				t.Errorf("max_statement_length = %d", got)
			}
		}},
		{"Bool value", func(t *testing.T) {
			if !cfg.GetBool("interpreter.trace_bindings") {
				t.Error("trace_bindings should be true")
			}
		}},
		{"Duration value", func(t *testing.T) {
			if got := cfg.GetDuration("logging.timeout"); got != 30*time.Second {
				t.Errorf("timeout = %v", got)
			}
		}},
		{"String slice", func(t *testing.T) {
			got := cfg.GetStringSlice("tags")
			if len(got) != 2 || got[0] != "repl" || got[1] != "batch" {
				t.Errorf("tags = %v", got)
			}
		}},
		{"Missing key with default", func(t *testing.T) {
			if got := cfg.GetString("shell.missing", "fallback"); got != "fallback" {
				t.Errorf("default fallback = %q", got)
			}
		}},
		{"Missing key without default", func(t *testing.T) {
			if got := cfg.GetInt("no.such.key"); got != 0 {
				t.Errorf("missing int = %d", got)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.check)
	}
}

func TestLoadFromStringYAML(t *testing.T) {
	cfg, err := LoadFromString(yamlSample, FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}

	if got := cfg.GetString("shell.prompt"); got != "parley> " {
		t.Errorf("shell.prompt = %q", got)
	}
	if got := cfg.GetInt("interpreter.max_statement_length"); got != 2048 {
		t.Errorf("max_statement_length = %d", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "parley.toml")
	if err := os.WriteFile(tomlPath, []byte(tomlSample), 0o644); err != nil {
		t.Fatalf("writing sample: %v", err)
	}

	cfg, err := Load(tomlPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Format() != FormatTOML {
		t.Errorf("Format = %v, want toml", cfg.Format())
	}
	if cfg.FilePath() != tomlPath {
		t.Errorf("FilePath = %q", cfg.FilePath())
	}
	if got := cfg.GetInt("shell.history_size"); got != 500 {
		t.Errorf("history_size = %d", got)
	}

	yamlPath := filepath.Join(dir, "parley.yaml")
	if err := os.WriteFile(yamlPath, []byte(yamlSample), 0o644); err != nil {
		t.Fatalf("writing sample: %v", err)
	}

	cfg, err = Load(yamlPath)
	if err != nil {
		t.Fatalf("Load failed for YAML: %v", err)
	}
	if cfg.Format() != FormatYAML {
		t.Errorf("Format = %v, want yaml", cfg.Format())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("Load with empty path should fail")
	}
	if _, err := Load("/nonexistent/parley.toml"); err == nil {
		t.Error("Load with missing file should fail")
	}
	if _, err := LoadFromString("not: [valid: toml", FormatTOML); err == nil {
		t.Error("invalid TOML should fail")
	}
}

func TestEnvOverride(t *testing.T) {
	cfg, err := LoadFromString(tomlSample, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}
	cfg.SetEnvPrefix("PARLEY")

	t.Setenv("PARLEY_SHELL_PROMPT", ">> ")
	if got := cfg.GetString("shell.prompt"); got != ">> " {
		t.Errorf("env override ignored, got %q", got)
	}

	t.Setenv("PARLEY_SHELL_HISTORY_SIZE", "100")
	if got := cfg.GetInt("shell.history_size"); got != 100 {
		t.Errorf("env int override ignored, got %d", got)
	}
}

func TestSetAndHas(t *testing.T) {
	cfg := New()

	if cfg.Has("runtime.flag") {
		t.Error("empty config should not have runtime.flag")
	}

	cfg.Set("runtime.flag", true)
	if !cfg.Has("runtime.flag") {
		t.Error("Set did not create runtime.flag")
	}
	if !cfg.GetBool("runtime.flag") {
		t.Error("runtime.flag should be true")
	}
}

func TestDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.toml")
	if err := os.WriteFile(path, []byte(`existing = "file"`), 0o644); err != nil {
		t.Fatalf("writing sample: %v", err)
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"existing": "default",
			"extra":    42,
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions failed: %v", err)
	}

	if got := cfg.GetString("existing"); got != "file" {
		t.Errorf("file value should win over default, got %q", got)
	}
	if got := cfg.GetInt("extra"); got != 42 {
		t.Errorf("default not applied, got %d", got)
	}
}

func TestGetAllReturnsCopy(t *testing.T) {
	cfg, err := LoadFromString(tomlSample, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}

	all := cfg.GetAll()
	if section, ok := all["shell"].(map[string]interface{}); ok {
		section["prompt"] = "mutated"
	}

	if got := cfg.GetString("shell.prompt"); got != "parley> " {
		t.Errorf("GetAll leaked internal state, prompt = %q", got)
	}
}
