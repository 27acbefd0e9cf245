package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UI.Prompt != "Enter a command: " {
		t.Errorf("default prompt = %q, want %q", cfg.UI.Prompt, "Enter a command: ")
	}
	if cfg.UI.Greeting != "Welcome to the assistant bot!" {
		t.Errorf("default greeting = %q, want %q", cfg.UI.Greeting, "Welcome to the assistant bot!")
	}
	if cfg.UI.Farewell != "Good bye!" {
		t.Errorf("default farewell = %q, want %q", cfg.UI.Farewell, "Good bye!")
	}
	if cfg.UI.Plain {
		t.Error("default plain should be false")
	}
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rolodex.yaml")
	if err := os.WriteFile(cfgPath, []byte(`
ui:
  prompt: "> "
  greeting: Hi there!
  plain: true
`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UI.Prompt != "> " {
		t.Errorf("prompt = %q, want %q", cfg.UI.Prompt, "> ")
	}
	if cfg.UI.Greeting != "Hi there!" {
		t.Errorf("greeting = %q, want %q", cfg.UI.Greeting, "Hi there!")
	}
	if !cfg.UI.Plain {
		t.Error("plain should be true")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/rolodex.yaml")
	if err != nil {
		t.Fatalf("Load() should return defaults for missing file, got error: %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load(missing) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rolodex.yaml")
	if err := os.WriteFile(cfgPath, []byte("{{invalid yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(cfgPath); err == nil {
		t.Fatal("Load(invalid YAML) should return error")
	}
}

func TestLoad_UnknownField(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rolodex.yaml")
	if err := os.WriteFile(cfgPath, []byte("colour: mauve\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(cfgPath); err == nil {
		t.Fatal("Load(unknown field) should return error")
	}
}

func TestLoad_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rolodex.yaml")
	if err := os.WriteFile(cfgPath, []byte(`
ui:
  prompt: "? "
`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UI.Prompt != "? " {
		t.Errorf("prompt = %q, want %q", cfg.UI.Prompt, "? ")
	}
	// Unset fields should retain defaults.
	if cfg.UI.Greeting != "Welcome to the assistant bot!" {
		t.Errorf("greeting = %q, want default", cfg.UI.Greeting)
	}
}

func TestLoadLayered_Priority(t *testing.T) {
	// User config sets prompt and greeting, project config overrides prompt.
	userDir := t.TempDir()
	projectDir := t.TempDir()

	userCfg := filepath.Join(userDir, "rolodex.yaml")
	if err := os.WriteFile(userCfg, []byte(`
ui:
  prompt: "user> "
  greeting: user greeting
`), 0o644); err != nil {
		t.Fatal(err)
	}

	projectCfg := filepath.Join(projectDir, "rolodex.yaml")
	if err := os.WriteFile(projectCfg, []byte(`
ui:
  prompt: "project> "
`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLayered(userCfg, projectCfg)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	if cfg.UI.Prompt != "project> " {
		t.Errorf("prompt = %q, want later layer to win", cfg.UI.Prompt)
	}
	if cfg.UI.Greeting != "user greeting" {
		t.Errorf("greeting = %q, want earlier layer preserved", cfg.UI.Greeting)
	}
}

func TestLoadLayered_MissingFilesSkipped(t *testing.T) {
	cfg, err := LoadLayered("/nonexistent/a.yaml", "/nonexistent/b.yaml")
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("LoadLayered(missing) = %+v, want defaults", *cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "empty prompt", mutate: func(c *Config) { c.UI.Prompt = "" }, wantErr: true},
		{name: "empty farewell", mutate: func(c *Config) { c.UI.Farewell = "" }, wantErr: true},
		{name: "empty greeting is allowed", mutate: func(c *Config) { c.UI.Greeting = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ROLODEX_PROMPT", "env> ")
	t.Setenv("ROLODEX_GREETING", "env greeting")
	t.Setenv("ROLODEX_PLAIN", "true")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.UI.Prompt != "env> " {
		t.Errorf("prompt = %q, want env override", cfg.UI.Prompt)
	}
	if cfg.UI.Greeting != "env greeting" {
		t.Errorf("greeting = %q, want env override", cfg.UI.Greeting)
	}
	if !cfg.UI.Plain {
		t.Error("plain should be true after env override")
	}
}

func TestApplyEnv_InvalidPlain(t *testing.T) {
	t.Setenv("ROLODEX_PLAIN", "definitely")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err == nil {
		t.Fatal("ApplyEnv() should reject non-boolean ROLODEX_PLAIN")
	}
}
