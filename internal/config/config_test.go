package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/glprogram/internal/engine/shader"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 480 {
		t.Errorf("expected height 480, got %d", cfg.Window.Height)
	}
	if cfg.Window.Visible {
		t.Error("expected window to be hidden by default")
	}
	if cfg.Shader.Policy != "immediate" {
		t.Errorf("expected policy 'immediate', got %s", cfg.Shader.Policy)
	}
	if len(cfg.Shader.AttribLocations) != 0 {
		t.Errorf("expected no attribute bindings, got %v", cfg.Shader.AttribLocations)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  visible: true
  vsync: true

shader:
  policy: deferred
  attrib_locations:
    aPosition: 0
    aNormal: 1

logging:
  level: "debug"
  log_file: "shaders.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Window.Width)
	}
	if !cfg.Window.Visible {
		t.Error("expected visible to be true")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true")
	}
	if cfg.Shader.Policy != "deferred" {
		t.Errorf("expected policy deferred, got %s", cfg.Shader.Policy)
	}
	if got := cfg.Shader.AttribLocations["aNormal"]; got != 1 {
		t.Errorf("expected aNormal bound to 1, got %d", got)
	}
	if cfg.Logging.LogFile != "shaders.log" {
		t.Errorf("expected log file 'shaders.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile("glprogram.yaml", []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find glprogram.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "policy flag",
			setup: func() { *flagPolicy = "deferred" },
			verify: func(cfg *Config) {
				if cfg.Shader.Policy != "deferred" {
					t.Errorf("expected policy deferred, got %s", cfg.Shader.Policy)
				}
			},
			teardown: func() { *flagPolicy = "" },
		},
		{
			name:  "visible flag",
			setup: func() { *flagVisible = true },
			verify: func(cfg *Config) {
				if !cfg.Window.Visible {
					t.Error("expected window to be visible")
				}
			},
			teardown: func() { *flagVisible = false },
		},
		{
			name:  "log flag",
			setup: func() { *flagLogFile = "out.log" },
			verify: func(cfg *Config) {
				if cfg.Logging.LogFile != "out.log" {
					t.Errorf("expected log file out.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() { *flagLogFile = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
shader:
  policy: immediate
window:
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagPolicy = "deferred"
	defer func() {
		*flagConfig = ""
		*flagPolicy = ""
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Policy comes from the flag, height from the file
	if cfg.Shader.Policy != "deferred" {
		t.Errorf("expected policy deferred from flag, got %s", cfg.Shader.Policy)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestPolicy(t *testing.T) {
	cfg := Default()
	p, err := cfg.Policy()
	if err != nil {
		t.Fatalf("Policy() error: %v", err)
	}
	if p != shader.Immediate {
		t.Errorf("expected immediate policy, got %v", p)
	}

	cfg.Shader.Policy = "eventually"
	if _, err := cfg.Policy(); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Shader.Policy = "deferred"
	cfg.Shader.AttribLocations = map[string]uint32{"aPosition": 0}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Shader.Policy != "deferred" {
		t.Errorf("expected policy deferred after reload, got %s", loaded.Shader.Policy)
	}
	if loaded.Shader.AttribLocations["aPosition"] != 0 || len(loaded.Shader.AttribLocations) != 1 {
		t.Errorf("unexpected attrib locations after reload: %v", loaded.Shader.AttribLocations)
	}
}
