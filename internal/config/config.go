// Package config handles shadercheck configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Shader  ShaderConfig  `yaml:"shader"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig controls the window that owns the GL context.
type WindowConfig struct {
	Width   int  `yaml:"width"`
	Height  int  `yaml:"height"`
	Visible bool `yaml:"visible"`
	VSync   bool `yaml:"vsync"`
}

// ShaderConfig controls how programs are built.
type ShaderConfig struct {
	// Policy is "immediate" or "deferred".
	Policy          string            `yaml:"policy"`
	AttribLocations map[string]uint32 `yaml:"attrib_locations"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:   640,
			Height:  480,
			Visible: false,
			VSync:   false,
		},
		Shader: ShaderConfig{
			Policy: "immediate",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
