package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the assembler configuration.
type Config struct {
	// Layout settings
	Layout struct {
		TextBase string `toml:"text_base"` // hex, e.g. "0x00400000"
		DataBase string `toml:"data_base"` // hex, e.g. "0x10010000"
		Layout   bool   `toml:"layout"`    // insert gap-fill between TEXT and DATA
	} `toml:"layout"`

	// Limits settings
	Limits struct {
		MaxSourceBytes uint `toml:"max_source_bytes"`
		MaxOutputBytes uint `toml:"max_output_bytes"`
		MaxSymbols     int  `toml:"max_symbols"`
	} `toml:"limits"`

	// Output settings
	Output struct {
		DefaultPath string `toml:"default_path"`
		DumpSymbols bool   `toml:"dump_symbols"`
	} `toml:"output"`
}

// Limits is the subset of Config consumed directly by assembler.Context,
// expressed as resolved numeric bounds (spec.md section 5).
type Limits struct {
	MaxSourceBytes uint
	MaxOutputBytes uint
	MaxSymbols     int
}

// DefaultConfig returns a configuration with the reference defaults
// (spec.md section 3 and section 5).
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Layout.TextBase = "0x00400000"
	cfg.Layout.DataBase = "0x10010000"
	cfg.Layout.Layout = false

	cfg.Limits.MaxSourceBytes = 8192
	cfg.Limits.MaxOutputBytes = 4096
	cfg.Limits.MaxSymbols = 256

	cfg.Output.DefaultPath = "output.bin"
	cfg.Output.DumpSymbols = false

	return cfg
}

// ToLimits resolves the Limits settings into the plain struct
// assembler.Context expects.
func (c *Config) ToLimits() Limits {
	return Limits{
		MaxSourceBytes: c.Limits.MaxSourceBytes,
		MaxOutputBytes: c.Limits.MaxOutputBytes,
		MaxSymbols:     c.Limits.MaxSymbols,
	}
}

// TextBaseAddr and DataBaseAddr parse the configured hex base
// addresses, falling back to the reference defaults on a malformed
// value.
func (c *Config) TextBaseAddr() uint32 {
	return parseHexBase(c.Layout.TextBase, 0x00400000)
}

func (c *Config) DataBaseAddr() uint32 {
	return parseHexBase(c.Layout.DataBase, 0x10010000)
}

func parseHexBase(s string, fallback uint32) uint32 {
	var v uint32
	if _, err := fmt.Sscanf(s, "0x%x", &v); err != nil {
		return fallback
	}
	return v
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\mipsasm\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "mipsasm")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/mipsasm/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "mipsasm")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file. A missing file
// is not an error: the reference defaults are returned instead, since
// mipsasm.toml is always optional (SPEC_FULL.md section 2).
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
