package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format"`
	Level   string `mapstructure:"level"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`

	// Default values for launches
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// DefaultsConfig holds default values for launch requests
type DefaultsConfig struct {
	// Debuggee executable; empty means discover an installed browser
	Executable string `mapstructure:"executable"`

	// Remote-debugging endpoint
	Port    int    `mapstructure:"port"`
	Address string `mapstructure:"address"`
	Timeout string `mapstructure:"timeout"`

	// Launch behavior
	NoDebug             bool     `mapstructure:"no_debug"`
	DisableNetworkCache bool     `mapstructure:"disable_network_cache"`
	ExtraArgs           []string `mapstructure:"extra_args"`

	// Overlay debounce window in milliseconds
	DebounceMS int `mapstructure:"debounce_ms"`

	// Source-map path rewriting
	WebRoot       string            `mapstructure:"web_root"`
	PathOverrides map[string]string `mapstructure:"path_overrides"`

	// Helper binary for platforms with indirect PID discovery
	Helper string `mapstructure:"helper"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:  "auto",
		Level:   "info",
		Quiet:   false,
		Verbose: false,
		Defaults: DefaultsConfig{
			Address:    "127.0.0.1",
			Timeout:    "10s",
			DebounceMS: 200,
		},
	}
}

// Load loads configuration from files and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and type
	v.SetConfigName("cdplaunch")
	v.SetConfigType("yaml")

	// Add config paths (in order of precedence, lowest first)
	// 1. System-wide config
	v.AddConfigPath("/etc/cdplaunch/")
	// 2. User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "cdplaunch"))
	}
	// 3. Home directory (as .cdplaunch.yaml)
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName(".cdplaunch")
	}
	// 4. Current directory
	v.AddConfigPath(".")

	// Environment variables
	v.SetEnvPrefix("CDPL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	v.BindEnv("format", "CDPL_FORMAT")
	v.BindEnv("level", "CDPL_LEVEL")
	v.BindEnv("quiet", "CDPL_QUIET")
	v.BindEnv("verbose", "CDPL_VERBOSE")
	v.BindEnv("defaults.executable", "CDPL_EXECUTABLE")
	v.BindEnv("defaults.port", "CDPL_PORT")
	v.BindEnv("defaults.address", "CDPL_ADDRESS")
	v.BindEnv("defaults.web_root", "CDPL_WEB_ROOT")

	// Set defaults
	cfg := Default()
	v.SetDefault("format", cfg.Format)
	v.SetDefault("level", cfg.Level)
	v.SetDefault("quiet", cfg.Quiet)
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("defaults.address", cfg.Defaults.Address)
	v.SetDefault("defaults.timeout", cfg.Defaults.Timeout)
	v.SetDefault("defaults.debounce_ms", cfg.Defaults.DebounceMS)

	// Try to read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error occurred
			return nil, err
		}
		// Config file not found; use defaults
	}

	// Unmarshal into struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that was loaded
func ConfigFile() string {
	v := viper.New()

	v.SetConfigName("cdplaunch")
	v.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err == nil {
		return v.ConfigFileUsed()
	}

	// Try the home dotfile
	v.SetConfigName(".cdplaunch")
	if err := v.ReadInConfig(); err == nil {
		return v.ConfigFileUsed()
	}

	return ""
}
