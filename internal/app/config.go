package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	DataPath   string `mapstructure:"data_path"`   // word list file, e.g. data/added_words.json
	Debug      string `mapstructure:"debug"`       // shown verbatim by /status
	ListenAddr string `mapstructure:"listen_addr"` // HTTP and websocket transport
	LogDir     string `mapstructure:"log_dir"`     // empty logs to stderr
	ExportDir  string `mapstructure:"export_dir"`  // where the console writes exports
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		DataPath:   filepath.Join("data", "added_words.json"),
		Debug:      "False",
		ListenAddr: ":8080",
		ExportDir:  ".",
	}
}

// NewViper returns a viper instance with defaults and environment bindings.
//
// Every key reads WORDBOT_<KEY>. DEBUG and DATA_PATH are also read without
// the prefix.
func NewViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("data_path", def.DataPath)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("listen_addr", def.ListenAddr)
	v.SetDefault("log_dir", def.LogDir)
	v.SetDefault("export_dir", def.ExportDir)

	v.SetEnvPrefix("WORDBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("debug", "WORDBOT_DEBUG", "DEBUG")
	_ = v.BindEnv("data_path", "WORDBOT_DATA_PATH", "DATA_PATH")
	return v
}

// Load reads configuration into a Config.
//
// With configFile set that file must exist; its format follows the
// extension (yaml, json, toml or .env). Otherwise wordbot.* is looked up
// in the working directory and the user config directory, and a missing
// file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("wordbot")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "wordbot"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataPath) == "" {
		return fmt.Errorf("config: data_path is required")
	}
	if strings.TrimSpace(c.ListenAddr) == "" {
		return fmt.Errorf("config: listen_addr is required")
	}
	if c.ExportDir == "" {
		c.ExportDir = "."
	}
	return nil
}

// DebugEnabled reports whether the debug flag reads as true.
func (c *Config) DebugEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(c.Debug)) {
	case "yes", "on", "y":
		return true
	}
	b, err := strconv.ParseBool(strings.TrimSpace(c.Debug))
	return err == nil && b
}
