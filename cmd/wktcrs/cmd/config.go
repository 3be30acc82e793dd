package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	wktcrs "github.com/reoring/wktcrs"
)

// Config is the optional TOML file read with --config.
type Config struct {
	Format FormatConfig `toml:"format"`
	Parse  ParseConfig  `toml:"parse"`
	Log    LogConfig    `toml:"log"`
}

// FormatConfig controls the layout of written WKT.
type FormatConfig struct {
	Newline string `toml:"newline"`
	Indent  string `toml:"indent"`
	Compact bool   `toml:"compact"`
}

// ParseConfig bounds the input accepted by the parser.
type ParseConfig struct {
	MaxDepth int   `toml:"max_depth"`
	MaxBytes int64 `toml:"max_bytes"`
}

// LogConfig sets the diagnostic log level (debug, info, warn, error).
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Format: FormatConfig{Newline: wktcrs.DefaultNewline, Indent: wktcrs.DefaultIndent},
		Parse:  ParseConfig{MaxDepth: 64, MaxBytes: 1 << 20},
		Log:    LogConfig{Level: "warn"},
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// ParseOpt projects the parse section onto library options.
func (c *Config) ParseOpt() wktcrs.ParseOpt {
	return wktcrs.ParseOpt{MaxDepth: c.Parse.MaxDepth, MaxBytes: c.Parse.MaxBytes}
}

// Layout returns the newline and indent tokens for the writer.
func (c *Config) Layout() (newline, indent string) {
	if c.Format.Compact {
		return "", ""
	}
	return c.Format.Newline, c.Format.Indent
}
