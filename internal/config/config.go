// Package config loads the optional HCL configuration for the hangman client.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/hangman/internal/words"
)

// Config represents the complete client configuration
type Config struct {
	LogLevel string   `hcl:"log_level,optional"`
	LogFile  string   `hcl:"log_file,optional"`
	Banner   string   `hcl:"banner,optional"`
	Words    []string `hcl:"words,optional"`
	Theme    *Theme   `hcl:"theme,block"`
}

// Theme holds the UI colours. Values are anything lipgloss.Color accepts.
type Theme struct {
	Accent string `hcl:"accent,optional"`
	Frame  string `hcl:"frame,optional"`
	Text   string `hcl:"text,optional"`
}

const (
	DefaultLogLevel = "info"
	DefaultLogFile  = "hangman.log"
	DefaultBanner   = "cloud.txt"
)

// DefaultTheme mirrors the original pink-on-purple look.
func DefaultTheme() *Theme {
	return &Theme{
		Accent: "#FF69B4",
		Frame:  "#800080",
		Text:   "#FFFFFF",
	}
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		LogFile:  DefaultLogFile,
		Banner:   DefaultBanner,
		Theme:    DefaultTheme(),
	}
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults for anything left unset.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
	if c.Banner == "" {
		c.Banner = DefaultBanner
	}

	def := DefaultTheme()
	if c.Theme == nil {
		c.Theme = def
		return
	}
	if c.Theme.Accent == "" {
		c.Theme.Accent = def.Accent
	}
	if c.Theme.Frame == "" {
		c.Theme.Frame = def.Frame
	}
	if c.Theme.Text == "" {
		c.Theme.Text = def.Text
	}
}

// Validate checks the configuration for values that cannot be used
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.LogFile == "" {
		return fmt.Errorf("log file must not be empty")
	}
	if c.Words != nil {
		if _, err := words.New(c.Words); err != nil {
			return err
		}
	}
	return nil
}

// Bank returns the configured word bank, or the built-in one when no words are set.
func (c *Config) Bank() (*words.Bank, error) {
	if c.Words == nil {
		return words.Default(), nil
	}
	return words.New(c.Words)
}
