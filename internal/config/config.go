// Package config handles configuration and credential loading for geminichat.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

const (
	configDirName  = ".geminichat"
	configFileName = "config.json"
	logFileName    = "geminichat.log"
)

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	Style            string `json:"style"`              // "dark", "light", or a glamour style path
	EnableEmoji      bool   `json:"enable_emoji"`       // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines"`  // Preserve original line breaks
	TableWrap        bool   `json:"table_wrap"`         // Enable word wrap in table cells
	InlineTableLinks bool   `json:"inline_table_links"` // Render links inline in tables
}

// Config represents the user configuration
type Config struct {
	DefaultModel string `json:"default_model"`
	// SystemPrompt replaces the built-in grounding instruction when set
	SystemPrompt string   `json:"system_prompt,omitempty"`
	Temperature  *float32 `json:"temperature,omitempty"`
	// MaxFileSizeMB caps uploads; 0 disables the cap
	MaxFileSizeMB   int            `json:"max_file_size_mb"`
	CopyToClipboard bool           `json:"copy_to_clipboard"`
	TUITheme        string         `json:"tui_theme,omitempty"`
	LogLevel        string         `json:"log_level,omitempty"`  // debug, info, warn, error, off
	LogFormat       string         `json:"log_format,omitempty"` // console or json
	LogFile         string         `json:"log_file,omitempty"`
	Markdown        MarkdownConfig `json:"markdown,omitempty"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
		InlineTableLinks: false,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		DefaultModel:    models.DefaultModel.Name,
		MaxFileSizeMB:   20,
		CopyToClipboard: false,
		TUITheme:        "tokyonight",
		LogLevel:        "info",
		LogFormat:       "console",
		Markdown:        DefaultMarkdownConfig(),
	}
}

// MaxFileSize returns the upload cap in bytes
func (c Config) MaxFileSize() int64 {
	if c.MaxFileSizeMB <= 0 {
		return 0
	}
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}

// Model resolves the configured default model
func (c Config) Model() models.Model {
	return models.ModelFromName(c.DefaultModel)
}

// LogPath returns the log file path, defaulting to the config directory
func (c Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFileName), nil
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, configDirName), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	// 0o700: the directory may hold a .env with the API key
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if config doesn't exist
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, configFileName)

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// AvailableModels returns the names of the built-in models
func AvailableModels() []string {
	all := models.AllModels()
	names := make([]string, 0, len(all))
	for _, m := range all {
		names = append(names, m.Name)
	}
	return names
}

var setters = map[string]func(*Config, string) error{
	"default_model": func(c *Config, v string) error {
		c.DefaultModel = models.ModelFromName(v).Name
		return nil
	},
	"system_prompt": func(c *Config, v string) error {
		c.SystemPrompt = v
		return nil
	},
	"temperature": func(c *Config, v string) error {
		if v == "" {
			c.Temperature = nil
			return nil
		}
		f, err := strconv.ParseFloat(v, 32)
		if err != nil || f < 0 || f > 2 {
			return fmt.Errorf("temperature must be a number between 0 and 2")
		}
		t := float32(f)
		c.Temperature = &t
		return nil
	},
	"max_file_size_mb": func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("max_file_size_mb must be a non-negative integer")
		}
		c.MaxFileSizeMB = n
		return nil
	},
	"copy_to_clipboard": boolSetter(func(c *Config) *bool { return &c.CopyToClipboard }),
	"tui_theme": func(c *Config, v string) error {
		c.TUITheme = v
		return nil
	},
	"log_level": func(c *Config, v string) error {
		switch strings.ToLower(v) {
		case "debug", "info", "warn", "error", "off":
			c.LogLevel = strings.ToLower(v)
			return nil
		}
		return fmt.Errorf("log_level must be one of debug, info, warn, error, off")
	},
	"log_format": func(c *Config, v string) error {
		switch strings.ToLower(v) {
		case "console", "json":
			c.LogFormat = strings.ToLower(v)
			return nil
		}
		return fmt.Errorf("log_format must be console or json")
	},
	"log_file": func(c *Config, v string) error {
		c.LogFile = v
		return nil
	},
	"markdown.style": func(c *Config, v string) error {
		c.Markdown.Style = v
		return nil
	},
	"markdown.enable_emoji":       boolSetter(func(c *Config) *bool { return &c.Markdown.EnableEmoji }),
	"markdown.preserve_newlines":  boolSetter(func(c *Config) *bool { return &c.Markdown.PreserveNewLines }),
	"markdown.table_wrap":         boolSetter(func(c *Config) *bool { return &c.Markdown.TableWrap }),
	"markdown.inline_table_links": boolSetter(func(c *Config) *bool { return &c.Markdown.InlineTableLinks }),
}

func boolSetter(field func(*Config) *bool) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("expected true or false, got %q", v)
		}
		*field(c) = b
		return nil
	}
}

// Set updates a single setting by its JSON key (markdown options use "markdown.<key>")
func (c *Config) Set(key, value string) error {
	set, ok := setters[strings.ToLower(key)]
	if !ok {
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := set(c, strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// Keys returns the settable config keys, sorted
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
