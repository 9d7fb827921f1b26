package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures studioboard's runtime settings.
type Config struct {
	APIBind        string
	DataFile       string // optional local fixture; takes precedence over APIBind
	CurrencySymbol string
	DefaultTab     string
	StartRoute     string
	PollSeconds    int
	LogFile        string
}

const (
	defaultConfigPath     = "~/.config/studioboard/config.toml"
	defaultLogFile        = "~/.local/state/studioboard/studioboard.log"
	defaultAPIBind        = "127.0.0.1:8787"
	defaultCurrencySymbol = "₹"
	defaultTab            = "sales"
	defaultStartRoute     = "/"
	defaultPollSeconds    = 5
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBind:        defaultAPIBind,
		CurrencySymbol: defaultCurrencySymbol,
		DefaultTab:     defaultTab,
		StartRoute:     defaultStartRoute,
		PollSeconds:    defaultPollSeconds,
		LogFile:        mustExpand(defaultLogFile),
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBind        string `toml:"api_bind"`
		DataFile       string `toml:"data_file"`
		CurrencySymbol string `toml:"currency_symbol"`
		DefaultTab     string `toml:"default_tab"`
		StartRoute     string `toml:"start_route"`
		PollSeconds    int    `toml:"poll_seconds"`
		LogFile        string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBind); v != "" {
		cfg.APIBind = v
	}
	if v := strings.TrimSpace(raw.DataFile); v != "" {
		cfg.DataFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.CurrencySymbol); v != "" {
		cfg.CurrencySymbol = v
	}
	if v := strings.TrimSpace(raw.DefaultTab); v != "" {
		cfg.DefaultTab = v
	}
	if v := strings.TrimSpace(raw.StartRoute); v != "" {
		cfg.StartRoute = v
	}
	if raw.PollSeconds > 0 {
		cfg.PollSeconds = raw.PollSeconds
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}

	return cfg, nil
}

// UsesDataFile reports whether records come from a local file rather than the API.
func (c Config) UsesDataFile() bool {
	return strings.TrimSpace(c.DataFile) != ""
}

// ExpandPath resolves a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
