package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is used for the configuration directory name.
	AppName = "fetched"
	// FileName is the optional configuration file inside the config directory.
	FileName = "config.yaml"
	// ThemeFileName is the theme file inside the config directory.
	ThemeFileName = "theme.yaml"
	// LogFileName is the runtime log inside the config directory.
	LogFileName = "runtime.log"

	// DirPermissions is the mode used when creating the config directory.
	DirPermissions = 0755
)

// Config holds application configuration.
type Config struct {
	DataDir   string `yaml:"data_dir"`
	ConfigDir string `yaml:"-"`
	ThemeFile string `yaml:"theme_file"`
	LogFile   string `yaml:"log_file"`
	Editor    string `yaml:"editor"`
	LogLevel  string `yaml:"log_level"`
}

// Default returns the default configuration rooted at configDir. Collections
// live in the current working directory unless data_dir says otherwise.
func Default(configDir string) Config {
	dataDir, err := os.Getwd()
	if err != nil {
		dataDir = "."
	}
	return Config{
		DataDir:   dataDir,
		ConfigDir: configDir,
		ThemeFile: filepath.Join(configDir, ThemeFileName),
		LogFile:   filepath.Join(configDir, LogFileName),
		LogLevel:  "info",
	}
}

// DefaultDir returns $XDG_CONFIG_HOME/fetched, falling back to ~/.config/fetched.
func DefaultDir() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", AppName), nil
}

// Initialize creates the configuration directory if it does not exist.
func Initialize(configDir string) error {
	if err := os.MkdirAll(configDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", configDir, err)
	}
	return nil
}

// Load reads config.yaml from configDir on top of the defaults. A missing
// file is not an error.
func Load(configDir string) (Config, error) {
	cfg := Default(configDir)

	content, err := os.ReadFile(filepath.Join(configDir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.ConfigDir = configDir

	cfg.DataDir, err = expandHome(cfg.DataDir)
	if err != nil {
		return cfg, err
	}
	cfg.ThemeFile = resolve(configDir, cfg.ThemeFile, ThemeFileName)
	cfg.LogFile = resolve(configDir, cfg.LogFile, LogFileName)

	return cfg, nil
}

// ResolveEditor returns the editor command: the configured one, then
// $VISUAL, then $EDITOR, then vi.
func (c Config) ResolveEditor() string {
	if v := strings.TrimSpace(c.Editor); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("VISUAL")); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("EDITOR")); v != "" {
		return v
	}
	return "vi"
}

func resolve(configDir, path, fallback string) string {
	if strings.TrimSpace(path) == "" {
		return filepath.Join(configDir, fallback)
	}
	path, err := expandHome(path)
	if err != nil || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(configDir, path)
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, path[2:]), nil
}
