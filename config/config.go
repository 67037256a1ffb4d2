// Package config loads user settings for fountain from a YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/fountain"
	fountainfs "github.com/fwojciec/fountain/fs"
	"gopkg.in/yaml.v3"
)

// Environment variables applied over the file.
const (
	EnvTheme     = "FOUNTAIN_THEME"
	EnvSaveDir   = "FOUNTAIN_SAVE_DIR"
	EnvPageWidth = "FOUNTAIN_PAGE_WIDTH"
	EnvLogLevel  = "FOUNTAIN_LOG_LEVEL"
	EnvLogFormat = "FOUNTAIN_LOG_FORMAT"
	EnvLogFile   = "FOUNTAIN_LOG_FILE"
)

// Filename is the config file name inside the config directory.
const Filename = "config.yaml"

// LoggingConfig mirrors log.Options.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Config holds user settings.
type Config struct {
	Theme    string `yaml:"theme"`     // "dark" | "light"
	SaveDir  string `yaml:"save_dir"`  // empty: current directory
	Filename string `yaml:"filename"`  // name for unnamed documents
	// InsertEscape is a key sequence that leaves insert mode, e.g. "jj".
	// Empty disables the mapping.
	InsertEscape string        `yaml:"insert_escape"`
	PageWidth    int           `yaml:"page_width"`
	Logging      LoggingConfig `yaml:"logging"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Theme:        "dark",
		Filename:     fountain.DefaultFilename,
		InsertEscape: "jj",
		PageWidth:    60,
		Logging:      LoggingConfig{Level: "info", Format: "text"},
	}
}

// DefaultPath returns the per-user config file path.
func DefaultPath() string {
	return filepath.Join(fountainfs.DefaultConfigDir(), Filename)
}

// Load reads the config file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg, data)
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Write encodes cfg as YAML to w.
func Write(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

func mergeInto(dst, src *Config, raw []byte) {
	if v := strings.TrimSpace(src.Theme); v != "" {
		dst.Theme = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.SaveDir); v != "" {
		dst.SaveDir = expandHome(v)
	}
	if v := strings.TrimSpace(src.Filename); v != "" {
		dst.Filename = v
	}
	// An explicit empty insert_escape disables the mapping, so presence
	// matters rather than value.
	if hasKey(raw, "insert_escape") {
		dst.InsertEscape = src.InsertEscape
	}
	if src.PageWidth > 0 {
		dst.PageWidth = src.PageWidth
	}
	if v := strings.TrimSpace(src.Logging.Level); v != "" {
		dst.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.Format); v != "" {
		dst.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.File); v != "" {
		dst.Logging.File = expandHome(v)
	}
}

func hasKey(raw []byte, key string) bool {
	var m map[string]yaml.Node
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return false
	}
	_, ok := m[key]
	return ok
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.Theme = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvSaveDir)); v != "" {
		cfg.SaveDir = expandHome(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvPageWidth)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageWidth = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = expandHome(v)
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
