package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// RepoFileName is the repo-local config file looked up at the git root.
const RepoFileName = ".titlelint.yml"

// Config represents the effective titlelint configuration.
type Config struct {
	Strict               bool     `json:"strict" yaml:"strict"`
	MaxDescriptionLength int      `json:"maxDescriptionLength" yaml:"max_description_length" validate:"gt=0"`
	Format               string   `json:"format" yaml:"format" validate:"oneof=text json markdown"`
	Types                []string `json:"types,omitempty" yaml:"types,omitempty" validate:"dive,alpha"`
}

// fileConfig mirrors Config with a pointer for the bool so an explicit
// "strict: false" in a file is distinguishable from the field being absent.
type fileConfig struct {
	Strict               *bool    `json:"strict" yaml:"strict"`
	MaxDescriptionLength int      `json:"maxDescriptionLength" yaml:"max_description_length"`
	Format               string   `json:"format" yaml:"format"`
	Types                []string `json:"types" yaml:"types"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Strict:               true,
		MaxDescriptionLength: 50,
		Format:               "text",
	}
}

// Validate checks the config for usable values. It runs after the full
// merge chain so bad values are rejected before any title is checked.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			switch errs[0].Field() {
			case "MaxDescriptionLength":
				return fmt.Errorf("max description length must be a positive integer, got %d", c.MaxDescriptionLength)
			case "Format":
				return fmt.Errorf("unknown output format %q (want text, json, or markdown)", c.Format)
			case "Types":
				return fmt.Errorf("extra types must contain letters only: %v", c.Types)
			}
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

var validate = validator.New()

// ConfigDir returns the platform-appropriate config directory for titlelint.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "titlelint"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "titlelint"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "titlelint"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "titlelint"), nil
	default:
		return filepath.Join(home, ".config", "titlelint"), nil
	}
}

// ConfigPath returns the full path to the global config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads the global config file. Returns defaults and nil error if
// the file doesn't exist.
func LoadFile() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	mergeFile(&cfg, fc)
	return cfg, nil
}

// Save writes the config to the global config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging:
// defaults <- global file <- repo file <- env <- overrides.
// repoRoot may be empty when not running inside a repository. The overrides
// map comes from CLI flags (only explicitly set values should be present).
// The result is validated; bad values anywhere in the chain are input
// errors, reported before validation runs.
func Load(repoRoot string, overrides map[string]string) (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}

	if repoRoot != "" {
		fc, found, err := loadRepoFile(repoRoot)
		if err != nil {
			return Config{}, err
		}
		if found {
			mergeFile(&cfg, fc)
		}
	}

	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadRepoFile reads the repo-local YAML config from the given root.
func loadRepoFile(root string) (fileConfig, bool, error) {
	data, err := os.ReadFile(filepath.Join(root, RepoFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, false, nil
		}
		return fileConfig{}, false, fmt.Errorf("reading %s: %w", RepoFileName, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, false, fmt.Errorf("parsing %s: %w", RepoFileName, err)
	}
	return fc, true, nil
}

func mergeFile(dst *Config, src fileConfig) {
	if src.Strict != nil {
		dst.Strict = *src.Strict
	}
	if src.MaxDescriptionLength > 0 {
		dst.MaxDescriptionLength = src.MaxDescriptionLength
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if len(src.Types) > 0 {
		dst.Types = src.Types
	}
}

// Environment variables override files. GitHub Actions passes workflow
// inputs as INPUT_<NAME>, so those spellings are honored too.
func mergeEnv(cfg *Config) error {
	for _, key := range []string{"TITLELINT_STRICT", "INPUT_STRICT"} {
		if v := os.Getenv(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s must be true or false, got %q", key, v)
			}
			cfg.Strict = b
		}
	}
	for _, key := range []string{"TITLELINT_MAX_LENGTH", "INPUT_MAX_LENGTH"} {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s must be a positive integer, got %q", key, v)
			}
			cfg.MaxDescriptionLength = n
		}
	}
	if v := os.Getenv("TITLELINT_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("TITLELINT_TYPES"); v != "" {
		cfg.Types = splitList(v)
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	if overrides == nil {
		return nil
	}
	if v, ok := overrides["strict"]; ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("strict must be true or false, got %q", v)
		}
		cfg.Strict = b
	}
	if v, ok := overrides["maxLength"]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("max length must be a positive integer, got %q", v)
		}
		cfg.MaxDescriptionLength = n
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["types"]; ok && v != "" {
		cfg.Types = splitList(v)
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is
// unknown or the value is unusable.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "strict":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("strict must be true or false: %w", err)
		}
		cfg.Strict = b
	case "maxDescriptionLength":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxDescriptionLength must be an integer: %w", err)
		}
		cfg.MaxDescriptionLength = n
	case "format":
		cfg.Format = value
	case "types":
		cfg.Types = splitList(value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
