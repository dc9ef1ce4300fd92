package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tsc-editor/internal/core"
)

// Environment variables that override the file configuration.
const (
	EnvDataDir  = "TSCED_DATA_DIR"
	EnvDBPath   = "TSCED_DB_PATH"
	EnvLogLevel = "TSCED_LOG_LEVEL"
)

const fileName = "editor.yaml"

var validate = validator.New()

// Load loads the editor configuration.
// Search order: customPath -> ~/.tsced/configs/editor.yaml -> ./configs/editor.yaml -> embedded default
//
// Files are layered over the embedded defaults, so a file only needs the
// keys it changes. A .env file in the working directory is loaded first;
// TSCED_* variables then override whatever the files set.
func Load(customPath string) (EditorConfig, error) {
	_ = godotenv.Load()

	cfg, err := embedded()
	if err != nil {
		return cfg, err
	}

	switch {
	case customPath != "":
		// An explicit path must exist and parse
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
	default:
		for _, p := range []string{userConfigPath(fileName), filepath.Join("configs", fileName)} {
			if p == "" {
				continue
			}
			if overlay(p, &cfg) {
				break
			}
		}
	}

	applyEnv(&cfg)

	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// embedded parses the embedded default YAML.
func embedded() (EditorConfig, error) {
	var cfg EditorConfig
	if err := yaml.Unmarshal(defaultEditorYAML, &cfg); err != nil {
		return DefaultEditorConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// overlay reads path over cfg. Unreadable or malformed optional files are
// skipped, leaving cfg untouched.
func overlay(path string, cfg *EditorConfig) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	next := *cfg
	next.Keys = copyKeys(cfg.Keys)
	if err := yaml.Unmarshal(data, &next); err != nil {
		return false
	}
	*cfg = next
	return true
}

func copyKeys(src map[string][]string) map[string][]string {
	dst := make(map[string][]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func applyEnv(cfg *EditorConfig) {
	if v, ok := os.LookupEnv(EnvDataDir); ok && v != "" {
		cfg.DataDir = v
	}
	if v, ok := os.LookupEnv(EnvDBPath); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
}

// Validate checks field constraints and key bindings. All problems are
// reported together.
func Validate(cfg EditorConfig) error {
	var errs []error

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("config: %w", err)
		}
		for _, fe := range verrs {
			errs = append(errs, fieldError(fe))
		}
	}

	for name, keys := range cfg.Keys {
		if _, ok := core.ParseCommand(name); !ok {
			errs = append(errs, fmt.Errorf("config: keys: unknown command %q", name))
			continue
		}
		if len(keys) == 0 {
			errs = append(errs, fmt.Errorf("config: keys: %s has no bindings", name))
		}
	}

	return errors.Join(errs...)
}

func fieldError(fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("config: %s is required", field)
	case "gt":
		return fmt.Errorf("config: %s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Errorf("config: %s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Errorf("config: %s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Errorf("config: %s must be one of [%s], got %v", field, fe.Param(), fe.Value())
	default:
		return fmt.Errorf("config: %s is invalid", field)
	}
}

// userConfigPath returns the path to a config file in the user's config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tsced", "configs", filename)
}
