// Package config loads the user's studybook configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/studybook-cli/studybook/internal/format"
	apperrors "github.com/studybook-cli/studybook/pkg/errors"
)

// Tri-state capability settings: follow platform detection, or force on
// or off.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// Config mirrors the YAML configuration file. Zero values mean "use the
// default".
type Config struct {
	Theme    string `yaml:"theme"`
	Colors   string `yaml:"colors" validate:"omitempty,oneof=auto always never"`
	Unicode  string `yaml:"unicode" validate:"omitempty,oneof=auto always never"`
	Width    int    `yaml:"width" validate:"min=0"`
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme:   format.DefaultThemeName,
		Colors:  ModeAuto,
		Unicode: ModeAuto,
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Load reads and validates the configuration at path. A missing file is
// not an error; defaults are returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, apperrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, apperrors.NewParseError(path, yamlErrorLine(err), err)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return Config{}, apperrors.NewValidationError(strings.ToLower(fe.Field()), "invalid value", nil)
		}
		return Config{}, apperrors.NewValidationError("", err.Error(), err)
	}

	return cfg, nil
}

// yamlErrorLine pulls a line number out of a yaml.v3 TypeError when one
// is available.
func yamlErrorLine(err error) int {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		// Messages look like "line 3: cannot unmarshal ...".
		var line int
		if _, scanErr := fmt.Sscanf(typeErr.Errors[0], "line %d:", &line); scanErr == nil {
			return line
		}
	}
	return 0
}

// FormatterOptions maps the file configuration onto formatter factory
// options.
func (c Config) FormatterOptions() format.Options {
	opts := format.Options{
		Theme: c.Theme,
		Width: c.Width,
	}

	switch c.Colors {
	case ModeAlways:
		opts.Colors = boolPtr(true)
	case ModeNever:
		opts.Colors = boolPtr(false)
	}

	switch c.Unicode {
	case ModeAlways:
		opts.Unicode = boolPtr(true)
	case ModeNever:
		opts.Unicode = boolPtr(false)
	}

	return opts
}

func boolPtr(v bool) *bool {
	return &v
}
