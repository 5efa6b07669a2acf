// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultInput is the profile read when no input is configured
	DefaultInput = "data.json"
	// DefaultOutput is the LaTeX document written when no output is configured
	DefaultOutput = "resume.tex"
	// DefaultQRCode is the QR code image written when no path is configured
	DefaultQRCode = "qr_code.png"
	// DefaultQRBoxSize is the pixel size of one QR module
	DefaultQRBoxSize = 10
	// DefaultQRBorder is the QR quiet zone in modules
	DefaultQRBorder = 1
	// DefaultQRLevel is the QR error correction level
	DefaultQRLevel = "L"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Paths
	Input  string `json:"input,omitempty"`                                  // Profile file (.json, .yaml, .yml, .toml)
	Output string `json:"output,omitempty" validate:"omitempty,endswith=.tex"` // LaTeX output file
	QRCode string `json:"qr_code,omitempty" validate:"omitempty,endswith=.png"` // QR code image file

	// QR rendering
	QRBoxSize int    `json:"qr_box_size,omitempty" validate:"gte=0,lte=100"`             // Pixels per module
	QRBorder  *int   `json:"qr_border,omitempty" validate:"omitempty,gte=0,lte=40"`      // Quiet zone in modules
	QRLevel   string `json:"qr_level,omitempty" validate:"omitempty,oneof=L M Q H l m q h"` // Error correction level

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print a profile summary and debug logs
}

// Defaults returns the configuration used when nothing else is given
func Defaults() Config {
	border := DefaultQRBorder
	return Config{
		Input:     DefaultInput,
		Output:    DefaultOutput,
		QRCode:    DefaultQRCode,
		QRBoxSize: DefaultQRBoxSize,
		QRBorder:  &border,
		QRLevel:   DefaultQRLevel,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON key names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since defaults are merged
// afterwards.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fe := validationErrors[0]
			if fe.Param() != "" {
				return fmt.Errorf("config error: '%s' failed '%s=%s' (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value())
			}
			return fmt.Errorf("config error: '%s' failed '%s' (got %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Outputs must not overwrite each other or the input
	if c.Output != "" && c.Output == c.Input {
		return fmt.Errorf("config error: 'output' and 'input' refer to the same file")
	}
	if c.QRCode != "" && (c.QRCode == c.Output || c.QRCode == c.Input) {
		return fmt.Errorf("config error: 'qr_code' must differ from 'input' and 'output'")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.QRCode == "" {
		result.QRCode = defaults.QRCode
	}
	if result.QRLevel == "" {
		result.QRLevel = defaults.QRLevel
	}

	// Zero box size is not a usable value, so it means "unset"
	if result.QRBoxSize == 0 {
		result.QRBoxSize = defaults.QRBoxSize
	}
	if result.QRBorder == nil && defaults.QRBorder != nil {
		border := *defaults.QRBorder
		result.QRBorder = &border
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Border returns the QR border, or DefaultQRBorder when unset
func (c *Config) Border() int {
	if c.QRBorder == nil {
		return DefaultQRBorder
	}
	return *c.QRBorder
}
