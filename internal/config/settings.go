package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/gridfill/internal/csvio"
)

// ErrInvalidSettings indicates a settings value that cannot be used.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds the parsing and formatting configuration for a run.
type Settings struct {
	// Delimiter is a single character separating fields (default ",")
	Delimiter string `yaml:"delimiter"`

	// MissingToken marks a missing cell in the input (default "nan")
	MissingToken string `yaml:"missing_token"`

	// Comment is an optional single character starting ignored input lines
	Comment string `yaml:"comment"`

	// Precision is the number of decimal places written; negative disables rounding
	Precision int `yaml:"precision"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Delimiter:    string(csvio.DefaultDelimiter),
		MissingToken: csvio.DefaultMissingToken,
		Precision:    csvio.DefaultPrecision,
	}
}

// LoadSettings reads settings from the YAML file at path. A missing file
// yields the defaults; keys absent from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return s, nil
}

// ApplyEnv overrides settings from GRIDFILL_DELIMITER, GRIDFILL_MISSING_TOKEN
// and GRIDFILL_PRECISION when they are set.
func (s *Settings) ApplyEnv() error {
	if v, ok := os.LookupEnv("GRIDFILL_DELIMITER"); ok {
		s.Delimiter = v
	}
	if v, ok := os.LookupEnv("GRIDFILL_MISSING_TOKEN"); ok {
		s.MissingToken = v
	}
	if v, ok := os.LookupEnv("GRIDFILL_PRECISION"); ok {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GRIDFILL_PRECISION=%q: %w", v, ErrInvalidSettings)
		}
		s.Precision = p
	}
	return nil
}

// Validate checks that the settings can be turned into parser options.
func (s Settings) Validate() error {
	if utf8.RuneCountInString(s.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q: %w", s.Delimiter, ErrInvalidSettings)
	}
	if s.Delimiter == "\n" || s.Delimiter == "\r" || s.Delimiter == "\"" {
		return fmt.Errorf("delimiter %q is not allowed: %w", s.Delimiter, ErrInvalidSettings)
	}
	if s.MissingToken == "" {
		return fmt.Errorf("missing token must not be empty: %w", ErrInvalidSettings)
	}
	if s.Comment != "" {
		if utf8.RuneCountInString(s.Comment) != 1 {
			return fmt.Errorf("comment must be a single character, got %q: %w", s.Comment, ErrInvalidSettings)
		}
		if s.Comment == s.Delimiter {
			return fmt.Errorf("comment and delimiter must differ: %w", ErrInvalidSettings)
		}
	}
	return nil
}

// Options converts validated settings into csvio options.
func (s Settings) Options() csvio.Options {
	opts := csvio.Options{
		MissingToken: s.MissingToken,
		Precision:    s.Precision,
	}
	opts.Delimiter, _ = utf8.DecodeRuneInString(s.Delimiter)
	if s.Comment != "" {
		opts.Comment, _ = utf8.DecodeRuneInString(s.Comment)
	}
	return opts
}
