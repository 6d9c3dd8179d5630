package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/gridfill/internal/csvio"
)

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettings_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("delimiter: \";\"\nprecision: 2\n"), 0644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, ";", s.Delimiter)
	assert.Equal(t, 2, s.Precision)
	assert.Equal(t, csvio.DefaultMissingToken, s.MissingToken)
}

func TestLoadSettings_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: [1, 2\n"), 0644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}

func TestSettings_ApplyEnv(t *testing.T) {
	t.Setenv("GRIDFILL_DELIMITER", "|")
	t.Setenv("GRIDFILL_MISSING_TOKEN", "NA")
	t.Setenv("GRIDFILL_PRECISION", "3")

	s := DefaultSettings()
	require.NoError(t, s.ApplyEnv())
	assert.Equal(t, Settings{Delimiter: "|", MissingToken: "NA", Precision: 3}, s)

	t.Setenv("GRIDFILL_PRECISION", "lots")
	err := s.ApplyEnv()
	assert.True(t, errors.Is(err, ErrInvalidSettings))
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Settings) {}},
		{name: "tab delimiter", mutate: func(s *Settings) { s.Delimiter = "\t" }},
		{name: "empty delimiter", mutate: func(s *Settings) { s.Delimiter = "" }, wantErr: true},
		{name: "multi char delimiter", mutate: func(s *Settings) { s.Delimiter = ";;" }, wantErr: true},
		{name: "quote delimiter", mutate: func(s *Settings) { s.Delimiter = "\"" }, wantErr: true},
		{name: "empty token", mutate: func(s *Settings) { s.MissingToken = "" }, wantErr: true},
		{name: "comment", mutate: func(s *Settings) { s.Comment = "#" }},
		{name: "comment equals delimiter", mutate: func(s *Settings) { s.Comment = "," }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidSettings), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettings_Options(t *testing.T) {
	s := Settings{Delimiter: "\t", MissingToken: "NA", Comment: "#", Precision: 4}
	assert.Equal(t, csvio.Options{
		Delimiter:    '\t',
		MissingToken: "NA",
		Comment:      '#',
		Precision:    4,
	}, s.Options())
}
