package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gridfill/internal/clock"
	"github.com/danieljhkim/gridfill/internal/config"
	"github.com/danieljhkim/gridfill/internal/csvio"
	"github.com/danieljhkim/gridfill/internal/engine"
	"github.com/danieljhkim/gridfill/internal/fsops"
	"github.com/danieljhkim/gridfill/internal/hash"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() *engine.Engine {
	return engine.New(fsops.NewRealFS(), hash.NewSHA256Hasher(), clock.RealClock{}, logger)
}

// parseFlags are the input format flags shared by repair and scan.
type parseFlags struct {
	delimiter    string
	missingToken string
	comment      string
}

func (f *parseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.delimiter, "delimiter", "d", ",", "Field delimiter (single character)")
	cmd.Flags().StringVarP(&f.missingToken, "missing-token", "m", csvio.DefaultMissingToken, "Token marking a missing cell")
	cmd.Flags().StringVar(&f.comment, "comment", "", "Ignore input lines starting with this character")
}

// resolveSettings layers defaults, the settings file, the environment and
// explicitly set flags, in that order, and validates the result.
func resolveSettings(cmd *cobra.Command, pf *parseFlags, precision *int) (config.Settings, error) {
	path := configPath
	if path == "" {
		paths, err := config.DefaultPaths()
		if err != nil {
			return config.Settings{}, fmt.Errorf("failed to get config paths: %w", err)
		}
		path = paths.Config
	}

	settings, err := config.LoadSettings(path)
	if err != nil {
		return settings, err
	}
	if err := settings.ApplyEnv(); err != nil {
		return settings, err
	}

	flags := cmd.Flags()
	if flags.Changed("delimiter") {
		settings.Delimiter = unescapeDelimiter(pf.delimiter)
	}
	if flags.Changed("missing-token") {
		settings.MissingToken = pf.missingToken
	}
	if flags.Changed("comment") {
		settings.Comment = pf.comment
	}
	if precision != nil && flags.Changed("precision") {
		settings.Precision = *precision
	}

	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

// unescapeDelimiter lets "\t" be typed on the command line for a tab.
func unescapeDelimiter(s string) string {
	if s == `\t` {
		return "\t"
	}
	return s
}

// outputJSON writes a value as indented JSON to w.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
