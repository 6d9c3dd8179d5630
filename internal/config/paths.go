// Package config manages gridfill configuration and filesystem paths.
//
// Settings come from, in increasing priority: built-in defaults, the YAML
// settings file (default ~/.gridfill/config.yaml), GRIDFILL_* environment
// variables, and finally command-line flags applied by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the filesystem paths used by gridfill.
type Paths struct {
	// Root is the base directory for gridfill data (default: ~/.gridfill)
	Root string

	// Config is the path to the settings file
	Config string
}

// DefaultPaths returns the default paths for gridfill.
// Paths can be overridden with environment variables:
// - GRIDFILL_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("GRIDFILL_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".gridfill")
	}

	return &Paths{
		Root:   root,
		Config: filepath.Join(root, "config.yaml"),
	}, nil
}
