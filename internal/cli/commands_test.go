package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/gridfill/internal/config"
	"github.com/danieljhkim/gridfill/internal/engine"
)

// setupTestEnv writes a grid file into a temp dir and points the settings
// root there so no user config is picked up.
func setupTestEnv(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("GRIDFILL_ROOT", filepath.Join(dir, ".gridfill"))
	for _, key := range []string{"GRIDFILL_DELIMITER", "GRIDFILL_MISSING_TOKEN", "GRIDFILL_PRECISION"} {
		unsetEnv(t, key)
	}

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRepairCommand_DefaultOutput(t *testing.T) {
	input := setupTestEnv(t, "grid.csv", "1,nan,2\n4,5,nan\n")

	out, _, err := execute(t, "repair", input)
	require.NoError(t, err)

	assert.Contains(t, out, "Repaired 2 cells")
	want := filepath.Join(filepath.Dir(input), "grid_interpolated.csv")
	assert.Contains(t, out, want)
	assert.Equal(t, "1,2.666667,2\n4,5,3.5\n", readFile(t, want))
}

func TestRepairCommand_WarnsOnReplace(t *testing.T) {
	input := setupTestEnv(t, "grid.csv", "1,nan\n")

	out, _, err := execute(t, "repair", input)
	require.NoError(t, err)
	assert.NotContains(t, out, "Replaced existing file")

	out, _, err = execute(t, "repair", input)
	require.NoError(t, err)
	assert.Contains(t, out, "Replaced existing file")
}

func TestRepairCommand_JSON(t *testing.T) {
	input := setupTestEnv(t, "grid.csv", "nan\n")
	output := filepath.Join(filepath.Dir(input), "out.csv")

	out, _, err := execute(t, "repair", input, "--output", output, "--json")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result), "output: %s", out)
	assert.EqualValues(t, 1, result["repaired"])
	assert.EqualValues(t, 1, result["unresolvable"])
	assert.Equal(t, output, result["output_path"])
	assert.Equal(t, "0\n", readFile(t, output))
}

func TestRepairCommand_FormatFlags(t *testing.T) {
	input := setupTestEnv(t, "grid.txt", "# exported\n1;NA\n2;4\n")

	_, _, err := execute(t, "repair", input,
		"--delimiter", ";",
		"--missing-token", "NA",
		"--comment", "#",
		"--precision", "1")
	require.NoError(t, err)

	// (0,1): left 1, down 4 -> 2.5
	assert.Equal(t, "1;2.5\n2;4\n", readFile(t, input+"_interpolated.csv"))
}

func TestRepairCommand_DryRunShow(t *testing.T) {
	input := setupTestEnv(t, "grid.csv", "nan,3,nan\n")

	out, _, err := execute(t, "repair", input, "--dry-run", "--show")
	require.NoError(t, err)

	assert.Contains(t, out, "Would repair 2 cells")
	assert.Contains(t, out, "Repaired Grid")
	_, statErr := os.Stat(filepath.Join(filepath.Dir(input), "grid_interpolated.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRepairCommand_MissingInput(t *testing.T) {
	input := setupTestEnv(t, "grid.csv", "1\n")

	_, _, err := execute(t, "repair", filepath.Join(filepath.Dir(input), "nope.csv"))
	assert.True(t, errors.Is(err, engine.ErrNotFound), "got %v", err)
}

func TestRepairCommand_MalformedInputWritesNothing(t *testing.T) {
	input := setupTestEnv(t, "grid.csv", "1,2\n3\n")

	_, _, err := execute(t, "repair", input)
	assert.True(t, errors.Is(err, engine.ErrMalformedGrid), "got %v", err)
	_, statErr := os.Stat(filepath.Join(filepath.Dir(input), "grid_interpolated.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRepairCommand_InvalidDelimiter(t *testing.T) {
	input := setupTestEnv(t, "grid.csv", "1\n")

	_, _, err := execute(t, "repair", input, "--delimiter", "ab")
	assert.True(t, errors.Is(err, config.ErrInvalidSettings), "got %v", err)
}

func TestRepairCommand_SettingsFile(t *testing.T) {
	input := setupTestEnv(t, "grid.csv", "1|x\n")
	cfg := filepath.Join(filepath.Dir(input), "settings.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("delimiter: \"|\"\nmissing_token: x\n"), 0644))

	_, _, err := execute(t, "repair", input, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "1|1\n", readFile(t, filepath.Join(filepath.Dir(input), "grid_interpolated.csv")))
}

func TestRepairCommand_EnvOverride(t *testing.T) {
	input := setupTestEnv(t, "grid.csv", "?,8\n")
	t.Setenv("GRIDFILL_MISSING_TOKEN", "?")

	_, _, err := execute(t, "repair", input)
	require.NoError(t, err)
	assert.Equal(t, "8,8\n", readFile(t, filepath.Join(filepath.Dir(input), "grid_interpolated.csv")))
}

func TestScanCommand(t *testing.T) {
	input := setupTestEnv(t, "grid.csv", "1,nan,2\n4,5,nan\n")

	out, _, err := execute(t, "scan", input)
	require.NoError(t, err)

	assert.Contains(t, out, "2 missing cells")
	first := strings.Index(out, "(0, 1)")
	second := strings.Index(out, "(1, 2)")
	require.True(t, first >= 0 && second >= 0, "output: %s", out)
	assert.Less(t, first, second)
}

func TestScanCommand_JSON(t *testing.T) {
	input := setupTestEnv(t, "grid.csv", "1,2\n")

	out, _, err := execute(t, "scan", input, "--json")
	require.NoError(t, err)

	var result engine.ScanResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 1, result.Rows)
	assert.Equal(t, 2, result.Cols)
	assert.Empty(t, result.Missing)
}
