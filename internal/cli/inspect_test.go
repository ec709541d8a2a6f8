package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/anmicius0/assembly-validator/internal/versioninfo/petest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAssembly(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foo.dll")
	petest.Write(t, path, petest.Image{
		Strings: map[string]string{
			"CompanyName": "Example Corp",
			"FileVersion": "1.2.3.4",
		},
		FileVersion:    [4]uint16{1, 2, 3, 4},
		ProductVersion: [4]uint16{1, 2, 0, 0},
	})
	return path
}

func TestInspectCommand_Text(t *testing.T) {
	out, err := run(t, "inspect", writeAssembly(t))
	require.NoError(t, err)
	assert.Contains(t, out, "FileVersion")
	assert.Contains(t, out, "1.2.3.4")
	assert.Contains(t, out, "Example Corp")
	assert.Contains(t, out, "1.2.0.0")
}

func TestInspectCommand_JSON(t *testing.T) {
	out, err := run(t, "inspect", writeAssembly(t), "--output", "json")
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "1.2.3.4", info["fixedFileVersion"])
	assert.Equal(t, "1.2.0.0", info["fixedProductVersion"])
	strings, ok := info["strings"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Example Corp", strings["CompanyName"])
}

func TestInspectCommand_NotAnAssembly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	_, err := run(t, "inspect", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no version information")
}

func TestInspectCommand_RequiresFile(t *testing.T) {
	_, err := run(t, "inspect")
	assert.Error(t, err)
}
