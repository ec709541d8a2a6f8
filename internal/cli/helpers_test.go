package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/anmicius0/assembly-validator/internal/cli"
	"github.com/anmicius0/assembly-validator/internal/versioninfo/petest"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and no configuration file, and
// returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithConfig(t, filepath.Join(t.TempDir(), "missing.env"), args...)
}

func runWithConfig(t *testing.T, configFile string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(append(args, "--config", configFile))
	err := cmd.Execute()
	return buf.String(), err
}

// deployment creates a directory with one descriptor declaring foo.dll 1.2.3
// and bar.dll 2.0.0; foo.dll is present at 1.2.3 and bar.dll is absent.
func deployment(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.config"), []byte(`<?xml version="1.0"?>
<configuration>
  <assembly name="foo.dll" version="1.2.3" />
  <assembly name="bar.dll" version="2.0.0" />
</configuration>`), 0o644))
	petest.Write(t, filepath.Join(dir, "foo.dll"), petest.WithVersion("1.2.3"))
	return dir
}

// matchingDeployment creates a directory whose only assembly matches.
func matchingDeployment(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.config"),
		[]byte(`<configuration><assembly name="foo.dll" version="1.2.3"/></configuration>`), 0o644))
	petest.Write(t, filepath.Join(dir, "foo.dll"), petest.WithVersion("1.2.3"))
	return dir
}
