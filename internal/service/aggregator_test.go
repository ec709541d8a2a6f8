package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/anmicius0/assembly-validator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDescriptorFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.config", descriptorXML())
	writeFile(t, dir, "a.config", descriptorXML())
	writeFile(t, dir, "foo.dll", "binary")
	writeFile(t, dir, "notes.config.bak", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.config"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	writeFile(t, filepath.Join(dir, "nested"), "deep.config", descriptorXML())

	files, err := FindDescriptorFiles(dir, "*.config")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.config"),
		filepath.Join(dir, "b.config"),
	}, files)
}

func TestFindDescriptorFiles_Errors(t *testing.T) {
	_, err := FindDescriptorFiles(filepath.Join(t.TempDir(), "missing"), "*.config")
	assert.Error(t, err)

	_, err = FindDescriptorFiles(t.TempDir(), "[")
	assert.NoError(t, err, "an empty directory never evaluates the pattern")

	dir := t.TempDir()
	writeFile(t, dir, "a.config", "")
	_, err = FindDescriptorFiles(dir, "[")
	assert.Error(t, err)
}

func TestAggregate_LastFileWins(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.config", descriptorXML("foo.dll", "1.0", "bar.dll", "2.0"))
	second := writeFile(t, dir, "b.config", descriptorXML("foo.dll", "1.1"))

	descriptor, results := Aggregate([]string{first, second}, nil)

	assert.Empty(t, results)
	assert.Equal(t, []string{"foo.dll", "bar.dll"}, descriptor.Names())
	version, _ := descriptor.Get("foo.dll")
	assert.Equal(t, "1.1", version)
}

func TestAggregate_ParseErrorsDoNotAbort(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "a.config", "<configuration>")
	good := writeFile(t, dir, "b.config", descriptorXML("foo.dll", "1.0"))
	alsoBroken := writeFile(t, dir, "c.config", "")

	descriptor, results := Aggregate([]string{broken, good, alsoBroken}, nil)

	assert.Equal(t, []string{"foo.dll"}, descriptor.Names())
	require.Len(t, results, 2)
	for i, name := range []string{"a.config", "c.config"} {
		assert.Equal(t, config.StatusError, results[i].Status)
		assert.Contains(t, results[i].Message, "Error parsing config file "+name+": ")
		assert.Nil(t, results[i].AssemblyName)
		assert.Nil(t, results[i].ExpectedVersion)
		assert.Nil(t, results[i].ActualVersion)
	}
}
