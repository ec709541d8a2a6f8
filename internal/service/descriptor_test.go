package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDescriptor(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.config", descriptorXML("foo.dll", "1.2.3", "bar.dll", "4.5.6"))

	descriptor, err := ParseDescriptor(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"foo.dll", "bar.dll"}, descriptor.Names())
	version, ok := descriptor.Get("foo.dll")
	assert.True(t, ok)
	assert.Equal(t, "1.2.3", version)
}

func TestParseDescriptor_SkipsIncompleteEntries(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.config", `<configuration>
  <assembly name="foo.dll" version="1.2.3"/>
  <assembly name="noversion.dll"/>
  <assembly version="9.9.9"/>
  <assembly name="" version="1.0"/>
  <assembly name="empty.dll" version=""/>
  <group>
    <assembly name="nested.dll" version="1.0"/>
  </group>
</configuration>`)

	descriptor, err := ParseDescriptor(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo.dll"}, descriptor.Names())
}

func TestParseDescriptor_IgnoresNamespacedEntries(t *testing.T) {
	dir := t.TempDir()

	t.Run("Default Namespace", func(t *testing.T) {
		path := writeFile(t, dir, "default.config", `<configuration xmlns="urn:x">
  <assembly name="ns.dll" version="1.0"/>
</configuration>`)

		descriptor, err := ParseDescriptor(path)
		require.NoError(t, err)
		assert.Equal(t, 0, descriptor.Len())
	})

	t.Run("Prefixed Element", func(t *testing.T) {
		path := writeFile(t, dir, "prefixed.config", `<configuration xmlns:x="urn:x">
  <x:assembly name="ns.dll" version="1.0"/>
  <assembly name="plain.dll" version="2.0"/>
</configuration>`)

		descriptor, err := ParseDescriptor(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"plain.dll"}, descriptor.Names())
	})
}

func TestParseDescriptor_LastEntryInFileWins(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.config", descriptorXML("foo.dll", "1.0", "bar.dll", "2.0", "foo.dll", "3.0"))

	descriptor, err := ParseDescriptor(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"foo.dll", "bar.dll"}, descriptor.Names())
	version, _ := descriptor.Get("foo.dll")
	assert.Equal(t, "3.0", version)
}

func TestParseDescriptor_EmptyRoot(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.config", `<?xml version="1.0"?><!-- nothing yet --><configuration/>`)

	descriptor, err := ParseDescriptor(path)
	require.NoError(t, err)
	assert.Equal(t, 0, descriptor.Len())
}

func TestParseDescriptor_LegacyEncoding(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.config", "<?xml version=\"1.0\" encoding=\"windows-1252\"?>\n"+
		"<configuration><assembly name=\"caf\xe9.dll\" version=\"1.0\"/></configuration>")

	descriptor, err := ParseDescriptor(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"café.dll"}, descriptor.Names())
}

func TestParseDescriptor_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "Empty File", content: ""},
		{name: "Whitespace Only", content: "   \n"},
		{name: "Unclosed Element", content: `<configuration><assembly name="foo.dll" version="1.0">`},
		{name: "Mismatched Tags", content: `<configuration></config>`},
		{name: "Multiple Roots", content: `<configuration/><configuration/>`},
		{name: "Trailing Text", content: `<configuration/>trailing`},
		{name: "Not XML", content: `{"assembly": "foo.dll"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeFile(t, dir, "broken.config", tt.content)

			_, err := ParseDescriptor(path)
			require.Error(t, err)

			var parseErr *DescriptorParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, "broken.config", parseErr.File)
			assert.Contains(t, parseErr.Error(), "Error parsing config file broken.config: ")
		})
	}
}

func TestParseDescriptor_MissingFile(t *testing.T) {
	_, err := ParseDescriptor(filepath.Join(t.TempDir(), "missing.config"))

	var parseErr *DescriptorParseError
	require.True(t, errors.As(err, &parseErr))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDescriptor_Merge(t *testing.T) {
	first := NewDescriptor()
	first.Set("foo.dll", "1.0")
	first.Set("bar.dll", "2.0")

	second := NewDescriptor()
	second.Set("baz.dll", "3.0")
	second.Set("foo.dll", "1.1")

	first.Merge(second)

	assert.Equal(t, []string{"foo.dll", "bar.dll", "baz.dll"}, first.Names())
	version, _ := first.Get("foo.dll")
	assert.Equal(t, "1.1", version)
	assert.Equal(t, 3, first.Len())
}

func TestDescriptor_NamesIsACopy(t *testing.T) {
	descriptor := NewDescriptor()
	descriptor.Set("foo.dll", "1.0")

	names := descriptor.Names()
	names[0] = "changed.dll"

	assert.Equal(t, []string{"foo.dll"}, descriptor.Names())
}
