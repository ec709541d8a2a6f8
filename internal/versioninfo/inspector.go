package versioninfo

import "fmt"

const (
	FieldFileVersion    = "FileVersion"
	FieldProductVersion = "ProductVersion"
)

// Inspector reads one string of a file's version resource.
type Inspector struct {
	field string
}

// NewInspector returns an Inspector reading field; an empty field means FileVersion.
func NewInspector(field string) *Inspector {
	if field == "" {
		field = FieldFileVersion
	}
	return &Inspector{field: field}
}

// Field reports which version string the inspector reads.
func (i *Inspector) Field() string {
	return i.field
}

// ReadVersion returns the configured version string of the file at path.
func (i *Inspector) ReadVersion(path string) (string, error) {
	info, err := Read(path)
	if err != nil {
		return "", err
	}
	version, ok := info.Strings[i.field]
	if !ok || version == "" {
		return "", fmt.Errorf("%w: %s has no %s", ErrNoVersionInfo, path, i.field)
	}
	return version, nil
}
