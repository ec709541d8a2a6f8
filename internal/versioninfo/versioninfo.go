// Package versioninfo reads the version resource (VS_VERSIONINFO) embedded in
// PE images without loading or executing them.
package versioninfo

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/tc-hib/winres"
	"github.com/tc-hib/winres/version"
)

// ErrNoVersionInfo is returned when a file carries no usable version resource.
var ErrNoVersionInfo = errors.New("no version information")

var errMalformedVersionInfo = errors.New("malformed version resource")

// Info is the decoded version resource of one file.
type Info struct {
	// Strings holds the key/value pairs of one StringFileInfo table
	// (FileVersion, ProductVersion, CompanyName, ...)
	Strings map[string]string `json:"strings" yaml:"strings"`
	// FixedFileVersion is VS_FIXEDFILEINFO's file version as major.minor.build.revision
	FixedFileVersion string `json:"fixedFileVersion" yaml:"fixedFileVersion"`
	// FixedProductVersion is VS_FIXEDFILEINFO's product version as major.minor.build.revision
	FixedProductVersion string `json:"fixedProductVersion" yaml:"fixedProductVersion"`
}

// Read opens path as a PE image and decodes its version resource.
// Files that are not PE images, or have no version resource, yield ErrNoVersionInfo.
func Read(path string) (*Info, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	resources, err := winres.LoadFromEXE(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s has no readable resources: %v", ErrNoVersionInfo, path, err)
	}

	var (
		raw     []byte
		rawLang uint16
	)
	resources.WalkType(winres.RT_VERSION, func(_ winres.Identifier, langID uint16, data []byte) bool {
		raw, rawLang = data, langID
		return false
	})
	if raw == nil {
		return nil, fmt.Errorf("%w: %s has no version resource", ErrNoVersionInfo, path)
	}

	info, err := decode(raw, rawLang)
	if err != nil {
		return nil, fmt.Errorf("parse version resource of %s: %w", path, err)
	}
	return info, nil
}

// Parse decodes a raw VS_VERSIONINFO resource.
func Parse(data []byte) (*Info, error) {
	return decode(data, 0)
}

// decode prefers the string table of lang and otherwise takes the table
// with the lowest language ID.
func decode(data []byte, lang uint16) (*Info, error) {
	// wLength of the root block must fit in data.
	if len(data) < 6 || int(binary.LittleEndian.Uint16(data)) > len(data) {
		return nil, fmt.Errorf("%w: truncated root block", errMalformedVersionInfo)
	}

	vi, err := version.FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedVersionInfo, err)
	}

	info := &Info{
		Strings:             make(map[string]string),
		FixedFileVersion:    formatVersion(vi.FileVersion),
		FixedProductVersion: formatVersion(vi.ProductVersion),
	}

	tables := vi.Table()
	table, ok := tables[lang]
	if !ok {
		langs := make([]int, 0, len(tables))
		for id := range tables {
			langs = append(langs, int(id))
		}
		sort.Ints(langs)
		if len(langs) > 0 {
			table = tables[uint16(langs[0])]
		}
	}
	if table != nil {
		for key, value := range *table {
			info.Strings[key] = value
		}
	}
	return info, nil
}

func formatVersion(v [4]uint16) string {
	return fmt.Sprintf("%d.%d.%d.%d", v[0], v[1], v[2], v[3])
}
