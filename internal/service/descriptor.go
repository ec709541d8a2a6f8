package service

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/htmlindex"
)

var errMissingRoot = errors.New("root element is missing")

// Descriptor maps assembly file names to expected versions. Names keep the
// position of their first insertion; setting an existing name replaces its value.
type Descriptor struct {
	names    []string
	versions map[string]string
}

// NewDescriptor returns an empty Descriptor.
func NewDescriptor() *Descriptor {
	return &Descriptor{versions: make(map[string]string)}
}

// Set records version for name, overwriting any earlier value.
func (d *Descriptor) Set(name, version string) {
	if _, exists := d.versions[name]; !exists {
		d.names = append(d.names, name)
	}
	d.versions[name] = version
}

// Get returns the expected version for name.
func (d *Descriptor) Get(name string) (string, bool) {
	version, ok := d.versions[name]
	return version, ok
}

// Merge copies every entry of other into d; other wins on conflicts.
func (d *Descriptor) Merge(other *Descriptor) {
	for _, name := range other.names {
		d.Set(name, other.versions[name])
	}
}

// Names returns the assembly names in insertion order.
func (d *Descriptor) Names() []string {
	return append([]string(nil), d.names...)
}

func (d *Descriptor) Len() int {
	return len(d.names)
}

// descriptorDocument matches any root element; only its direct <assembly> children are read.
type descriptorDocument struct {
	XMLName    xml.Name
	Assemblies []assemblyElement `xml:"assembly"`
}

// assemblyElement matches <assembly> in any namespace; decodeDescriptor keeps
// only those without one.
type assemblyElement struct {
	XMLName xml.Name
	Name    string `xml:"name,attr"`
	Version string `xml:"version,attr"`
}

// ParseDescriptor reads one descriptor file. Assembly elements without a
// name or version, or in a namespace, are skipped. Any failure is a *DescriptorParseError.
func ParseDescriptor(path string) (*Descriptor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &DescriptorParseError{File: filepath.Base(path), Err: err}
	}
	defer file.Close()

	descriptor, err := decodeDescriptor(file)
	if err != nil {
		return nil, &DescriptorParseError{File: filepath.Base(path), Err: err}
	}
	return descriptor, nil
}

func decodeDescriptor(r io.Reader) (*Descriptor, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charsetReader

	var doc descriptorDocument
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errMissingRoot
		}
		return nil, err
	}
	if err := expectEndOfDocument(decoder); err != nil {
		return nil, err
	}

	descriptor := NewDescriptor()
	for _, assembly := range doc.Assemblies {
		if assembly.XMLName.Space != "" || assembly.Name == "" || assembly.Version == "" {
			continue
		}
		descriptor.Set(assembly.Name, assembly.Version)
	}
	return descriptor, nil
}

// expectEndOfDocument allows only comments, processing instructions and
// whitespace after the root element.
func expectEndOfDocument(decoder *xml.Decoder) error {
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := token.(type) {
		case xml.StartElement:
			return fmt.Errorf("multiple root elements: unexpected <%s>", t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return errors.New("unexpected text after the root element")
			}
		}
	}
}

// charsetReader lets descriptors declare legacy 8-bit encodings such as windows-1252.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	encoding, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	return encoding.NewDecoder().Reader(input), nil
}
