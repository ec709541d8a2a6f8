// Package petest builds minimal PE images carrying a version resource, for tests.
package petest

import (
	"bytes"
	"debug/pe"
	"encoding/binary"
	"os"
	"sort"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

const (
	fileAlignment    = 0x200
	sectionAlignment = 0x1000
	sectionRVA       = 0x1000
	rtVersion        = 16
	rtManifest       = 24
	langEnglishUS    = 0x0409
)

// Image describes the version resource to embed.
type Image struct {
	// Strings are the StringFileInfo entries, written in key order
	Strings map[string]string
	// FileVersion and ProductVersion fill VS_FIXEDFILEINFO
	FileVersion    [4]uint16
	ProductVersion [4]uint16
	// NoVersionResource builds an image whose resource directory is empty
	NoVersionResource bool
}

// WithVersion is an Image whose FileVersion and ProductVersion strings are both version.
func WithVersion(version string) Image {
	return Image{Strings: map[string]string{
		"CompanyName":    "Example Corp",
		"FileVersion":    version,
		"ProductVersion": version,
	}}
}

// Write builds img and writes it to path.
func Write(tb testing.TB, path string, img Image) {
	tb.Helper()
	if err := os.WriteFile(path, Build(img), 0o644); err != nil {
		tb.Fatalf("write PE image %s: %v", path, err)
	}
}

// Build returns the bytes of a PE32 DLL whose only section is .rsrc.
func Build(img Image) []byte {
	var rsrc []byte
	if img.NoVersionResource {
		rsrc = directory(nil)
	} else {
		rsrc = resourceSection(VersionInfo(img))
	}
	return image(rsrc)
}

// VersionInfo returns the raw VS_VERSIONINFO resource for img.
func VersionInfo(img Image) []byte {
	fixed := new(bytes.Buffer)
	fileMS, fileLS := packVersion(img.FileVersion)
	productMS, productLS := packVersion(img.ProductVersion)
	for _, v := range []uint32{
		0xFEEF04BD, 0x00010000,
		fileMS, fileLS, productMS, productLS,
		0x3F, 0, 0x00040004, 0x2, 0, 0, 0,
	} {
		_ = binary.Write(fixed, binary.LittleEndian, v)
	}

	keys := make([]string, 0, len(img.Strings))
	for key := range img.Strings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([][]byte, 0, len(keys))
	for _, key := range keys {
		value := utf16z(img.Strings[key])
		entries = append(entries, block(key, 1, uint16(len(value)/2), value))
	}

	table := block("040904b0", 1, 0, nil, entries...)
	stringFileInfo := block("StringFileInfo", 1, 0, nil, table)
	translation := block("Translation", 0, 4, []byte{0x09, 0x04, 0xb0, 0x04})
	varFileInfo := block("VarFileInfo", 1, 0, nil, translation)

	return block("VS_VERSION_INFO", 0, uint16(fixed.Len()), fixed.Bytes(), stringFileInfo, varFileInfo)
}

func packVersion(v [4]uint16) (uint32, uint32) {
	return uint32(v[0])<<16 | uint32(v[1]), uint32(v[2])<<16 | uint32(v[3])
}

// block encodes one VS_VERSIONINFO node. wLength excludes trailing padding.
func block(key string, valueType, valueLength uint16, value []byte, children ...[]byte) []byte {
	buf := new(bytes.Buffer)
	buf.Write(make([]byte, 6))
	buf.Write(utf16z(key))
	pad(buf, 4)
	buf.Write(value)
	for _, child := range children {
		pad(buf, 4)
		buf.Write(child)
	}

	out := buf.Bytes()
	binary.LittleEndian.PutUint16(out[0:], uint16(len(out)))
	binary.LittleEndian.PutUint16(out[2:], valueLength)
	binary.LittleEndian.PutUint16(out[4:], valueType)
	return out
}

type dirEntry struct {
	id     uint32
	target uint32
}

// directory encodes an IMAGE_RESOURCE_DIRECTORY with ID entries only.
func directory(entries []dirEntry) []byte {
	buf := new(bytes.Buffer)
	_ = binary.Write(buf, binary.LittleEndian, [3]uint32{})
	_ = binary.Write(buf, binary.LittleEndian, uint16(0))
	_ = binary.Write(buf, binary.LittleEndian, uint16(len(entries)))
	for _, e := range entries {
		_ = binary.Write(buf, binary.LittleEndian, e.id)
		_ = binary.Write(buf, binary.LittleEndian, e.target)
	}
	return buf.Bytes()
}

// resourceSection lays out type → name → language → data entry → data.
// A manifest entry precedes the version entry so lookups have to skip it.
func resourceSection(data []byte) []byte {
	const (
		rootSize  = 16 + 2*8
		levelSize = 16 + 8
	)
	nameDir := uint32(rootSize)
	langDir := nameDir + levelSize
	dataEntry := langDir + levelSize
	dataStart := dataEntry + 16

	buf := new(bytes.Buffer)
	buf.Write(directory([]dirEntry{
		{id: rtVersion, target: 0x80000000 | nameDir},
		{id: rtManifest, target: 0x80000000 | nameDir},
	}))
	buf.Write(directory([]dirEntry{{id: 1, target: 0x80000000 | langDir}}))
	buf.Write(directory([]dirEntry{{id: langEnglishUS, target: dataEntry}}))
	_ = binary.Write(buf, binary.LittleEndian, [4]uint32{sectionRVA + dataStart, uint32(len(data)), 0, 0})
	buf.Write(data)
	return buf.Bytes()
}

func image(rsrc []byte) []byte {
	rawSize := alignUp(len(rsrc), fileAlignment)

	buf := new(bytes.Buffer)
	dos := make([]byte, 64)
	dos[0], dos[1] = 'M', 'Z'
	binary.LittleEndian.PutUint32(dos[0x3c:], uint32(len(dos)))
	buf.Write(dos)
	buf.WriteString("PE\x00\x00")

	_ = binary.Write(buf, binary.LittleEndian, pe.FileHeader{
		Machine:              pe.IMAGE_FILE_MACHINE_I386,
		NumberOfSections:     1,
		SizeOfOptionalHeader: uint16(binary.Size(pe.OptionalHeader32{})),
		Characteristics:      pe.IMAGE_FILE_EXECUTABLE_IMAGE | pe.IMAGE_FILE_32BIT_MACHINE | pe.IMAGE_FILE_DLL,
	})

	optional := pe.OptionalHeader32{
		Magic:                 0x10b,
		ImageBase:             0x10000000,
		SectionAlignment:      sectionAlignment,
		FileAlignment:         fileAlignment,
		MajorSubsystemVersion: 6,
		SizeOfImage:           uint32(sectionRVA + alignUp(len(rsrc), sectionAlignment)),
		SizeOfHeaders:         fileAlignment,
		Subsystem:             pe.IMAGE_SUBSYSTEM_WINDOWS_GUI,
		NumberOfRvaAndSizes:   16,
	}
	optional.DataDirectory[pe.IMAGE_DIRECTORY_ENTRY_RESOURCE] = pe.DataDirectory{
		VirtualAddress: sectionRVA,
		Size:           uint32(len(rsrc)),
	}
	_ = binary.Write(buf, binary.LittleEndian, optional)

	section := pe.SectionHeader32{
		VirtualSize:      uint32(len(rsrc)),
		VirtualAddress:   sectionRVA,
		SizeOfRawData:    uint32(rawSize),
		PointerToRawData: fileAlignment,
		Characteristics:  pe.IMAGE_SCN_CNT_INITIALIZED_DATA | pe.IMAGE_SCN_MEM_READ,
	}
	copy(section.Name[:], ".rsrc")
	_ = binary.Write(buf, binary.LittleEndian, section)

	pad(buf, fileAlignment)
	buf.Write(rsrc)
	pad(buf, fileAlignment)
	return buf.Bytes()
}

func utf16z(s string) []byte {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	if err != nil {
		panic(err)
	}
	return append(encoded, 0, 0)
}

func pad(buf *bytes.Buffer, alignment int) {
	if rem := buf.Len() % alignment; rem != 0 {
		buf.Write(make([]byte, alignment-rem))
	}
}

func alignUp(n, alignment int) int {
	return (n + alignment - 1) / alignment * alignment
}
