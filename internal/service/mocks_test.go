package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockVersionReader is a mock implementation of VersionReader
type MockVersionReader struct {
	mock.Mock
}

func (m *MockVersionReader) ReadVersion(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

// writeFile creates dir/name with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func descriptorXML(entries ...string) string {
	body := "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<configuration>\n"
	for i := 0; i+1 < len(entries); i += 2 {
		body += "  <assembly name=\"" + entries[i] + "\" version=\"" + entries[i+1] + "\"/>\n"
	}
	return body + "</configuration>\n"
}
