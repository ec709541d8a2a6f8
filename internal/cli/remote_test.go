package cli_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/anmicius0/assembly-validator/internal/config"
	"github.com/anmicius0/assembly-validator/internal/server"
	"github.com/anmicius0/assembly-validator/internal/service"
	"github.com/anmicius0/assembly-validator/internal/versioninfo"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, token string) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{APIToken: token}
	validator := service.NewValidator(versioninfo.NewInspector(""), nil, "")
	srv := httptest.NewServer(server.NewRouter(cfg, validator))
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoteCommand(t *testing.T) {
	srv := newTestServer(t, "secret")
	dir := deployment(t)

	out, err := run(t, "remote", "--server", srv.URL, "--token", "secret", "--path", dir, "-o", "json")
	require.NoError(t, err)

	var results []config.ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, config.StatusMatch, results[0].Status)
	assert.Equal(t, config.StatusError, results[1].Status)
}

func TestRemoteCommand_Text(t *testing.T) {
	srv := newTestServer(t, "")

	out, err := run(t, "remote", "--server", srv.URL, "--path", matchingDeployment(t), "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "foo.dll")
	assert.Contains(t, out, "1 match")
}

func TestRemoteCommand_Rejected(t *testing.T) {
	srv := newTestServer(t, "")

	out, err := run(t, "remote", "--server", srv.URL, "--path", t.TempDir(), "-o", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No config files found.")

	var results []config.ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Nil(t, results[0].AssemblyName)
}

func TestRemoteCommand_WrongToken(t *testing.T) {
	srv := newTestServer(t, "secret")

	_, err := run(t, "remote", "--server", srv.URL, "--token", "guess", "--path", deployment(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestRemoteCommand_RequiresServer(t *testing.T) {
	_, err := run(t, "remote", "--path", t.TempDir())
	assert.Error(t, err)
}
