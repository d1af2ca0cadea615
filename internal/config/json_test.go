package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"app": {"allow_create_user": true},
		"storage": {"data_dir": "/srv/vault"},
		"server": {"http_address": "0.0.0.0:8443", "request_timeout": "45s"},
		"workers": {"token_sweep_interval": "10m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.True(t, cfg.App.AllowCreateUser)
	assert.Equal(t, "/srv/vault", cfg.Storage.DataDir)
	assert.Equal(t, "0.0.0.0:8443", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Workers.TokenSweepInterval)
	assert.Empty(t, cfg.JSONFilePath, "path must be cleared to prevent re-processing")
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseJSON_BadJSON(t *testing.T) {
	path := writeTempConfig(t, "{not json")
	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))
}

func TestDuration_UnmarshalNumber(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))
}

func TestDuration_UnmarshalBadString(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(Duration(30 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"30m0s"`, string(out))
}
