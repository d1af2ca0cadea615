package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EarlierSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9000"}},
		&StructuredConfig{Server: Server{HTTPAddress: "ignored:1"}, Storage: Storage{DataDir: "/var/vault"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	// First source holds the address; the second only fills the gap it
	// left; defaults fill the rest.
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "/var/vault", cfg.Storage.DataDir)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Workers.TokenSweepInterval)
}

func TestBuild_DefaultsAloneValidate(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.False(t, cfg.App.AllowCreateUser)
}

func TestValidate_RejectsBrokenConfigs(t *testing.T) {
	tests := []struct {
		name string
		cfg  StructuredConfig
		want error
	}{
		{
			name: "empty data dir",
			cfg: StructuredConfig{
				Server:  Server{HTTPAddress: ":8080", RequestTimeout: time.Second},
				Workers: Workers{TokenSweepInterval: time.Minute},
			},
			want: ErrInvalidStorageConfigs,
		},
		{
			name: "missing address",
			cfg: StructuredConfig{
				Storage: Storage{DataDir: "data"},
				Server:  Server{RequestTimeout: time.Second},
				Workers: Workers{TokenSweepInterval: time.Minute},
			},
			want: ErrInvalidServerConfigs,
		},
		{
			name: "zero sweep interval",
			cfg: StructuredConfig{
				Storage: Storage{DataDir: "data"},
				Server:  Server{HTTPAddress: ":8080", RequestTimeout: time.Second},
			},
			want: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cfg.validate(), tt.want)
		})
	}
}

func TestNetAddress_SetAndString(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:9090"))
	assert.Equal(t, "localhost:9090", a.String())

	var empty NetAddress
	assert.Equal(t, "", empty.String())

	assert.Error(t, (&NetAddress{}).Set("no-port"))
	assert.Error(t, (&NetAddress{}).Set("localhost:notaport"))
	assert.Error(t, (&NetAddress{}).Set("localhost:0"))
	assert.Error(t, (&NetAddress{}).Set("not-an-ip:80"))
}
