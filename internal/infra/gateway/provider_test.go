package gateway

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"snapgram/config"
	"snapgram/internal/infra/appwrite"
	"snapgram/internal/infra/blobstore"
	"snapgram/internal/infra/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.Config) (Params, *fxtest.Lifecycle) {
	t.Helper()
	lc := fxtest.NewLifecycle(t)

	return Params{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, lc
}

func TestNewPorts_MemorySharesOneBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.Providers = config.ProvidersConfig{Account: config.ProviderMemory, Documents: config.ProviderMemory, Storage: config.ProviderMemory}
	cfg.Backend.ProjectID = "snap"
	params, lc := newParams(t, cfg)

	ports, err := NewPorts(params)

	require.NoError(t, err)
	backend, ok := ports.Accounts.(*memory.Backend)
	require.True(t, ok)
	assert.Same(t, backend, ports.Documents)
	assert.Same(t, backend, ports.Storage)

	url, err := ports.Accounts.InitialsAvatarURL("Ann")
	require.NoError(t, err)
	assert.Contains(t, url, "project=snap")

	lc.RequireStart().RequireStop()
}

func TestNewPorts_AppwriteAndBlob(t *testing.T) {
	cfg := &config.Config{}
	cfg.Providers = config.ProvidersConfig{Account: config.ProviderAppwrite, Documents: config.ProviderAppwrite, Storage: config.ProviderBlob}
	cfg.Backend = config.BackendConfig{Endpoint: "https://backend.test/v1", ProjectID: "snap", DatabaseID: "main", BucketID: "media"}
	cfg.Blob = &config.BlobConfig{URL: "mem://", PublicBaseURL: "https://cdn.test"}
	cfg.Session = config.SessionConfig{Store: config.SessionStoreFile, Path: filepath.Join(t.TempDir(), "session")}
	params, lc := newParams(t, cfg)

	ports, err := NewPorts(params)

	require.NoError(t, err)
	client, ok := ports.Accounts.(*appwrite.Client)
	require.True(t, ok)
	assert.Same(t, client, ports.Documents)
	_, ok = ports.Storage.(*blobstore.Store)
	assert.True(t, ok)

	lc.RequireStart().RequireStop()
}

func TestNewPorts_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "unknown account provider", mutate: func(c *config.Config) { c.Providers.Account = "ldap" }},
		{name: "unknown documents provider", mutate: func(c *config.Config) { c.Providers.Documents = "mongo" }},
		{name: "unknown storage provider", mutate: func(c *config.Config) { c.Providers.Storage = "ftp" }},
		{name: "blob without config", mutate: func(c *config.Config) { c.Providers.Storage = config.ProviderBlob }},
		{name: "firestore without config", mutate: func(c *config.Config) { c.Providers.Documents = config.ProviderFirestore }},
		{name: "appwrite without endpoint", mutate: func(c *config.Config) { c.Providers.Account = config.ProviderAppwrite }},
		{name: "unknown session store", mutate: func(c *config.Config) {
			c.Providers.Account = config.ProviderAppwrite
			c.Backend.Endpoint = "https://backend.test/v1"
			c.Backend.ProjectID = "snap"
			c.Session.Store = "redis"
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Providers = config.ProvidersConfig{Account: config.ProviderMemory, Documents: config.ProviderMemory, Storage: config.ProviderMemory}
			tc.mutate(cfg)
			params, _ := newParams(t, cfg)

			_, err := NewPorts(params)

			assert.Error(t, err)
		})
	}
}
