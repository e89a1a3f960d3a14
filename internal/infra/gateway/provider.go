// Package gateway selects the backend adapter for each subsystem from
// configuration and provides the gateway ports to the application.
package gateway

import (
	"context"
	"log/slog"

	"snapgram/config"
	domaingateway "snapgram/internal/domain/gateway"
	"snapgram/internal/errors"
	"snapgram/internal/infra/appwrite"
	"snapgram/internal/infra/blobstore"
	"snapgram/internal/infra/firestore"
	"snapgram/internal/infra/memory"

	"go.uber.org/fx"
)

// Params holds dependencies for the gateway ports, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Ports are the gateway ports provided to the use cases
type Ports struct {
	fx.Out

	Accounts  domaingateway.AccountGateway
	Documents domaingateway.DocumentGateway
	Storage   domaingateway.StorageGateway
}

// closer is implemented by adapters holding connections
type closer interface {
	Close() error
}

// builder constructs adapters on first use so that providers sharing one
// backend share one instance.
type builder struct {
	ctx    context.Context
	cfg    *config.Config
	logger *slog.Logger

	memory   *memory.Backend
	appwrite *appwrite.Client
	closers  []closer
}

// NewPorts builds the adapters selected by the providers section
func NewPorts(params Params) (Ports, error) {
	b := &builder{ctx: params.Ctx, cfg: params.Config, logger: params.Logger}
	providers := params.Config.Providers

	accounts, err := b.accounts(providers.Account)
	if err != nil {
		return Ports{}, err
	}
	documents, err := b.documents(providers.Documents)
	if err != nil {
		return Ports{}, errors.Join(err, b.closeAll())
	}
	storage, err := b.storage(providers.Storage)
	if err != nil {
		return Ports{}, errors.Join(err, b.closeAll())
	}

	params.Logger.Info("Gateway providers selected",
		slog.String("account", providers.Account),
		slog.String("documents", providers.Documents),
		slog.String("storage", providers.Storage),
	)

	// Register lifecycle hook to close connections on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing gateway connections")

			return b.closeAll()
		},
	})

	return Ports{Accounts: accounts, Documents: documents, Storage: storage}, nil
}

func (b *builder) accounts(provider string) (domaingateway.AccountGateway, error) {
	switch provider {
	case config.ProviderAppwrite:
		return b.appwriteClient()
	case config.ProviderMemory:
		return b.memoryBackend(), nil
	default:
		return nil, errors.Errorf("unknown account provider: %s", provider)
	}
}

func (b *builder) documents(provider string) (domaingateway.DocumentGateway, error) {
	switch provider {
	case config.ProviderAppwrite:
		return b.appwriteClient()
	case config.ProviderMemory:
		return b.memoryBackend(), nil
	case config.ProviderFirestore:
		if b.cfg.Firebase == nil {
			return nil, errors.New("firebase config is required for firestore provider")
		}
		store, err := firestore.Open(b.ctx, firestore.Settings{
			ProjectID:       b.cfg.Firebase.ProjectID,
			CredentialsPath: b.cfg.Firebase.CredentialsPath,
			Collections:     collections(b.cfg),
		}, b.logger)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, store)

		return store, nil
	default:
		return nil, errors.Errorf("unknown documents provider: %s", provider)
	}
}

func (b *builder) storage(provider string) (domaingateway.StorageGateway, error) {
	switch provider {
	case config.ProviderAppwrite:
		return b.appwriteClient()
	case config.ProviderMemory:
		return b.memoryBackend(), nil
	case config.ProviderBlob:
		if b.cfg.Blob == nil {
			return nil, errors.New("blob config is required for blob provider")
		}
		store, err := blobstore.Open(b.ctx, blobstore.Settings{
			URL:           b.cfg.Blob.URL,
			BucketID:      b.cfg.Backend.BucketID,
			PublicBaseURL: b.cfg.Blob.PublicBaseURL,
			Prefix:        b.cfg.Blob.Prefix,
		}, b.logger)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, store)

		return store, nil
	default:
		return nil, errors.Errorf("unknown storage provider: %s", provider)
	}
}

func (b *builder) memoryBackend() *memory.Backend {
	if b.memory == nil {
		opts := []memory.Option{}
		if b.cfg.Backend.Endpoint != "" {
			opts = append(opts, memory.WithBaseURL(b.cfg.Backend.Endpoint))
		}
		if b.cfg.Backend.ProjectID != "" {
			opts = append(opts, memory.WithProject(b.cfg.Backend.ProjectID))
		}
		if b.cfg.Backend.BucketID != "" {
			opts = append(opts, memory.WithBucket(b.cfg.Backend.BucketID))
		}
		b.memory = memory.New(opts...)
	}

	return b.memory
}

func (b *builder) appwriteClient() (*appwrite.Client, error) {
	if b.appwrite != nil {
		return b.appwrite, nil
	}

	store, err := sessionStore(b.cfg.Session)
	if err != nil {
		return nil, err
	}

	client, err := appwrite.NewClient(appwrite.Settings{
		Endpoint:    b.cfg.Backend.Endpoint,
		ProjectID:   b.cfg.Backend.ProjectID,
		DatabaseID:  b.cfg.Backend.DatabaseID,
		BucketID:    b.cfg.Backend.BucketID,
		Collections: collections(b.cfg),
		Timeout:     b.cfg.Backend.Timeout,
		SelfSigned:  b.cfg.Backend.SelfSigned,
	}, store, b.logger)
	if err != nil {
		return nil, err
	}
	b.appwrite = client

	return client, nil
}

func (b *builder) closeAll() error {
	var errs []error
	for _, c := range b.closers {
		if err := c.Close(); err != nil {
			b.logger.Error("Failed to close gateway connection", slog.Any("error", err))
			errs = append(errs, err)
		}
	}
	b.closers = nil

	return errors.Join(errs...)
}

func sessionStore(cfg config.SessionConfig) (appwrite.SessionStore, error) {
	switch cfg.Store {
	case config.SessionStoreFile:
		return appwrite.NewFileSessionStore(cfg.Path)
	case config.SessionStoreMemory, "":
		return appwrite.NewMemorySessionStore(), nil
	default:
		return nil, errors.Errorf("unknown session store: %s", cfg.Store)
	}
}

func collections(cfg *config.Config) map[domaingateway.Collection]string {
	c := cfg.Backend.Collections

	return map[domaingateway.Collection]string{
		domaingateway.CollectionUsers: c.Users,
		domaingateway.CollectionPosts: c.Posts,
		domaingateway.CollectionSaves: c.Saves,
	}
}

// Module provides the gateway ports
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPorts),
)
