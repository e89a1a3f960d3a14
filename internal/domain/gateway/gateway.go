// Package gateway defines the boundary to the remote backend: the account
// service, the document collections and the file-storage bucket.
//
// Implementations are pure I/O adapters. They never retry and never cache, and
// every backend failure is returned as a *RemoteError without reinterpretation.
package gateway

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"snapgram/internal/domain/entity"
)

// Collection is the logical name of a document collection. Adapters map it to
// the backend's collection identifier.
type Collection string

const (
	CollectionUsers Collection = "users"
	CollectionPosts Collection = "posts"
	CollectionSaves Collection = "saves"
)

// CurrentSession addresses the session the gateway is currently authenticated with.
const CurrentSession = "current"

// Document is a raw document as stored by the backend. Data holds the
// attributes without backend metadata.
type Document struct {
	ID         string
	Collection Collection
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Data       json.RawMessage
}

// DocumentList is one page of a collection listing.
type DocumentList struct {
	Total     int
	Documents []*Document
}

// FileUpload is the payload of a file upload.
type FileUpload struct {
	Name     string
	MimeType string
	Size     int64
	Body     io.Reader
}

// PreviewOptions shape the preview URL derived for a stored image.
type PreviewOptions struct {
	Width   int
	Height  int
	Gravity string
	Quality int
}

// DefaultPreview matches the preview used for post images.
var DefaultPreview = PreviewOptions{Width: 2000, Height: 2000, Gravity: "top", Quality: 100}

// AccountGateway talks to the account and session service.
type AccountGateway interface {
	// CreateAccount registers a new account under the given id.
	CreateAccount(ctx context.Context, id, email, password, name string) (*entity.Account, error)

	// CreateSession signs in with email and password.
	CreateSession(ctx context.Context, email, password string) (*entity.Session, error)

	// DeleteSession signs out. CurrentSession addresses the active session.
	DeleteSession(ctx context.Context, sessionID string) error

	// GetAccount returns the account of the active session.
	GetAccount(ctx context.Context) (*entity.Account, error)

	// InitialsAvatarURL derives an avatar image URL from a display name. It performs no I/O
	// and returns the same URL for the same name.
	InitialsAvatarURL(name string) (string, error)
}

// DocumentGateway talks to the document database.
type DocumentGateway interface {
	CreateDocument(ctx context.Context, collection Collection, id string, data any) (*Document, error)
	GetDocument(ctx context.Context, collection Collection, id string) (*Document, error)
	ListDocuments(ctx context.Context, collection Collection, query Query) (*DocumentList, error)
	// UpdateDocument applies a partial update; only attributes present in data change.
	UpdateDocument(ctx context.Context, collection Collection, id string, data any) (*Document, error)
	DeleteDocument(ctx context.Context, collection Collection, id string) error
}

// StorageGateway talks to the file-storage bucket.
type StorageGateway interface {
	UploadFile(ctx context.Context, id string, upload FileUpload) (*entity.StoredFile, error)
	// FilePreviewURL derives the preview URL of a stored file without I/O.
	FilePreviewURL(fileID string, opts PreviewOptions) (string, error)
	DeleteFile(ctx context.Context, fileID string) error
}

// Gateway is the full backend surface.
type Gateway interface {
	AccountGateway
	DocumentGateway
	StorageGateway
}
