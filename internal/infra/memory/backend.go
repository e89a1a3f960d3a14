// Package memory is an in-process backend implementing every gateway port.
// It mirrors the remote service's observable behaviour closely enough for tests
// and local development: conflicts, missing records and missing sessions fail
// with the same RemoteError codes the remote service uses.
package memory

import (
	"cmp"
	"net/http"
	"slices"
	"sync"
	"time"

	"snapgram/internal/domain/gateway"
)

// DefaultListLimit is applied to listings that do not set a limit.
const DefaultListLimit = 25

// Operation names a gateway call for failure injection.
type Operation string

const (
	OpCreateAccount  Operation = "CreateAccount"
	OpCreateSession  Operation = "CreateSession"
	OpDeleteSession  Operation = "DeleteSession"
	OpGetAccount     Operation = "GetAccount"
	OpAvatarURL      Operation = "InitialsAvatarURL"
	OpCreateDocument Operation = "CreateDocument"
	OpGetDocument    Operation = "GetDocument"
	OpListDocuments  Operation = "ListDocuments"
	OpUpdateDocument Operation = "UpdateDocument"
	OpDeleteDocument Operation = "DeleteDocument"
	OpUploadFile     Operation = "UploadFile"
	OpPreviewURL     Operation = "FilePreviewURL"
	OpDeleteFile     Operation = "DeleteFile"
)

type injectedFailure struct {
	err       error
	remaining int // <= 0 means until cleared.
}

// Backend is safe for concurrent use.
type Backend struct {
	mu sync.Mutex

	baseURL string
	project string
	bucket  string
	clock   func() time.Time
	last    time.Time
	seq     uint64

	accounts map[string]*accountRecord
	sessions map[string]*sessionRecord
	current  string

	collections map[gateway.Collection]map[string]*documentRecord
	files       map[string]*fileRecord

	failures map[Operation]*injectedFailure
}

var _ gateway.Gateway = (*Backend)(nil)

// New creates an empty backend.
func New(opts ...Option) *Backend {
	b := &Backend{
		baseURL:     "http://localhost/v1",
		project:     "local",
		bucket:      "media",
		clock:       time.Now,
		accounts:    make(map[string]*accountRecord),
		sessions:    make(map[string]*sessionRecord),
		collections: make(map[gateway.Collection]map[string]*documentRecord),
		files:       make(map[string]*fileRecord),
		failures:    make(map[Operation]*injectedFailure),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// FailNext makes the next times calls of op fail with err. times <= 0 fails
// every call until ClearFailures.
func (b *Backend) FailNext(op Operation, err error, times int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures[op] = &injectedFailure{err: err, remaining: times}
}

// ClearFailures removes every injected failure.
func (b *Backend) ClearFailures() {
	b.mu.Lock()
	defer b.mu.Unlock()

	clear(b.failures)
}

// injectedLocked returns the failure injected for op, consuming one use.
func (b *Backend) injectedLocked(op Operation) error {
	f, ok := b.failures[op]
	if !ok {
		return nil
	}
	if f.remaining > 0 {
		f.remaining--
		if f.remaining == 0 {
			delete(b.failures, op)
		}
	}

	return f.err
}

// nowLocked returns a strictly increasing timestamp so creation order is total.
func (b *Backend) nowLocked() time.Time {
	t := b.clock().UTC()
	if !t.After(b.last) {
		t = b.last.Add(time.Microsecond)
	}
	b.last = t

	return t
}

func (b *Backend) nextSeqLocked() uint64 {
	b.seq++

	return b.seq
}

func notFound(kind, message string) *gateway.RemoteError {
	return &gateway.RemoteError{Code: http.StatusNotFound, Type: kind, Message: message}
}

func conflict(kind, message string) *gateway.RemoteError {
	return &gateway.RemoteError{Code: http.StatusConflict, Type: kind, Message: message}
}

func unauthorized(kind, message string) *gateway.RemoteError {
	return &gateway.RemoteError{Code: http.StatusUnauthorized, Type: kind, Message: message}
}

func badRequest(kind, message string) *gateway.RemoteError {
	return &gateway.RemoteError{Code: http.StatusBadRequest, Type: kind, Message: message}
}

// sortedKeys returns map keys in a stable order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, cmp.Compare[string])

	return keys
}
