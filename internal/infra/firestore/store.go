// Package firestore implements the document gateway over Cloud Firestore,
// reached through the Firebase Admin SDK. Backend metadata ($createdAt,
// $updatedAt) is stored as ordinary fields so listings can order on it.
package firestore

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"snapgram/internal/domain/gateway"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// DefaultListLimit is applied to listings that do not set a limit.
const DefaultListLimit = 25

// Settings locate the Firebase project and the collection names.
type Settings struct {
	ProjectID       string
	CredentialsPath string // Service account file; application default credentials when empty.
	Collections     map[gateway.Collection]string
}

// Store is safe for concurrent use.
type Store struct {
	client      *firestore.Client
	collections map[gateway.Collection]string
	clock       func() time.Time
	logger      *slog.Logger
}

var _ gateway.DocumentGateway = (*Store)(nil)

// Open connects to Firestore through a Firebase app.
func Open(ctx context.Context, settings Settings, logger *slog.Logger) (*Store, error) {
	var opts []option.ClientOption
	if settings.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(settings.CredentialsPath))
	}

	var conf *firebase.Config
	if settings.ProjectID != "" {
		conf = &firebase.Config{ProjectID: settings.ProjectID}
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}
	logger.Info("Connected to Firestore", slog.String("project_id", settings.ProjectID))

	return New(client, settings.Collections, logger), nil
}

// New wraps an existing client. The Store takes ownership of it.
func New(client *firestore.Client, collections map[gateway.Collection]string, logger *slog.Logger) *Store {
	return &Store{
		client:      client,
		collections: collections,
		clock:       time.Now,
		logger:      logger,
	}
}

// Close closes the client.
func (s *Store) Close() error {
	return errors.WithStack(s.client.Close())
}

func (s *Store) collection(c gateway.Collection) *firestore.CollectionRef {
	name := string(c)
	if mapped, ok := s.collections[c]; ok && mapped != "" {
		name = mapped
	}

	return s.client.Collection(name)
}

func (s *Store) now() time.Time {
	return s.clock().UTC()
}

// CreateDocument creates a document under id; an existing id is a conflict.
func (s *Store) CreateDocument(ctx context.Context, collection gateway.Collection, id string, data any) (*gateway.Document, error) {
	attrs, err := toAttributes(data)
	if err != nil {
		return nil, err
	}
	now := s.now()
	attrs[gateway.AttrCreatedAt] = now
	attrs[gateway.AttrUpdatedAt] = now

	if _, err := s.collection(collection).Doc(id).Create(ctx, attrs); err != nil {
		return nil, remoteError(err)
	}

	return toDocument(collection, id, attrs)
}

// GetDocument fetches a document.
func (s *Store) GetDocument(ctx context.Context, collection gateway.Collection, id string) (*gateway.Document, error) {
	snap, err := s.collection(collection).Doc(id).Get(ctx)
	if err != nil {
		return nil, remoteError(err)
	}

	return toDocument(collection, snap.Ref.ID, snap.Data())
}

// ListDocuments lists one page. Total counts every match, ignoring the page bounds.
func (s *Store) ListDocuments(ctx context.Context, collection gateway.Collection, query gateway.Query) (*gateway.DocumentList, error) {
	coll := s.collection(collection)

	filtered, err := applyFilters(coll, coll.Query, query.Filters)
	if err != nil {
		return nil, err
	}

	total, err := count(ctx, filtered)
	if err != nil {
		return nil, err
	}

	page := applyOrders(filtered, query.Orders)
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	page = page.Limit(limit)
	if query.Offset > 0 {
		page = page.Offset(query.Offset)
	}

	iter := page.Documents(ctx)
	defer iter.Stop()

	list := &gateway.DocumentList{Total: total, Documents: make([]*gateway.Document, 0, limit)}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, remoteError(err)
		}

		doc, err := toDocument(collection, snap.Ref.ID, snap.Data())
		if err != nil {
			return nil, err
		}
		list.Documents = append(list.Documents, doc)
	}

	return list, nil
}

// UpdateDocument applies a partial update; a missing document is not created.
func (s *Store) UpdateDocument(ctx context.Context, collection gateway.Collection, id string, data any) (*gateway.Document, error) {
	attrs, err := toAttributes(data)
	if err != nil {
		return nil, err
	}
	attrs[gateway.AttrUpdatedAt] = s.now()

	ref := s.collection(collection).Doc(id)
	if _, err := ref.Update(ctx, toUpdates(attrs)); err != nil {
		return nil, remoteError(err)
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return nil, remoteError(err)
	}

	return toDocument(collection, id, snap.Data())
}

// DeleteDocument deletes a document; a missing document is not found.
func (s *Store) DeleteDocument(ctx context.Context, collection gateway.Collection, id string) error {
	if _, err := s.collection(collection).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return remoteError(err)
	}

	return nil
}

// toAttributes normalises a payload through JSON and rejects metadata keys.
func toAttributes(data any) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, invalidStructure(err.Error())
	}

	attrs := make(map[string]any)
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return nil, invalidStructure("document data must be an object")
	}
	for key := range attrs {
		if strings.HasPrefix(key, "$") {
			return nil, invalidStructure("attribute " + key + " is reserved")
		}
	}

	return attrs, nil
}

func invalidStructure(message string) *gateway.RemoteError {
	return &gateway.RemoteError{Code: http.StatusBadRequest, Type: "document_invalid_structure", Message: message}
}

// toUpdates turns attributes into single-segment field updates, so keys are
// never parsed as dotted paths.
func toUpdates(attrs map[string]any) []firestore.Update {
	updates := make([]firestore.Update, 0, len(attrs))
	for key, value := range attrs {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{key}, Value: value})
	}

	return updates
}

// toDocument splits stored fields into metadata and attributes.
func toDocument(collection gateway.Collection, id string, fields map[string]any) (*gateway.Document, error) {
	doc := &gateway.Document{ID: id, Collection: collection}

	attrs := make(map[string]any, len(fields))
	for key, value := range fields {
		switch key {
		case gateway.AttrCreatedAt:
			doc.CreatedAt = timeValue(value)
		case gateway.AttrUpdatedAt:
			doc.UpdatedAt = timeValue(value)
		default:
			if !strings.HasPrefix(key, "$") {
				attrs[key] = value
			}
		}
	}

	data, err := json.Marshal(attrs)
	if err != nil {
		return nil, &gateway.RemoteError{
			Code:    http.StatusInternalServerError,
			Type:    "document_invalid_structure",
			Message: "stored document cannot be encoded",
			Err:     errors.WithStack(err),
		}
	}
	doc.Data = data

	return doc, nil
}

func timeValue(v any) time.Time {
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}
	}

	return t.UTC()
}
