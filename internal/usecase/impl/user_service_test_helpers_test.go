package impl

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"snapgram/internal/domain/gateway"

	"github.com/stretchr/testify/require"
)

//nolint:gochecknoglobals
var testCreatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sequenceIDs hands out id-1, id-2, ... in call order.
type sequenceIDs struct {
	n int
}

func (s *sequenceIDs) NewID() string {
	s.n++

	return fmt.Sprintf("id-%d", s.n)
}

func newDocument(t *testing.T, collection gateway.Collection, id string, data any) *gateway.Document {
	t.Helper()

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	return &gateway.Document{
		ID:         id,
		Collection: collection,
		CreatedAt:  testCreatedAt,
		UpdatedAt:  testCreatedAt,
		Data:       raw,
	}
}

func profileDocument(t *testing.T, id, accountID string) *gateway.Document {
	t.Helper()

	return newDocument(t, gateway.CollectionUsers, id, map[string]any{
		"accountId": accountID,
		"name":      "Ann",
		"username":  "ann",
		"email":     "ann@example.com",
		"imageUrl":  "https://backend.test/v1/avatars/initials?name=Ann",
		"bio":       "",
	})
}

func postDocument(t *testing.T, id, creatorID, imageID string, likes ...string) *gateway.Document {
	t.Helper()

	if likes == nil {
		likes = []string{}
	}

	return newDocument(t, gateway.CollectionPosts, id, map[string]any{
		"creator":  creatorID,
		"caption":  "sunset",
		"imageUrl": "https://backend.test/v1/storage/buckets/media/files/" + imageID + "/preview",
		"imageId":  imageID,
		"location": "Lisbon",
		"tags":     []string{"sea", "sky"},
		"likes":    likes,
	})
}

func saveDocument(t *testing.T, id, userID, postID string) *gateway.Document {
	t.Helper()

	return newDocument(t, gateway.CollectionSaves, id, map[string]any{
		"user": userID,
		"post": postID,
	})
}

func remoteError(code int) *gateway.RemoteError {
	return &gateway.RemoteError{Code: code, Type: "test_" + http.StatusText(code), Message: http.StatusText(code)}
}
