package appwrite_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	deliverycontext "snapgram/internal/delivery/context"
	"snapgram/internal/domain/gateway"
	"snapgram/internal/infra/appwrite"
	"snapgram/internal/infra/memory"
	"snapgram/internal/testkit/appwritefake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	backend *memory.Backend
	server  *appwritefake.Server
	store   *appwrite.MemorySessionStore
	client  *appwrite.Client
}

func newFixture(t *testing.T, opts appwritefake.Options) fixture {
	t.Helper()

	backend := memory.New(memory.WithBucket("media"))
	server := appwritefake.Start(t, backend, opts)
	store := appwrite.NewMemorySessionStore()
	client, err := appwrite.NewClient(server.Settings(), store, newLogger())
	require.NoError(t, err)

	return fixture{backend: backend, server: server, store: store, client: client}
}

func (f fixture) signIn(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := f.client.CreateAccount(ctx, "acc-1", "ann@example.com", "password1", "Ann")
	require.NoError(t, err)
	_, err = f.client.CreateSession(ctx, "ann@example.com", "password1")
	require.NoError(t, err)
}

func TestNewClient_RequiresEndpointAndProject(t *testing.T) {
	_, err := appwrite.NewClient(appwrite.Settings{ProjectID: "p"}, nil, newLogger())
	assert.Error(t, err)

	_, err = appwrite.NewClient(appwrite.Settings{Endpoint: "http://localhost/v1"}, nil, newLogger())
	assert.Error(t, err)
}

func TestClient_AccountFlow(t *testing.T) {
	f := newFixture(t, appwritefake.Options{ProjectID: "snap"})
	ctx := context.Background()

	account, err := f.client.CreateAccount(ctx, "acc-1", "ann@example.com", "password1", "Ann")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", account.ID)
	assert.Equal(t, "Ann", account.Name)
	assert.False(t, account.CreatedAt.IsZero())

	_, err = f.client.GetAccount(ctx)
	assert.True(t, gateway.IsUnauthorized(err), "no session yet")

	_, err = f.client.CreateSession(ctx, "ann@example.com", "wrong")
	var remoteErr *gateway.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusUnauthorized, remoteErr.Code)
	assert.Equal(t, "user_invalid_credentials", remoteErr.Type)

	session, err := f.client.CreateSession(ctx, "ann@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", session.AccountID)
	assert.NotEmpty(t, session.Secret)
	stored, err := f.store.Load()
	require.NoError(t, err)
	assert.Equal(t, session.Secret, stored)

	current, err := f.client.GetAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", current.ID)
	last := f.server.LastRequest()
	assert.Equal(t, session.Secret, last.Session)
	assert.Equal(t, "snap", last.Project)

	require.NoError(t, f.client.DeleteSession(ctx, gateway.CurrentSession))
	stored, err = f.store.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)

	_, err = f.client.GetAccount(ctx)
	assert.True(t, gateway.IsUnauthorized(err))
}

func TestClient_DuplicateAccount(t *testing.T) {
	f := newFixture(t, appwritefake.Options{})
	ctx := context.Background()

	_, err := f.client.CreateAccount(ctx, "acc-1", "ann@example.com", "password1", "Ann")
	require.NoError(t, err)
	_, err = f.client.CreateAccount(ctx, "acc-2", "ann@example.com", "password1", "Ann")

	assert.True(t, gateway.IsConflict(err))
}

func TestClient_SessionSecretDelivery(t *testing.T) {
	testCases := []struct {
		name     string
		delivery appwritefake.SessionDelivery
	}{
		{name: "cookie", delivery: appwritefake.DeliverCookie},
		{name: "response body", delivery: appwritefake.DeliverBody},
		{name: "fallback header", delivery: appwritefake.DeliverFallbackHeader},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, appwritefake.Options{ProjectID: "snap", Delivery: tc.delivery})
			f.signIn(t)

			stored, err := f.store.Load()
			require.NoError(t, err)
			assert.NotEmpty(t, stored)

			_, err = f.client.GetAccount(context.Background())
			assert.NoError(t, err)
		})
	}
}

func TestClient_ForwardsOperationID(t *testing.T) {
	f := newFixture(t, appwritefake.Options{ProjectID: "snap"})

	ctx := deliverycontext.WithOperation(context.Background(), newLogger(), "whoami")
	_, err := f.client.GetAccount(ctx)
	require.Error(t, err)
	assert.Equal(t, deliverycontext.GetOperationID(ctx), f.server.LastRequest().ID)

	_, err = f.client.GetAccount(context.Background())
	require.Error(t, err)
	assert.NotEmpty(t, f.server.LastRequest().ID, "the fake assigns an id when none is sent")
}

func TestClient_WrongProject(t *testing.T) {
	f := newFixture(t, appwritefake.Options{ProjectID: "snap"})
	settings := f.server.Settings()
	settings.ProjectID = "other"
	client, err := appwrite.NewClient(settings, nil, newLogger())
	require.NoError(t, err)

	_, err = client.GetAccount(context.Background())

	var remoteErr *gateway.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusNotFound, remoteErr.Code)
	assert.Equal(t, "project_not_found", remoteErr.Type)
}

func TestClient_NetworkFailure(t *testing.T) {
	client, err := appwrite.NewClient(appwrite.Settings{
		Endpoint:  "http://127.0.0.1:1/v1",
		ProjectID: "snap",
		Timeout:   time.Second,
	}, nil, newLogger())
	require.NoError(t, err)

	_, err = client.GetAccount(context.Background())

	var remoteErr *gateway.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Zero(t, remoteErr.Code)
	assert.Equal(t, gateway.TypeNetwork, remoteErr.Type)
	assert.Error(t, remoteErr.Err)
}

func TestClient_DerivedURLs(t *testing.T) {
	client, err := appwrite.NewClient(appwrite.Settings{
		Endpoint:  "https://backend.test/v1/",
		ProjectID: "snap",
		BucketID:  "media",
	}, nil, newLogger())
	require.NoError(t, err)

	avatar, err := client.InitialsAvatarURL("Ann Lee")
	require.NoError(t, err)
	again, err := client.InitialsAvatarURL("Ann Lee")
	require.NoError(t, err)
	assert.Equal(t, "https://backend.test/v1/avatars/initials?name=Ann+Lee&project=snap", avatar)
	assert.Equal(t, avatar, again)

	preview, err := client.FilePreviewURL("f1", gateway.DefaultPreview)
	require.NoError(t, err)
	assert.Equal(t, "https://backend.test/v1/storage/buckets/media/files/f1/preview?gravity=top&height=2000&project=snap&quality=100&width=2000", preview)
}

func TestClient_Documents(t *testing.T) {
	f := newFixture(t, appwritefake.Options{
		Collections: map[string]gateway.Collection{"col-posts": gateway.CollectionPosts},
	})
	ctx := context.Background()

	created, err := f.client.CreateDocument(ctx, gateway.CollectionPosts, "p1", map[string]any{
		"caption": "hello",
		"creator": "u1",
		"likes":   []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", created.ID)
	assert.Equal(t, gateway.CollectionPosts, created.Collection)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Contains(t, f.server.LastRequest().Path, "/collections/col-posts/documents")

	var attrs map[string]any
	require.NoError(t, json.Unmarshal(created.Data, &attrs))
	assert.Equal(t, "hello", attrs["caption"])
	for key := range attrs {
		assert.False(t, strings.HasPrefix(key, "$"), "metadata %s leaked into data", key)
	}

	updated, err := f.client.UpdateDocument(ctx, gateway.CollectionPosts, "p1", map[string]any{"likes": []string{"u2"}})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(updated.Data, &attrs))
	assert.Equal(t, "hello", attrs["caption"])
	assert.Equal(t, []any{"u2"}, attrs["likes"])

	got, err := f.client.GetDocument(ctx, gateway.CollectionPosts, "p1")
	require.NoError(t, err)
	assert.Equal(t, updated.UpdatedAt, got.UpdatedAt)

	require.NoError(t, f.client.DeleteDocument(ctx, gateway.CollectionPosts, "p1"))
	_, err = f.client.GetDocument(ctx, gateway.CollectionPosts, "p1")
	assert.True(t, gateway.IsNotFound(err))
	assert.True(t, gateway.IsNotFound(f.client.DeleteDocument(ctx, gateway.CollectionPosts, "p1")))
}

func TestClient_ListDocuments(t *testing.T) {
	f := newFixture(t, appwritefake.Options{})
	ctx := context.Background()

	for _, id := range []string{"p1", "p2", "p3", "p4"} {
		creator := "u1"
		if id == "p2" {
			creator = "u2"
		}
		_, err := f.client.CreateDocument(ctx, gateway.CollectionPosts, id, map[string]any{"creator": creator})
		require.NoError(t, err)
	}

	list, err := f.client.ListDocuments(ctx, gateway.CollectionPosts, gateway.Query{
		Filters: []gateway.Filter{gateway.Equal(gateway.AttrCreator, "u1")},
		Orders:  []gateway.Order{gateway.OrderDesc(gateway.AttrCreatedAt)},
		Limit:   2,
		Offset:  1,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
	require.Len(t, list.Documents, 2)
	assert.Equal(t, "p3", list.Documents[0].ID)
	assert.Equal(t, "p1", list.Documents[1].ID)
	assert.Equal(t, []string{
		`{"method":"equal","attribute":"creator","values":["u1"]}`,
		`{"method":"orderDesc","attribute":"$createdAt"}`,
		`{"method":"limit","values":[2]}`,
		`{"method":"offset","values":[1]}`,
	}, f.server.LastRequest().Query[appwrite.QueryParam])
}

func TestClient_Storage(t *testing.T) {
	f := newFixture(t, appwritefake.Options{})
	ctx := context.Background()

	file, err := f.client.UploadFile(ctx, "f1", gateway.FileUpload{
		Name:     "a.jpg",
		MimeType: "image/jpeg",
		Size:     5,
		Body:     strings.NewReader("image"),
	})
	require.NoError(t, err)
	assert.Equal(t, "f1", file.ID)
	assert.Equal(t, "media", file.BucketID)
	assert.Equal(t, "a.jpg", file.Name)
	assert.Equal(t, "image/jpeg", file.MimeType)
	assert.Equal(t, int64(5), file.SizeBytes)

	content, ok := f.backend.FileContent("f1")
	require.True(t, ok)
	raw, err := io.ReadAll(content)
	require.NoError(t, err)
	assert.Equal(t, "image", string(raw))

	_, err = f.client.UploadFile(ctx, "f1", gateway.FileUpload{Name: "a.jpg", Body: strings.NewReader("x")})
	assert.True(t, gateway.IsConflict(err))

	require.NoError(t, f.client.DeleteFile(ctx, "f1"))
	assert.Empty(t, f.backend.FileIDs())
	assert.True(t, gateway.IsNotFound(f.client.DeleteFile(ctx, "f1")))
}

func TestClient_InjectedFailureSurfacesUnchanged(t *testing.T) {
	f := newFixture(t, appwritefake.Options{})
	f.backend.FailNext(memory.OpGetDocument, &gateway.RemoteError{
		Code:    http.StatusInternalServerError,
		Type:    "general_unknown",
		Message: "boom",
	}, 1)

	_, err := f.client.GetDocument(context.Background(), gateway.CollectionPosts, "p1")

	var remoteErr *gateway.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusInternalServerError, remoteErr.Code)
	assert.Equal(t, "general_unknown", remoteErr.Type)
	assert.Equal(t, "boom", remoteErr.Message)
}

func TestFileSessionStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session")
	store, err := appwrite.NewFileSessionStore(path)
	require.NoError(t, err)

	secret, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, secret)

	require.NoError(t, store.Save("s3cret"))
	reopened, err := appwrite.NewFileSessionStore(path)
	require.NoError(t, err)
	secret, err = reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", secret)

	require.NoError(t, reopened.Clear())
	require.NoError(t, reopened.Clear(), "clearing twice is fine")
	secret, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, secret)

	_, err = appwrite.NewFileSessionStore("")
	assert.Error(t, err)
}
