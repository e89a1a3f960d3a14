package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"snapgram/internal/cache"
	domainerrors "snapgram/internal/domain/errors"
	"snapgram/internal/domain/gateway"
	"snapgram/internal/infra/id"
	"snapgram/internal/infra/memory"
	"snapgram/internal/query"
	"snapgram/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Kind    domainerrors.Kind `json:"kind"`
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details any               `json:"details"`
	} `json:"error"`
	Meta struct {
		OperationID string `json:"operation_id"`
	} `json:"meta"`
}

type harness struct {
	t       *testing.T
	backend *memory.Backend
	params  Params
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	backend := memory.New()
	ids := id.NewUUIDGenerator()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := query.NewClient(query.ClientParams{
		Cache:    cache.New(cache.WithLogger(logger)),
		Users:    impl.NewUserService(impl.UserServiceParams{Accounts: backend, Documents: backend, IDs: ids, Logger: logger}),
		Sessions: impl.NewSessionService(impl.SessionServiceParams{Accounts: backend, Logger: logger}),
		Posts:    impl.NewPostService(impl.PostServiceParams{Documents: backend, Storage: backend, IDs: ids, Logger: logger}),
		Saves:    impl.NewSaveService(impl.SaveServiceParams{Documents: backend, IDs: ids, Logger: logger}),
		Logger:   logger,
	})

	return &harness{t: t, backend: backend, params: Params{Client: client, Logger: logger}}
}

// exec runs one command on a fresh command tree and decodes its envelope.
func (h *harness) exec(args ...string) (envelope, error) {
	h.t.Helper()

	var out bytes.Buffer
	root := NewRootCommand(h.params)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	var env envelope
	require.NoError(h.t, json.Unmarshal(out.Bytes(), &env), out.String())
	assert.NotEmpty(h.t, env.Meta.OperationID)

	return env, err
}

func (h *harness) ok(v any, args ...string) {
	h.t.Helper()

	env, err := h.exec(args...)
	require.NoError(h.t, err)
	require.Nil(h.t, env.Error)
	if v != nil {
		require.NoError(h.t, json.Unmarshal(env.Data, v))
	}
}

func (h *harness) fails(kind domainerrors.Kind, args ...string) envelope {
	h.t.Helper()

	env, err := h.exec(args...)
	require.Error(h.t, err)
	require.NotNil(h.t, env.Error)
	assert.Equal(h.t, kind, env.Error.Kind)

	return env
}

func (h *harness) signedIn() profileView {
	h.t.Helper()

	var me profileView
	h.ok(&me, "signup", "--email", "ann@example.com", "--password", "password1", "--name", "Ann", "--username", "ann")
	h.ok(nil, "signin", "--email", "ann@example.com", "--password", "password1")

	return me
}

func writeImage(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\nimage"), 0o600))

	return path
}

func TestCLI_AccountCommands(t *testing.T) {
	h := newHarness(t)

	var created profileView
	h.ok(&created, "signup", "--email", "ann@example.com", "--password", "password1", "--name", "Ann", "--username", "ann")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ann", created.Username)

	h.fails(domainerrors.KindAuth, "whoami")

	env, err := h.exec("signin", "--email", "ann@example.com", "--password", "password1")
	require.NoError(t, err)
	assert.NotContains(t, string(env.Data), "secret")

	var me profileView
	h.ok(&me, "whoami")
	assert.Equal(t, created.ID, me.ID)

	var byID profileView
	h.ok(&byID, "user", created.ID)
	assert.Equal(t, "Ann", byID.Name)

	h.fails(domainerrors.KindValidation, "signin", "--email", "not-an-email", "--password", "x")

	h.ok(nil, "signout")
	h.fails(domainerrors.KindAuth, "whoami")
}

func TestCLI_PostLifecycle(t *testing.T) {
	h := newHarness(t)
	me := h.signedIn()

	h.fails(domainerrors.KindValidation, "post", "create", "--caption", "no image")

	var post postView
	h.ok(&post, "post", "create", "--image", writeImage(t, "a.png"), "--caption", "first", "--tags", "sun, sea")
	assert.Equal(t, me.ID, post.CreatorID)
	assert.Equal(t, []string{"sun", "sea"}, post.Tags)
	assert.Equal(t, []string{post.ImageID}, h.backend.FileIDs())

	var feed []postView
	h.ok(&feed, "feed")
	require.Len(t, feed, 1)
	assert.Equal(t, post.ID, feed[0].ID)

	var liked postView
	h.ok(&liked, "like", post.ID)
	assert.Equal(t, []string{me.ID}, liked.Likes)
	h.ok(&liked, "like", post.ID)
	assert.Empty(t, liked.Likes)

	var edited postView
	h.ok(&edited, "post", "edit", post.ID, "--caption", "edited")
	assert.Equal(t, "edited", edited.Caption)
	assert.Equal(t, []string{"sun", "sea"}, edited.Tags)
	assert.Equal(t, post.ImageID, edited.ImageID)

	h.ok(&edited, "post", "edit", post.ID, "--image", writeImage(t, "b.png"))
	assert.NotEqual(t, post.ImageID, edited.ImageID)
	assert.Equal(t, []string{edited.ImageID}, h.backend.FileIDs())

	var mine []postView
	h.ok(&mine, "post", "list")
	require.Len(t, mine, 1)
	h.ok(&mine, "post", "list", "--user", "someone-else")
	assert.Empty(t, mine)

	h.ok(nil, "post", "delete", post.ID)
	assert.Empty(t, h.backend.FileIDs())
	assert.Zero(t, h.backend.DocumentCount(gateway.CollectionPosts))
	h.fails(domainerrors.KindNotFound, "post", "get", post.ID)
}

func TestCLI_SaveCommands(t *testing.T) {
	h := newHarness(t)
	h.signedIn()

	var post postView
	h.ok(&post, "post", "create", "--image", writeImage(t, "a.png"))

	var toggled saveView
	h.ok(&toggled, "save", post.ID, "--toggle")
	assert.True(t, toggled.Saved)
	require.NotNil(t, toggled.Record)

	var saved []savedRecordView
	h.ok(&saved, "saved")
	require.Len(t, saved, 1)
	assert.Equal(t, post.ID, saved[0].PostID)

	h.ok(&toggled, "save", post.ID, "--toggle")
	assert.False(t, toggled.Saved)
	h.ok(&saved, "saved")
	assert.Empty(t, saved)

	h.fails(domainerrors.KindNotFound, "unsave", post.ID)

	h.ok(&toggled, "save", post.ID)
	assert.True(t, toggled.Saved)
	h.ok(nil, "unsave", post.ID)
	h.ok(&saved, "saved")
	assert.Empty(t, saved)
}

func TestCLI_JoinedFailureListsEveryCause(t *testing.T) {
	h := newHarness(t)
	h.signedIn()

	h.backend.FailNext(memory.OpCreateDocument, &gateway.RemoteError{Code: 500, Type: "general_unknown", Message: "write failed"}, 1)
	h.backend.FailNext(memory.OpDeleteFile, &gateway.RemoteError{Code: 500, Type: "general_unknown", Message: "delete failed"}, 1)

	env := h.fails(domainerrors.KindPersist, "post", "create", "--image", writeImage(t, "a.png"))

	details, ok := env.Error.Details.([]any)
	require.True(t, ok, "details should list the joined causes")
	require.Len(t, details, 2)
	assert.Contains(t, details[0], "write failed")
	assert.Contains(t, details[1], "delete failed")
	assert.Len(t, h.backend.FileIDs(), 1)
}

func TestOpenImage(t *testing.T) {
	testCases := []struct {
		name     string
		file     string
		content  []byte
		wantMime string
	}{
		{name: "by extension", file: "a.jpg", content: []byte("anything"), wantMime: "image/jpeg"},
		{name: "sniffed", file: "upload", content: []byte("\x89PNG\r\n\x1a\nrest"), wantMime: "image/png"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			require.NoError(t, os.WriteFile(path, tc.content, 0o600))

			file, closeFile, err := openImage(path)
			require.NoError(t, err)
			defer closeFile()

			assert.Equal(t, tc.file, file.Name)
			assert.Equal(t, tc.wantMime, file.MimeType)
			assert.Equal(t, int64(len(tc.content)), file.Size)
			body, err := io.ReadAll(file.Content)
			require.NoError(t, err)
			assert.Equal(t, tc.content, body)
		})
	}

	_, _, err := openImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
