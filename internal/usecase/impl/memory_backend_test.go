package impl

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	domainerrors "snapgram/internal/domain/errors"
	"snapgram/internal/domain/gateway"
	"snapgram/internal/infra/id"
	"snapgram/internal/infra/memory"
	"snapgram/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryServices struct {
	backend  *memory.Backend
	users    usecase.UserUsecase
	sessions usecase.SessionUsecase
	posts    usecase.PostUsecase
	saves    usecase.SaveUsecase
}

func newMemoryServices(t *testing.T) memoryServices {
	t.Helper()

	backend := memory.New(memory.WithBaseURL("https://backend.test/v1"), memory.WithProject("snap"))
	ids := id.NewUUIDGenerator()
	logger := newDiscardLogger()

	return memoryServices{
		backend: backend,
		users: NewUserService(UserServiceParams{
			Accounts: backend, Documents: backend, IDs: ids, Logger: logger,
		}),
		sessions: NewSessionService(SessionServiceParams{Accounts: backend, Logger: logger}),
		posts: NewPostService(PostServiceParams{
			Documents: backend, Storage: backend, IDs: ids, Logger: logger,
		}),
		saves: NewSaveService(SaveServiceParams{Documents: backend, IDs: ids, Logger: logger}),
	}
}

func (s memoryServices) signUpAnn(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	_, err := s.users.CreateAccount(ctx, newAnnInput())
	require.NoError(t, err)
	_, err = s.sessions.SignIn(ctx, &usecase.SignInInput{Email: "ann@example.com", Password: "pw"})
	require.NoError(t, err)
	me, err := s.users.GetCurrentUser(ctx)
	require.NoError(t, err)

	return me.ID
}

func TestMemoryBackend_SignUpThenCurrentUser(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	created, err := s.users.CreateAccount(ctx, newAnnInput())
	require.NoError(t, err)
	assert.Equal(t, "https://backend.test/v1/avatars/initials?name=Ann&project=snap", created.ImageURL)

	_, err = s.users.GetCurrentUser(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrAuth, "signing up does not sign in")

	_, err = s.sessions.SignIn(ctx, &usecase.SignInInput{Email: "ann@example.com", Password: "pw"})
	require.NoError(t, err)

	me, err := s.users.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, me.ID)
	assert.Equal(t, created.AccountID, me.AccountID)

	_, err = s.users.CreateAccount(ctx, newAnnInput())
	assert.ErrorIs(t, err, domainerrors.ErrRemote)
	assert.True(t, gateway.IsConflict(err))

	require.NoError(t, s.sessions.SignOut(ctx))
	_, err = s.users.GetCurrentUser(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrAuth)
}

func TestMemoryBackend_DuplicateProfiles(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()
	s.signUpAnn(t)

	account, err := s.backend.GetAccount(ctx)
	require.NoError(t, err)
	_, err = s.backend.CreateDocument(ctx, gateway.CollectionUsers, "dup", map[string]any{
		"accountId": account.ID, "name": "Ann", "email": "ann@example.com",
	})
	require.NoError(t, err)

	_, err = s.users.GetCurrentUser(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrIntegrityViolation)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMemoryBackend_ProfileFailureOrphansAccount(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()
	s.backend.FailNext(memory.OpCreateDocument, &gateway.RemoteError{Code: http.StatusServiceUnavailable}, 1)

	_, err := s.users.CreateAccount(ctx, newAnnInput())
	require.ErrorIs(t, err, domainerrors.ErrAccountSetupIncomplete)

	_, err = s.sessions.SignIn(ctx, &usecase.SignInInput{Email: "ann@example.com", Password: "pw"})
	require.NoError(t, err, "the account exists")

	_, err = s.users.GetCurrentUser(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrIntegrityViolation)
}

func TestMemoryBackend_CreatePostLeavesNoOrphanFiles(t *testing.T) {
	testCases := []struct {
		name     string
		op       memory.Operation
		expected *domainerrors.BaseError
	}{
		{name: "preview url fails", op: memory.OpPreviewURL, expected: domainerrors.ErrUpload},
		{name: "document create fails", op: memory.OpCreateDocument, expected: domainerrors.ErrPersist},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newMemoryServices(t)
			ctx := context.Background()
			s.backend.FailNext(tc.op, &gateway.RemoteError{Code: http.StatusInternalServerError}, 1)

			_, err := s.posts.CreatePost(ctx, newCreateInput(newImage("a.jpg")))

			require.ErrorIs(t, err, tc.expected)
			assert.Empty(t, s.backend.FileIDs())
			assert.Zero(t, s.backend.DocumentCount(gateway.CollectionPosts))
		})
	}

	t.Run("success keeps exactly one file", func(t *testing.T) {
		s := newMemoryServices(t)

		post, err := s.posts.CreatePost(context.Background(), newCreateInput(newImage("a.jpg")))

		require.NoError(t, err)
		assert.Equal(t, []string{post.ImageID}, s.backend.FileIDs())
	})
}

func TestMemoryBackend_RecentPostsNewestFirst(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()
	userID := s.signUpAnn(t)

	created := make([]string, 0, 25)
	for i := range 25 {
		input := newCreateInput(newImage(fmt.Sprintf("%d.jpg", i)))
		input.CreatorID = userID
		post, err := s.posts.CreatePost(ctx, input)
		require.NoError(t, err)
		created = append(created, post.ID)
	}

	posts, err := s.posts.ListRecentPosts(ctx, 0)

	require.NoError(t, err)
	require.Len(t, posts, usecase.DefaultRecentPostsLimit)
	for i, post := range posts {
		assert.Equal(t, created[len(created)-1-i], post.ID)
	}

	mine, err := s.posts.ListUserPosts(ctx, userID, 100)
	require.NoError(t, err)
	assert.Len(t, mine, 25)
}

func TestMemoryBackend_DeletePostWithMissingFile(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	post, err := s.posts.CreatePost(ctx, newCreateInput(newImage("a.jpg")))
	require.NoError(t, err)
	require.NoError(t, s.backend.DeleteFile(ctx, post.ImageID))

	err = s.posts.DeletePost(ctx, post.ID, post.ImageID)

	assert.ErrorIs(t, err, domainerrors.ErrRemote)
	_, err = s.posts.GetPostByID(ctx, post.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound, "the post is gone")
}

func TestMemoryBackend_UpdatePostReplacesFile(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	post, err := s.posts.CreatePost(ctx, newCreateInput(newImage("a.jpg")))
	require.NoError(t, err)

	updated, err := s.posts.UpdatePost(ctx, &usecase.UpdatePostInput{
		PostID:   post.ID,
		Caption:  "edited",
		Files:    []usecase.File{newImage("b.jpg")},
		Tags:     "x,y",
		ImageID:  post.ImageID,
		ImageURL: post.ImageURL,
	})

	require.NoError(t, err)
	assert.NotEqual(t, post.ImageID, updated.ImageID)
	assert.Equal(t, []string{updated.ImageID}, s.backend.FileIDs())
	assert.Equal(t, "edited", updated.Caption)
	assert.Equal(t, []string{"x", "y"}, updated.Tags)
	assert.Empty(t, updated.Likes, "likes survive a partial update")
}

func TestMemoryBackend_LikeRoundTrip(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	post, err := s.posts.CreatePost(ctx, newCreateInput(newImage("a.jpg")))
	require.NoError(t, err)

	liked, err := s.posts.ToggleLike(ctx, post.ID, "user-2", post.Likes)
	require.NoError(t, err)
	assert.True(t, liked.LikedBy("user-2"))

	unliked, err := s.posts.ToggleLike(ctx, post.ID, "user-2", liked.Likes)
	require.NoError(t, err)
	assert.False(t, unliked.LikedBy("user-2"))
}

func TestMemoryBackend_ToggleSaveDuplicates(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	first, err := s.saves.ToggleSave(ctx, "user-1", "post-1", "")
	require.NoError(t, err)
	_, err = s.saves.ToggleSave(ctx, "user-1", "post-1", "")
	require.NoError(t, err)

	records, err := s.saves.ListSaves(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	out, err := s.saves.ToggleSave(ctx, "user-1", "post-1", first.Record.ID)
	require.NoError(t, err)
	assert.False(t, out.Saved)

	records, err = s.saves.ListSaves(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
