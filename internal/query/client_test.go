package query

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"snapgram/internal/cache"
	"snapgram/internal/domain/entity"
	domainerrors "snapgram/internal/domain/errors"
	"snapgram/internal/domain/gateway"
	mockUsecase "snapgram/internal/mocks/usecase"
	"snapgram/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	timeout = time.Second
	tick    = time.Millisecond
)

type clientFixtures struct {
	client   *Client
	cache    *cache.Cache
	users    *mockUsecase.MockUserUsecase
	sessions *mockUsecase.MockSessionUsecase
	posts    *mockUsecase.MockPostUsecase
	saves    *mockUsecase.MockSaveUsecase
}

func createTestClient(t *testing.T) clientFixtures {
	t.Helper()

	f := clientFixtures{
		cache:    cache.New(),
		users:    mockUsecase.NewMockUserUsecase(t),
		sessions: mockUsecase.NewMockSessionUsecase(t),
		posts:    mockUsecase.NewMockPostUsecase(t),
		saves:    mockUsecase.NewMockSaveUsecase(t),
	}
	f.client = NewClient(ClientParams{
		Cache:    f.cache,
		Users:    f.users,
		Sessions: f.sessions,
		Posts:    f.posts,
		Saves:    f.saves,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

//nolint:gochecknoglobals
var allKeys = []string{
	KeyCurrentUser,
	KeyUser("u1"),
	KeyPost("p1"),
	KeyPost("p2"),
	KeyRecentPosts,
	KeyUserPosts("u1"),
	KeyUserPosts("u2"),
	KeyUserSaves("u1"),
	KeyUserSaves("u2"),
}

func (f clientFixtures) seedAll() {
	for _, key := range allKeys {
		f.cache.SetData(key, key)
	}
}

// staleKeys lists the keys of allKeys that are no longer fresh.
func (f clientFixtures) staleKeys() []string {
	var out []string
	for _, key := range allKeys {
		if f.cache.Status(key) != cache.StatusFresh {
			out = append(out, key)
		}
	}

	return out
}

func TestClient_ReadsAreCached(t *testing.T) {
	f := createTestClient(t)
	ctx := context.Background()
	posts := []*entity.Post{{ID: "p1"}}

	f.posts.EXPECT().ListRecentPosts(mock.Anything, usecase.DefaultRecentPostsLimit).Return(posts, nil).Once()

	first, err := f.client.GetRecentPosts(ctx)
	require.NoError(t, err)
	second, err := f.client.GetRecentPosts(ctx)
	require.NoError(t, err)

	assert.Equal(t, posts, first)
	assert.Equal(t, posts, second)
	assert.Equal(t, cache.StatusFresh, f.client.Status(KeyRecentPosts))
}

func TestClient_ConcurrentReadsShareOneLoad(t *testing.T) {
	f := createTestClient(t)
	release := make(chan struct{})

	f.posts.EXPECT().GetPostByID(mock.Anything, "p1").
		RunAndReturn(func(context.Context, string) (*entity.Post, error) {
			<-release

			return &entity.Post{ID: "p1"}, nil
		}).
		Once()

	var wg sync.WaitGroup
	results := make([]*entity.Post, 5)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			post, err := f.client.GetPostByID(context.Background(), "p1")
			assert.NoError(t, err)
			results[i] = post
		}()
	}

	require.Eventually(t, func() bool { return f.client.Status(KeyPost("p1")) == cache.StatusPending }, timeout, tick)
	close(release)
	wg.Wait()

	for _, post := range results {
		require.NotNil(t, post)
		assert.Equal(t, "p1", post.ID)
	}
}

func TestClient_FailuresAreNotCached(t *testing.T) {
	f := createTestClient(t)
	ctx := context.Background()
	notFound := domainerrors.ErrNotFound.WithCause(&gateway.RemoteError{Code: http.StatusNotFound})

	f.users.EXPECT().GetUserByID(mock.Anything, "u1").Return(nil, notFound).Once()
	f.users.EXPECT().GetUserByID(mock.Anything, "u1").Return(&entity.UserProfile{ID: "u1"}, nil).Once()

	_, err := f.client.GetUserByID(ctx, "u1")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Equal(t, cache.StatusAbsent, f.client.Status(KeyUser("u1")))

	profile, err := f.client.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.ID)
}

func TestClient_ProfileIDsDoNotShareCurrentUserEntry(t *testing.T) {
	f := createTestClient(t)
	ctx := context.Background()

	f.users.EXPECT().GetCurrentUser(mock.Anything).Return(&entity.UserProfile{ID: "u1"}, nil).Once()
	f.users.EXPECT().GetUserByID(mock.Anything, "current").Return(&entity.UserProfile{ID: "current"}, nil).Once()

	me, err := f.client.GetCurrentUser(ctx)
	require.NoError(t, err)
	other, err := f.client.GetUserByID(ctx, "current")
	require.NoError(t, err)

	assert.Equal(t, "u1", me.ID)
	assert.Equal(t, "current", other.ID)
}

func TestClient_ReadYourWrites(t *testing.T) {
	f := createTestClient(t)
	ctx := context.Background()
	p1 := &entity.Post{ID: "p1", CreatorID: "u1"}
	p2 := &entity.Post{ID: "p2", CreatorID: "u1"}
	input := &usecase.CreatePostInput{CreatorID: "u1"}

	f.posts.EXPECT().ListRecentPosts(mock.Anything, usecase.DefaultRecentPostsLimit).Return([]*entity.Post{p1}, nil).Once()
	f.posts.EXPECT().CreatePost(ctx, input).Return(p2, nil)
	f.posts.EXPECT().ListRecentPosts(mock.Anything, usecase.DefaultRecentPostsLimit).Return([]*entity.Post{p2, p1}, nil).Once()

	before, err := f.client.GetRecentPosts(ctx)
	require.NoError(t, err)
	require.Len(t, before, 1)

	_, err = f.client.CreatePost(ctx, input)
	require.NoError(t, err)

	after, err := f.client.GetRecentPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Post{p2, p1}, after)

	cached, err := f.client.GetPostByID(ctx, "p2")
	require.NoError(t, err, "the created post is served from the cache")
	assert.Same(t, p2, cached)
}

func TestClient_InvalidationMap(t *testing.T) {
	ctx := context.Background()
	post := &entity.Post{ID: "p1", CreatorID: "u1"}

	testCases := []struct {
		name     string
		setup    func(f clientFixtures)
		mutate   func(f clientFixtures) error
		expected []string
	}{
		{
			name: "create account",
			setup: func(f clientFixtures) {
				f.users.EXPECT().CreateAccount(ctx, mock.Anything).Return(&entity.UserProfile{ID: "u3"}, nil)
			},
			mutate: func(f clientFixtures) error {
				_, err := f.client.CreateAccount(ctx, &usecase.CreateAccountInput{})

				return err
			},
			expected: nil,
		},
		{
			name: "update post",
			setup: func(f clientFixtures) {
				f.posts.EXPECT().UpdatePost(ctx, mock.Anything).Return(post, nil)
			},
			mutate: func(f clientFixtures) error {
				_, err := f.client.UpdatePost(ctx, &usecase.UpdatePostInput{PostID: "p1"})

				return err
			},
			expected: []string{KeyPost("p1"), KeyRecentPosts, KeyUserPosts("u1")},
		},
		{
			name: "delete post",
			setup: func(f clientFixtures) {
				f.posts.EXPECT().DeletePost(ctx, "p1", "f1").Return(nil)
			},
			mutate: func(f clientFixtures) error {
				return f.client.DeletePost(ctx, "p1", "f1")
			},
			expected: []string{KeyCurrentUser, KeyPost("p1"), KeyRecentPosts, KeyUserPosts("u1"), KeyUserPosts("u2")},
		},
		{
			name: "like post",
			setup: func(f clientFixtures) {
				f.posts.EXPECT().ToggleLike(ctx, "p1", "u1", []string(nil)).Return(post, nil)
			},
			mutate: func(f clientFixtures) error {
				_, err := f.client.LikePost(ctx, "p1", "u1", nil)

				return err
			},
			expected: []string{KeyCurrentUser, KeyPost("p1"), KeyRecentPosts},
		},
		{
			name: "save post",
			setup: func(f clientFixtures) {
				f.saves.EXPECT().SavePost(ctx, "u1", "p1").Return(&entity.SavedRecord{ID: "s1"}, nil)
			},
			mutate: func(f clientFixtures) error {
				_, err := f.client.SavePost(ctx, "u1", "p1")

				return err
			},
			expected: []string{KeyCurrentUser, KeyRecentPosts, KeyUserSaves("u1")},
		},
		{
			name: "delete saved post",
			setup: func(f clientFixtures) {
				f.saves.EXPECT().DeleteSavedPost(ctx, "s1").Return(nil)
			},
			mutate: func(f clientFixtures) error {
				return f.client.DeleteSavedPost(ctx, "u2", "s1")
			},
			expected: []string{KeyCurrentUser, KeyRecentPosts, KeyUserSaves("u2")},
		},
		{
			name: "toggle save",
			setup: func(f clientFixtures) {
				f.saves.EXPECT().ToggleSave(ctx, "u1", "p1", "").Return(&usecase.ToggleSaveOutput{Saved: true}, nil)
			},
			mutate: func(f clientFixtures) error {
				_, err := f.client.ToggleSave(ctx, "u1", "p1", "")

				return err
			},
			expected: []string{KeyCurrentUser, KeyRecentPosts, KeyUserSaves("u1")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := createTestClient(t)
			f.seedAll()
			tc.setup(f)

			require.NoError(t, tc.mutate(f))

			assert.ElementsMatch(t, tc.expected, f.staleKeys())
		})
	}
}

func TestClient_CreatePostInvalidatesCreatorLists(t *testing.T) {
	f := createTestClient(t)
	ctx := context.Background()
	f.seedAll()

	f.posts.EXPECT().CreatePost(ctx, mock.Anything).Return(&entity.Post{ID: "p9", CreatorID: "u2"}, nil)

	_, err := f.client.CreatePost(ctx, &usecase.CreatePostInput{CreatorID: "u2"})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{KeyRecentPosts, KeyUserPosts("u2")}, f.staleKeys())
	assert.Equal(t, cache.StatusFresh, f.cache.Status(KeyPost("p9")))
}

func TestClient_FailedMutationsInvalidateNothing(t *testing.T) {
	f := createTestClient(t)
	ctx := context.Background()
	f.seedAll()
	persist := domainerrors.ErrPersist.WithCause(&gateway.RemoteError{Code: http.StatusInternalServerError})

	f.posts.EXPECT().ToggleLike(ctx, "p1", "u1", []string(nil)).Return(nil, persist)
	f.posts.EXPECT().DeletePost(ctx, "p1", "f1").Return(persist)
	f.saves.EXPECT().SavePost(ctx, "u1", "p1").Return(nil, persist)
	f.sessions.EXPECT().SignIn(ctx, mock.Anything).Return(nil, domainerrors.ErrAuth.WithCause(&gateway.RemoteError{Code: http.StatusUnauthorized}))

	_, err := f.client.LikePost(ctx, "p1", "u1", nil)
	require.Error(t, err)
	require.Error(t, f.client.DeletePost(ctx, "p1", "f1"))
	_, err = f.client.SavePost(ctx, "u1", "p1")
	require.Error(t, err)
	_, err = f.client.SignIn(ctx, &usecase.SignInInput{})
	require.ErrorIs(t, err, domainerrors.ErrAuth)

	assert.Empty(t, f.staleKeys())
	assert.Equal(t, len(allKeys), f.cache.Len())
}

func TestClient_PartialFailuresStillInvalidate(t *testing.T) {
	ctx := context.Background()
	cleanupFailed := domainerrors.ErrRemote.WithCause(&gateway.RemoteError{Code: http.StatusNotFound})

	t.Run("delete post with file already gone", func(t *testing.T) {
		f := createTestClient(t)
		f.seedAll()
		f.posts.EXPECT().DeletePost(ctx, "p1", "f1").Return(cleanupFailed)

		err := f.client.DeletePost(ctx, "p1", "f1")

		require.ErrorIs(t, err, domainerrors.ErrRemote)
		assert.Contains(t, f.staleKeys(), KeyPost("p1"))
		assert.Contains(t, f.staleKeys(), KeyRecentPosts)
	})

	t.Run("delete post that is already gone", func(t *testing.T) {
		f := createTestClient(t)
		f.seedAll()
		notFound := domainerrors.ErrNotFound.WithCause(&gateway.RemoteError{Code: http.StatusNotFound})
		f.posts.EXPECT().DeletePost(ctx, "p1", "f1").Return(notFound)

		err := f.client.DeletePost(ctx, "p1", "f1")

		require.ErrorIs(t, err, domainerrors.ErrNotFound)
		assert.Contains(t, f.staleKeys(), KeyPost("p1"))
		assert.Contains(t, f.staleKeys(), KeyRecentPosts)
		assert.Contains(t, f.staleKeys(), KeyUserPosts("u1"))
	})

	t.Run("update post with old file left behind", func(t *testing.T) {
		f := createTestClient(t)
		f.seedAll()
		f.posts.EXPECT().UpdatePost(ctx, mock.Anything).Return(&entity.Post{ID: "p1", CreatorID: "u1"}, cleanupFailed)

		post, err := f.client.UpdatePost(ctx, &usecase.UpdatePostInput{PostID: "p1"})

		require.ErrorIs(t, err, domainerrors.ErrRemote)
		require.NotNil(t, post)
		assert.ElementsMatch(t, []string{KeyPost("p1"), KeyRecentPosts, KeyUserPosts("u1")}, f.staleKeys())
	})
}

func TestClient_SessionChangesClearCache(t *testing.T) {
	ctx := context.Background()

	t.Run("sign in", func(t *testing.T) {
		f := createTestClient(t)
		f.seedAll()
		f.sessions.EXPECT().SignIn(ctx, mock.Anything).Return(&entity.Session{ID: "s1"}, nil)

		_, err := f.client.SignIn(ctx, &usecase.SignInInput{Email: "ann@example.com", Password: "pw"})

		require.NoError(t, err)
		assert.Zero(t, f.cache.Len())
	})

	t.Run("sign out", func(t *testing.T) {
		f := createTestClient(t)
		f.seedAll()
		f.sessions.EXPECT().SignOut(ctx).Return(nil)

		require.NoError(t, f.client.SignOut(ctx))
		assert.Zero(t, f.cache.Len())
		assert.Equal(t, cache.StatusAbsent, f.client.Status(KeyCurrentUser))
	})
}

func TestClient_SubscribersSeeInvalidation(t *testing.T) {
	f := createTestClient(t)
	ctx := context.Background()

	f.users.EXPECT().GetCurrentUser(mock.Anything).Return(&entity.UserProfile{ID: "u1"}, nil).Once()
	f.saves.EXPECT().ToggleSave(ctx, "u1", "p1", "").Return(&usecase.ToggleSaveOutput{Saved: true}, nil)

	var (
		mu     sync.Mutex
		events []cache.Event
	)
	unsubscribe := f.client.Subscribe(KeyCurrentUser, func(e cache.Event) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, e)
	})
	defer unsubscribe()

	_, err := f.client.GetCurrentUser(ctx)
	require.NoError(t, err)
	_, err = f.client.ToggleSave(ctx, "u1", "p1", "")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 2)
	assert.Equal(t, cache.StatusFresh, events[0].Status)
	assert.Equal(t, cache.StatusStale, events[1].Status)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "profile:u1", KeyUser("u1"))
	assert.NotEqual(t, KeyCurrentUser, KeyUser("current"))
	assert.NotEqual(t, KeyUserPosts("u1"), KeyUser("u1:posts"))
	assert.False(t, isUserPostsKey(KeyUser("x:posts")))
	assert.Equal(t, "post:p1", KeyPost("p1"))
	assert.Equal(t, "user:u1:posts", KeyUserPosts("u1"))
	assert.Equal(t, "user:u1:saves", KeyUserSaves("u1"))
	assert.True(t, isUserPostsKey(KeyUserPosts("u1")))
	assert.False(t, isUserPostsKey(KeyUserSaves("u1")))
	assert.False(t, isUserPostsKey(KeyCurrentUser))
}
