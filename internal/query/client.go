// Package query binds the domain operations to the cache. Reads go through
// cache keys; mutations invalidate the keys they affect before returning, so a
// read issued after a mutation returns observes its effect.
package query

import (
	"context"
	"log/slog"

	"snapgram/internal/cache"
	deliverycontext "snapgram/internal/delivery/context"
	"snapgram/internal/domain/entity"
	domainerrors "snapgram/internal/domain/errors"
	"snapgram/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Client is the data surface the presentation layer consumes.
type Client struct {
	cache    *cache.Cache
	users    usecase.UserUsecase
	sessions usecase.SessionUsecase
	posts    usecase.PostUsecase
	saves    usecase.SaveUsecase
	logger   *slog.Logger
}

// ClientParams holds dependencies for Client, injected by Fx.
type ClientParams struct {
	fx.In

	Cache    *cache.Cache
	Users    usecase.UserUsecase
	Sessions usecase.SessionUsecase
	Posts    usecase.PostUsecase
	Saves    usecase.SaveUsecase
	Logger   *slog.Logger
}

// NewClient creates a Client.
func NewClient(params ClientParams) *Client {
	return &Client{
		cache:    params.Cache,
		users:    params.Users,
		sessions: params.Sessions,
		posts:    params.Posts,
		saves:    params.Saves,
		logger:   params.Logger,
	}
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// Subscribe registers fn for changes of key. Call the returned function to stop.
func (c *Client) Subscribe(key string, fn cache.Listener) (unsubscribe func()) {
	return c.cache.Subscribe(key, fn)
}

// Status reports the cache state of key.
func (c *Client) Status(key string) cache.Status {
	return c.cache.Status(key)
}

// --- Reads ---

// GetCurrentUser returns the signed-in user's profile.
func (c *Client) GetCurrentUser(ctx context.Context) (*entity.UserProfile, error) {
	return cache.Fetch(ctx, c.cache, KeyCurrentUser, c.users.GetCurrentUser)
}

// GetUserByID returns a profile.
func (c *Client) GetUserByID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	return cache.Fetch(ctx, c.cache, KeyUser(userID), func(ctx context.Context) (*entity.UserProfile, error) {
		return c.users.GetUserByID(ctx, userID)
	})
}

// GetRecentPosts returns the feed, newest first.
func (c *Client) GetRecentPosts(ctx context.Context) ([]*entity.Post, error) {
	return cache.Fetch(ctx, c.cache, KeyRecentPosts, func(ctx context.Context) ([]*entity.Post, error) {
		return c.posts.ListRecentPosts(ctx, usecase.DefaultRecentPostsLimit)
	})
}

// GetPostByID returns a post.
func (c *Client) GetPostByID(ctx context.Context, postID string) (*entity.Post, error) {
	return cache.Fetch(ctx, c.cache, KeyPost(postID), func(ctx context.Context) (*entity.Post, error) {
		return c.posts.GetPostByID(ctx, postID)
	})
}

// GetUserPosts returns a creator's posts, newest first.
func (c *Client) GetUserPosts(ctx context.Context, userID string) ([]*entity.Post, error) {
	return cache.Fetch(ctx, c.cache, KeyUserPosts(userID), func(ctx context.Context) ([]*entity.Post, error) {
		return c.posts.ListUserPosts(ctx, userID, usecase.DefaultRecentPostsLimit)
	})
}

// GetSavedPosts returns a user's saved records, newest first.
func (c *Client) GetSavedPosts(ctx context.Context, userID string) ([]*entity.SavedRecord, error) {
	return cache.Fetch(ctx, c.cache, KeyUserSaves(userID), func(ctx context.Context) ([]*entity.SavedRecord, error) {
		return c.saves.ListSaves(ctx, userID)
	})
}

// --- Mutations ---

// CreateAccount registers a new user. Nothing is cached before sign-in.
func (c *Client) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*entity.UserProfile, error) {
	return c.users.CreateAccount(ctx, input)
}

// SignIn opens a session and drops everything cached for the previous one.
func (c *Client) SignIn(ctx context.Context, input *usecase.SignInInput) (*entity.Session, error) {
	session, err := c.sessions.SignIn(ctx, input)
	if err != nil {
		return nil, err
	}
	c.cache.Clear()

	return session, nil
}

// SignOut closes the session and clears the cache.
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.sessions.SignOut(ctx); err != nil {
		return err
	}
	c.cache.Clear()

	return nil
}

// CreatePost publishes a post and seeds its key with the created value.
func (c *Client) CreatePost(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	post, err := c.posts.CreatePost(ctx, input)
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx, KeyRecentPosts, KeyUserPosts(post.CreatorID))
	c.cache.SetData(KeyPost(post.ID), post)

	return post, nil
}

// UpdatePost edits a post. When the post was written but the replaced image
// could not be deleted, the keys are still invalidated and both results returned.
func (c *Client) UpdatePost(ctx context.Context, input *usecase.UpdatePostInput) (*entity.Post, error) {
	post, err := c.posts.UpdatePost(ctx, input)
	if post != nil {
		c.invalidate(ctx, KeyPost(post.ID), KeyRecentPosts, KeyUserPosts(post.CreatorID))
	}

	return post, err
}

// DeletePost deletes a post and its image.
func (c *Client) DeletePost(ctx context.Context, postID, imageID string) error {
	err := c.posts.DeletePost(ctx, postID, imageID)
	// A Remote failure here comes from the image cleanup; the post itself is gone.
	// NotFound means it was already gone, so cached copies are wrong either way.
	if err != nil && !errors.Is(err, domainerrors.ErrRemote) && !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	c.invalidate(ctx, KeyPost(postID), KeyRecentPosts, KeyCurrentUser)
	c.cache.InvalidateFunc(isUserPostsKey)

	return err
}

// LikePost toggles userID's like on a post given the likes the caller last saw.
func (c *Client) LikePost(ctx context.Context, postID, userID string, currentLikes []string) (*entity.Post, error) {
	post, err := c.posts.ToggleLike(ctx, postID, userID, currentLikes)
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx, KeyPost(postID), KeyRecentPosts, KeyCurrentUser)

	return post, nil
}

// SavePost saves a post for userID.
func (c *Client) SavePost(ctx context.Context, userID, postID string) (*entity.SavedRecord, error) {
	record, err := c.saves.SavePost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	c.invalidateSaves(ctx, userID)

	return record, nil
}

// DeleteSavedPost deletes one of userID's saved records.
func (c *Client) DeleteSavedPost(ctx context.Context, userID, savedRecordID string) error {
	if err := c.saves.DeleteSavedPost(ctx, savedRecordID); err != nil {
		return err
	}

	c.invalidateSaves(ctx, userID)

	return nil
}

// ToggleSave saves when existingRecordID is empty and unsaves otherwise.
func (c *Client) ToggleSave(ctx context.Context, userID, postID, existingRecordID string) (*usecase.ToggleSaveOutput, error) {
	out, err := c.saves.ToggleSave(ctx, userID, postID, existingRecordID)
	if err != nil {
		return nil, err
	}

	c.invalidateSaves(ctx, userID)

	return out, nil
}

func (c *Client) invalidateSaves(ctx context.Context, userID string) {
	c.invalidate(ctx, KeyRecentPosts, KeyCurrentUser, KeyUserSaves(userID))
}

func (c *Client) invalidate(ctx context.Context, keys ...string) {
	for _, key := range keys {
		c.cache.Invalidate(key)
	}
	c.log(ctx).Debug("Invalidated cache keys", slog.Any("keys", keys))
}
