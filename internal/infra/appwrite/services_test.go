package appwrite_test

import (
	"context"
	"strings"
	"testing"

	domainerrors "snapgram/internal/domain/errors"
	"snapgram/internal/domain/gateway"
	"snapgram/internal/infra/id"
	"snapgram/internal/testkit/appwritefake"
	"snapgram/internal/usecase"
	"snapgram/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Drives the domain operations end to end over HTTP.
func TestClient_DomainOperations(t *testing.T) {
	f := newFixture(t, appwritefake.Options{ProjectID: "snap"})
	ctx := context.Background()
	ids := id.NewUUIDGenerator()
	logger := newLogger()

	users := impl.NewUserService(impl.UserServiceParams{Accounts: f.client, Documents: f.client, IDs: ids, Logger: logger})
	sessions := impl.NewSessionService(impl.SessionServiceParams{Accounts: f.client, Logger: logger})
	posts := impl.NewPostService(impl.PostServiceParams{Documents: f.client, Storage: f.client, IDs: ids, Logger: logger})
	saves := impl.NewSaveService(impl.SaveServiceParams{Documents: f.client, IDs: ids, Logger: logger})

	profile, err := users.CreateAccount(ctx, &usecase.CreateAccountInput{
		Email: "ann@example.com", Password: "password1", Name: "Ann", Username: "ann",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(profile.ImageURL, f.server.Endpoint()+"/avatars/initials?"))

	_, err = users.GetCurrentUser(ctx)
	require.ErrorIs(t, err, domainerrors.ErrAuth)

	_, err = sessions.SignIn(ctx, &usecase.SignInInput{Email: "ann@example.com", Password: "password1"})
	require.NoError(t, err)
	me, err := users.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, me.ID)

	post, err := posts.CreatePost(ctx, &usecase.CreatePostInput{
		CreatorID: me.ID,
		Caption:   "first",
		Files:     []usecase.File{{Name: "a.jpg", MimeType: "image/jpeg", Size: 5, Content: strings.NewReader("image")}},
		Tags:      "sun, sea",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"sun", "sea"}, post.Tags)
	assert.Contains(t, post.ImageURL, "/storage/buckets/media/files/"+post.ImageID+"/preview?")
	assert.Equal(t, []string{post.ImageID}, f.backend.FileIDs())

	liked, err := posts.ToggleLike(ctx, post.ID, me.ID, post.Likes)
	require.NoError(t, err)
	assert.True(t, liked.LikedBy(me.ID))

	recent, err := posts.ListRecentPosts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, post.ID, recent[0].ID)

	saved, err := saves.ToggleSave(ctx, me.ID, post.ID, "")
	require.NoError(t, err)
	records, err := saves.ListSaves(ctx, me.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, saved.Record.ID, records[0].ID)

	require.NoError(t, posts.DeletePost(ctx, post.ID, post.ImageID))
	assert.Empty(t, f.backend.FileIDs())
	assert.Zero(t, f.backend.DocumentCount(gateway.CollectionPosts))

	require.NoError(t, sessions.SignOut(ctx))
	_, err = users.GetCurrentUser(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrAuth)
}
