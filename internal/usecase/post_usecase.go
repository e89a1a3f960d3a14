package usecase

import (
	"context"
	"io"

	"snapgram/internal/domain/entity"
)

// DefaultRecentPostsLimit caps the recent-posts feed when no limit is given.
const DefaultRecentPostsLimit = 20

// File is an image picked for a post.
type File struct {
	Name     string
	MimeType string
	Size     int64
	Content  io.Reader
}

// CreatePostInput defines the data required to publish a post.
type CreatePostInput struct {
	CreatorID string `validate:"required"`
	Caption   string `validate:"max=2200"`
	Files     []File
	Location  string
	Tags      string // Comma-separated.
}

// UpdatePostInput edits a post. With no file the image is kept; with one file
// the image is replaced and the previous file deleted.
type UpdatePostInput struct {
	PostID    string `validate:"required"`
	CreatorID string
	Caption   string `validate:"max=2200"`
	Files     []File
	Location  string
	Tags      string
	ImageID   string `validate:"required"`
	ImageURL  string `validate:"required"`
}

// PostUsecase defines the post operations.
type PostUsecase interface {
	// CreatePost uploads the single image, then creates the post. If anything after
	// the upload fails the uploaded file is deleted before the error is returned.
	CreatePost(ctx context.Context, input *CreatePostInput) (*entity.Post, error)

	GetPostByID(ctx context.Context, postID string) (*entity.Post, error)

	// UpdatePost edits the post. When the replaced image cannot be deleted the
	// updated post is returned together with a Remote error.
	UpdatePost(ctx context.Context, input *UpdatePostInput) (*entity.Post, error)

	// DeletePost deletes the post document and then its image. A failed image
	// deletion is reported after the post is already gone.
	DeletePost(ctx context.Context, postID, imageID string) error

	// ListRecentPosts lists posts newest first. limit <= 0 means DefaultRecentPostsLimit.
	ListRecentPosts(ctx context.Context, limit int) ([]*entity.Post, error)

	// ListUserPosts lists one creator's posts newest first.
	ListUserPosts(ctx context.Context, creatorID string, limit int) ([]*entity.Post, error)

	// ToggleLike flips userID's membership in currentLikes and writes the result
	// back. It does not re-read the post: concurrent toggles are last-write-wins.
	ToggleLike(ctx context.Context, postID, userID string, currentLikes []string) (*entity.Post, error)
}
