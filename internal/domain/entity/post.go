package entity

import (
	"slices"
	"time"
)

// Post is a published image post.
type Post struct {
	ID        string
	CreatorID string // UserProfile.ID of the author.
	Caption   string
	ImageURL  string // Preview URL derived from ImageID.
	ImageID   string // StoredFile.ID; the file must live as long as the post.
	Location  string
	Tags      []string
	Likes     []string // UserProfile ids that liked the post.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LikedBy reports whether the given user id is in the post's likes.
func (p *Post) LikedBy(userID string) bool {
	return slices.Contains(p.Likes, userID)
}

// SavedRecord links a user to a post they saved.
type SavedRecord struct {
	ID        string
	UserID    string
	PostID    string
	CreatedAt time.Time
}

// StoredFile is a binary object held by the file-storage subsystem.
type StoredFile struct {
	ID        string
	BucketID  string
	Name      string
	MimeType  string
	SizeBytes int64
	CreatedAt time.Time
}
