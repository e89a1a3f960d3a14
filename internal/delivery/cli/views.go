package cli

import (
	"time"

	"snapgram/internal/domain/entity"
)

type profileView struct {
	ID        string    `json:"id"`
	AccountID string    `json:"accountId"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	ImageURL  string    `json:"imageUrl"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func newProfileView(p *entity.UserProfile) profileView {
	return profileView{
		ID:        p.ID,
		AccountID: p.AccountID,
		Name:      p.Name,
		Username:  p.Username,
		Email:     p.Email,
		ImageURL:  p.ImageURL,
		Bio:       p.Bio,
		CreatedAt: p.CreatedAt,
	}
}

// sessionView leaves out the secret.
type sessionView struct {
	ID        string    `json:"id"`
	AccountID string    `json:"accountId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func newSessionView(s *entity.Session) sessionView {
	return sessionView{ID: s.ID, AccountID: s.AccountID, ExpiresAt: s.ExpiresAt}
}

type postView struct {
	ID        string    `json:"id"`
	CreatorID string    `json:"creatorId"`
	Caption   string    `json:"caption"`
	ImageURL  string    `json:"imageUrl"`
	ImageID   string    `json:"imageId"`
	Location  string    `json:"location,omitempty"`
	Tags      []string  `json:"tags"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newPostView(p *entity.Post) postView {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	likes := p.Likes
	if likes == nil {
		likes = []string{}
	}

	return postView{
		ID:        p.ID,
		CreatorID: p.CreatorID,
		Caption:   p.Caption,
		ImageURL:  p.ImageURL,
		ImageID:   p.ImageID,
		Location:  p.Location,
		Tags:      tags,
		Likes:     likes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func newPostViews(posts []*entity.Post) []postView {
	views := make([]postView, 0, len(posts))
	for _, p := range posts {
		views = append(views, newPostView(p))
	}

	return views
}

type savedRecordView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	PostID    string    `json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

func newSavedRecordView(r *entity.SavedRecord) savedRecordView {
	return savedRecordView{ID: r.ID, UserID: r.UserID, PostID: r.PostID, CreatedAt: r.CreatedAt}
}

type saveView struct {
	Saved  bool             `json:"saved"`
	Record *savedRecordView `json:"record,omitempty"`
}

func newSaveView(saved bool, record *entity.SavedRecord) saveView {
	view := saveView{Saved: saved}
	if record != nil {
		r := newSavedRecordView(record)
		view.Record = &r
	}

	return view
}
