package gateway

import (
	"bytes"
	"encoding/json"
	"time"

	"snapgram/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Attribute names used in filters.
const (
	AttrAccountID = "accountId"
	AttrCreator   = "creator"
	AttrUser      = "user"
	AttrPost      = "post"
)

// ErrInvalidDocument is returned when a document does not match its fixed shape.
var ErrInvalidDocument = errors.New("invalid document")

//nolint:gochecknoglobals
var validate = validator.New(validator.WithRequiredStructEnabled())

// Ref is a reference to another document. Backends may return either the bare
// id or the expanded related document; both decode to the id.
type Ref string

// UnmarshalJSON accepts "id" or {"$id": "id", ...}.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""

		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return errors.WithStack(err)
		}
		*r = Ref(id)

		return nil
	}

	var expanded struct {
		ID string `json:"$id"`
	}
	if err := json.Unmarshal(data, &expanded); err != nil {
		return errors.WithStack(err)
	}
	*r = Ref(expanded.ID)

	return nil
}

// Refs is a to-many reference.
type Refs []Ref

// Strings returns the referenced ids.
func (rs Refs) Strings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		if r != "" {
			out = append(out, string(r))
		}
	}

	return out
}

func toRefs(ids []string) Refs {
	out := make(Refs, 0, len(ids))
	for _, id := range ids {
		out = append(out, Ref(id))
	}

	return out
}

// ProfileDocument is the stored shape of a UserProfile.
type ProfileDocument struct {
	AccountID string `json:"accountId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Username  string `json:"username"`
	Email     string `json:"email" validate:"required,email"`
	ImageURL  string `json:"imageUrl" validate:"omitempty,url"`
	Bio       string `json:"bio"`
}

// PostDocument is the stored shape of a Post.
type PostDocument struct {
	Creator  Ref      `json:"creator" validate:"required"`
	Caption  string   `json:"caption"`
	ImageURL string   `json:"imageUrl" validate:"required,url"`
	ImageID  string   `json:"imageId" validate:"required"`
	Location string   `json:"location"`
	Tags     []string `json:"tags"`
	Likes    Refs     `json:"likes"`
}

// PostPatch is a partial update of a Post's editable attributes.
type PostPatch struct {
	Caption  string   `json:"caption"`
	ImageURL string   `json:"imageUrl" validate:"required,url"`
	ImageID  string   `json:"imageId" validate:"required"`
	Location string   `json:"location"`
	Tags     []string `json:"tags"`
}

// LikesPatch replaces a Post's likes.
type LikesPatch struct {
	Likes Refs `json:"likes"`
}

// SaveDocument is the stored shape of a SavedRecord.
type SaveDocument struct {
	User Ref `json:"user" validate:"required"`
	Post Ref `json:"post" validate:"required"`
}

// NewProfileDocument builds and validates the document for a profile.
func NewProfileDocument(p *entity.UserProfile) (*ProfileDocument, error) {
	doc := &ProfileDocument{
		AccountID: p.AccountID,
		Name:      p.Name,
		Username:  p.Username,
		Email:     p.Email,
		ImageURL:  p.ImageURL,
		Bio:       p.Bio,
	}

	return doc, check(doc, "profile")
}

// NewPostDocument builds and validates the document for a post.
func NewPostDocument(p *entity.Post) (*PostDocument, error) {
	doc := &PostDocument{
		Creator:  Ref(p.CreatorID),
		Caption:  p.Caption,
		ImageURL: p.ImageURL,
		ImageID:  p.ImageID,
		Location: p.Location,
		Tags:     nonNil(p.Tags),
		Likes:    toRefs(p.Likes),
	}

	return doc, check(doc, "post")
}

// NewPostPatch builds and validates an edit of a post.
func NewPostPatch(p *entity.Post) (*PostPatch, error) {
	patch := &PostPatch{
		Caption:  p.Caption,
		ImageURL: p.ImageURL,
		ImageID:  p.ImageID,
		Location: p.Location,
		Tags:     nonNil(p.Tags),
	}

	return patch, check(patch, "post")
}

// NewLikesPatch builds the likes replacement.
func NewLikesPatch(likes []string) *LikesPatch {
	return &LikesPatch{Likes: toRefs(likes)}
}

// NewSaveDocument builds and validates the document for a saved record.
func NewSaveDocument(userID, postID string) (*SaveDocument, error) {
	doc := &SaveDocument{User: Ref(userID), Post: Ref(postID)}

	return doc, check(doc, "saved record")
}

// DecodeProfile decodes and validates a profile document.
func DecodeProfile(doc *Document) (*entity.UserProfile, error) {
	var pd ProfileDocument
	if err := decode(doc, &pd, "profile"); err != nil {
		return nil, err
	}

	return &entity.UserProfile{
		ID:        doc.ID,
		AccountID: pd.AccountID,
		Name:      pd.Name,
		Username:  pd.Username,
		Email:     pd.Email,
		ImageURL:  pd.ImageURL,
		Bio:       pd.Bio,
		CreatedAt: doc.CreatedAt,
	}, nil
}

// DecodePost decodes and validates a post document.
func DecodePost(doc *Document) (*entity.Post, error) {
	var pd PostDocument
	if err := decode(doc, &pd, "post"); err != nil {
		return nil, err
	}

	return &entity.Post{
		ID:        doc.ID,
		CreatorID: string(pd.Creator),
		Caption:   pd.Caption,
		ImageURL:  pd.ImageURL,
		ImageID:   pd.ImageID,
		Location:  pd.Location,
		Tags:      nonNil(pd.Tags),
		Likes:     pd.Likes.Strings(),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

// DecodeSave decodes and validates a saved-record document.
func DecodeSave(doc *Document) (*entity.SavedRecord, error) {
	var sd SaveDocument
	if err := decode(doc, &sd, "saved record"); err != nil {
		return nil, err
	}

	return &entity.SavedRecord{
		ID:        doc.ID,
		UserID:    string(sd.User),
		PostID:    string(sd.Post),
		CreatedAt: doc.CreatedAt,
	}, nil
}

// DecodeAll decodes every document of a listing with fn.
func DecodeAll[T any](list *DocumentList, fn func(*Document) (*T, error)) ([]*T, error) {
	out := make([]*T, 0, len(list.Documents))
	for _, doc := range list.Documents {
		v, err := fn(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// DocumentTimestamp parses a backend timestamp, returning the zero time for empty input.
func DocumentTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse timestamp %q", raw)
	}

	return t, nil
}

func decode(doc *Document, out any, what string) error {
	if doc == nil {
		return errors.Wrapf(ErrInvalidDocument, "nil %s document", what)
	}
	if err := json.Unmarshal(doc.Data, out); err != nil {
		return errors.Wrapf(ErrInvalidDocument, "decode %s document %s: %v", what, doc.ID, err)
	}

	return check(out, what+" document "+doc.ID)
}

func check(v any, what string) error {
	if err := validate.Struct(v); err != nil {
		return errors.Wrapf(ErrInvalidDocument, "%s: %v", what, err)
	}

	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
