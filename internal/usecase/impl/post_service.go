package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "snapgram/internal/delivery/context"
	"snapgram/internal/domain/entity"
	domainerrors "snapgram/internal/domain/errors"
	"snapgram/internal/domain/gateway"
	"snapgram/internal/domain/service"
	"snapgram/internal/usecase"

	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	documents gateway.DocumentGateway
	storage   gateway.StorageGateway
	ids       service.IDGenerator
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	Documents gateway.DocumentGateway
	Storage   gateway.StorageGateway
	IDs       service.IDGenerator
	Logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		documents: params.Documents,
		storage:   params.Storage,
		ids:       params.IDs,
		logger:    params.Logger,
	}
}

// log returns an operation-scoped logger if available, otherwise falls back to the service's logger.
func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost uploads the image, derives its preview URL and creates the post document.
func (srv *postService) CreatePost(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if len(input.Files) != 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("exactly one file is required")
	}

	uploaded, imageURL, err := srv.uploadImage(ctx, input.Files[0])
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		CreatorID: input.CreatorID,
		Caption:   input.Caption,
		ImageURL:  imageURL,
		ImageID:   uploaded.ID,
		Location:  input.Location,
		Tags:      ParseTags(input.Tags),
		Likes:     []string{},
	}

	doc, err := gateway.NewPostDocument(post)
	if err != nil {
		return nil, srv.discardUpload(ctx, uploaded.ID, domainerrors.ErrPersist.WithCause(err))
	}

	created, err := srv.documents.CreateDocument(ctx, gateway.CollectionPosts, srv.ids.NewID(), doc)
	if err != nil {
		srv.log(ctx).Warn("Post document creation failed", slog.String("file_id", uploaded.ID), slog.Any("error", err))

		return nil, srv.discardUpload(ctx, uploaded.ID, domainerrors.ErrPersist.WithCause(err))
	}

	post.ID = created.ID
	post.CreatedAt = created.CreatedAt
	post.UpdatedAt = created.UpdatedAt

	srv.log(ctx).Debug("Post created", slog.String("post_id", post.ID), slog.String("file_id", post.ImageID))

	return post, nil
}

// uploadImage stores the file and derives its preview URL. A file whose URL
// cannot be derived is deleted again before the error is returned.
func (srv *postService) uploadImage(ctx context.Context, file usecase.File) (*entity.StoredFile, string, error) {
	uploaded, err := srv.storage.UploadFile(ctx, srv.ids.NewID(), gateway.FileUpload{
		Name:     file.Name,
		MimeType: file.MimeType,
		Size:     file.Size,
		Body:     file.Content,
	})
	if err != nil {
		srv.log(ctx).Warn("File upload failed", slog.String("name", file.Name), slog.Any("error", err))

		return nil, "", domainerrors.ErrUpload.WithCause(err)
	}

	imageURL, err := srv.storage.FilePreviewURL(uploaded.ID, gateway.DefaultPreview)
	if err != nil {
		return nil, "", srv.discardUpload(ctx, uploaded.ID, domainerrors.ErrUpload.WithCause(err))
	}

	return uploaded, imageURL, nil
}

// discardUpload deletes a file that no post references and returns cause,
// joined with the deletion failure if the file could not be removed.
func (srv *postService) discardUpload(ctx context.Context, fileID string, cause error) error {
	if err := srv.storage.DeleteFile(ctx, fileID); err != nil {
		srv.log(ctx).Error("Failed to delete orphaned file", slog.String("file_id", fileID), slog.Any("error", err))

		return joinFailures(cause, domainerrors.ErrRemote.WithCause(err))
	}

	return cause
}

// GetPostByID loads one post.
func (srv *postService) GetPostByID(ctx context.Context, postID string) (*entity.Post, error) {
	if postID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("post id is required")
	}

	doc, err := srv.documents.GetDocument(ctx, gateway.CollectionPosts, postID)
	if err != nil {
		return nil, lookupFailure(err)
	}

	post, err := gateway.DecodePost(doc)
	if err != nil {
		return nil, decodeFailure(err)
	}

	return post, nil
}

// UpdatePost edits caption, location and tags and optionally replaces the image.
func (srv *postService) UpdatePost(ctx context.Context, input *usecase.UpdatePostInput) (*entity.Post, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if len(input.Files) > 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at most one file is allowed")
	}

	edit := &entity.Post{
		ID:       input.PostID,
		Caption:  input.Caption,
		ImageURL: input.ImageURL,
		ImageID:  input.ImageID,
		Location: input.Location,
		Tags:     ParseTags(input.Tags),
	}

	var replaced *entity.StoredFile
	if len(input.Files) == 1 {
		uploaded, imageURL, err := srv.uploadImage(ctx, input.Files[0])
		if err != nil {
			return nil, err
		}
		replaced = uploaded
		edit.ImageID = uploaded.ID
		edit.ImageURL = imageURL
	}

	updated, err := srv.writeEdit(ctx, edit)
	if err != nil {
		if replaced != nil {
			return nil, srv.discardUpload(ctx, replaced.ID, err)
		}

		return nil, err
	}

	if replaced != nil {
		// The post now points at the new file; the previous one is unreferenced.
		if err := srv.storage.DeleteFile(ctx, input.ImageID); err != nil {
			srv.log(ctx).Error("Post updated but previous file could not be deleted",
				slog.String("post_id", input.PostID),
				slog.String("file_id", input.ImageID),
				slog.Any("error", err),
			)

			return updated, domainerrors.ErrRemote.WithCause(err)
		}
	}

	return updated, nil
}

func (srv *postService) writeEdit(ctx context.Context, edit *entity.Post) (*entity.Post, error) {
	patch, err := gateway.NewPostPatch(edit)
	if err != nil {
		return nil, domainerrors.ErrPersist.WithCause(err)
	}

	doc, err := srv.documents.UpdateDocument(ctx, gateway.CollectionPosts, edit.ID, patch)
	if err != nil {
		return nil, writeFailure(err)
	}

	updated, err := gateway.DecodePost(doc)
	if err != nil {
		return nil, decodeFailure(err)
	}

	return updated, nil
}

// DeletePost deletes the post document, then its image file.
func (srv *postService) DeletePost(ctx context.Context, postID, imageID string) error {
	if postID == "" || imageID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("post id and image id are required")
	}

	if err := srv.documents.DeleteDocument(ctx, gateway.CollectionPosts, postID); err != nil {
		return writeFailure(err)
	}

	if err := srv.storage.DeleteFile(ctx, imageID); err != nil {
		srv.log(ctx).Error("Post deleted but its file could not be deleted",
			slog.String("post_id", postID),
			slog.String("file_id", imageID),
			slog.Any("error", err),
		)

		return domainerrors.ErrRemote.WithCause(err)
	}

	srv.log(ctx).Debug("Post deleted", slog.String("post_id", postID))

	return nil
}

// ListRecentPosts lists posts newest first.
func (srv *postService) ListRecentPosts(ctx context.Context, limit int) ([]*entity.Post, error) {
	return srv.listPosts(ctx, nil, limit)
}

// ListUserPosts lists the posts of one creator newest first.
func (srv *postService) ListUserPosts(ctx context.Context, creatorID string, limit int) ([]*entity.Post, error) {
	if creatorID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("creator id is required")
	}

	return srv.listPosts(ctx, []gateway.Filter{gateway.Equal(gateway.AttrCreator, creatorID)}, limit)
}

func (srv *postService) listPosts(ctx context.Context, filters []gateway.Filter, limit int) ([]*entity.Post, error) {
	if limit <= 0 {
		limit = usecase.DefaultRecentPostsLimit
	}

	list, err := srv.documents.ListDocuments(ctx, gateway.CollectionPosts, gateway.Query{
		Filters: filters,
		Orders:  []gateway.Order{gateway.OrderDesc(gateway.AttrCreatedAt)},
		Limit:   limit,
	})
	if err != nil {
		return nil, remoteFailure(err)
	}

	posts, err := gateway.DecodeAll(list, gateway.DecodePost)
	if err != nil {
		return nil, decodeFailure(err)
	}

	return posts, nil
}

// ToggleLike writes currentLikes with userID's membership flipped.
func (srv *postService) ToggleLike(ctx context.Context, postID, userID string, currentLikes []string) (*entity.Post, error) {
	if postID == "" || userID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("post id and user id are required")
	}

	likes := ToggleMembership(currentLikes, userID)

	doc, err := srv.documents.UpdateDocument(ctx, gateway.CollectionPosts, postID, gateway.NewLikesPatch(likes))
	if err != nil {
		return nil, writeFailure(err)
	}

	post, err := gateway.DecodePost(doc)
	if err != nil {
		return nil, decodeFailure(err)
	}

	return post, nil
}

// ToggleMembership returns a copy of set with id removed if present, or appended if absent.
func ToggleMembership(set []string, id string) []string {
	if slices.Contains(set, id) {
		out := make([]string, 0, len(set))
		for _, v := range set {
			if v != id {
				out = append(out, v)
			}
		}

		return out
	}

	out := make([]string, 0, len(set)+1)
	out = append(out, set...)

	return append(out, id)
}

// ParseTags splits a comma-separated tag string. Spaces are removed, empty
// tokens dropped and repeated tags kept once in first-seen order.
func ParseTags(raw string) []string {
	tags := []string{}
	for token := range strings.SplitSeq(strings.ReplaceAll(raw, " ", ""), ",") {
		token = strings.TrimSpace(token)
		if token == "" || slices.Contains(tags, token) {
			continue
		}
		tags = append(tags, token)
	}

	return tags
}
