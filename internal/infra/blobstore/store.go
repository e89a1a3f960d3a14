// Package blobstore implements the storage gateway over a gocloud.dev bucket.
// Any bucket URL with a registered driver works: mem://, file://, gs://, s3://.
package blobstore

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"snapgram/internal/domain/entity"
	"snapgram/internal/domain/gateway"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// metadataName holds the original file name of an upload.
const metadataName = "name"

// Settings locate the bucket and the public URL its objects are served from.
type Settings struct {
	URL           string // gocloud bucket URL.
	BucketID      string // Reported as StoredFile.BucketID.
	PublicBaseURL string // Prefix of preview URLs, e.g. https://cdn.example.com/media.
	Prefix        string // Key prefix inside the bucket.
}

// Store is safe for concurrent use.
type Store struct {
	bucket   *blob.Bucket
	settings Settings
	clock    func() time.Time
	logger   *slog.Logger
}

var _ gateway.StorageGateway = (*Store)(nil)

// Open opens the bucket at settings.URL.
func Open(ctx context.Context, settings Settings, logger *slog.Logger) (*Store, error) {
	if settings.URL == "" {
		return nil, errors.New("blob bucket url is required")
	}

	bucket, err := blob.OpenBucket(ctx, settings.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", settings.URL)
	}
	logger.Info("Opened blob bucket", slog.String("url", settings.URL))

	return New(bucket, settings, logger), nil
}

// New wraps an already opened bucket. The Store takes ownership of it.
func New(bucket *blob.Bucket, settings Settings, logger *slog.Logger) *Store {
	if settings.BucketID == "" {
		settings.BucketID = "default"
	}
	settings.PublicBaseURL = strings.TrimRight(settings.PublicBaseURL, "/")

	return &Store{
		bucket:   bucket,
		settings: settings,
		clock:    time.Now,
		logger:   logger,
	}
}

// Close releases the bucket.
func (s *Store) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func (s *Store) key(fileID string) string {
	return s.settings.Prefix + fileID
}

// UploadFile writes the upload under id. Existing objects are never overwritten.
func (s *Store) UploadFile(ctx context.Context, id string, upload gateway.FileUpload) (*entity.StoredFile, error) {
	if id == "" {
		return nil, &gateway.RemoteError{Code: http.StatusBadRequest, Type: "storage_invalid_file", Message: "file id is required"}
	}
	key := s.key(id)

	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return nil, remoteError(err)
	}
	if exists {
		return nil, &gateway.RemoteError{
			Code:    http.StatusConflict,
			Type:    "storage_file_already_exists",
			Message: "A storage file with the requested ID already exists.",
		}
	}

	body := upload.Body
	if body == nil {
		body = strings.NewReader("")
	}
	opts := &blob.WriterOptions{
		ContentType: upload.MimeType,
		Metadata:    map[string]string{metadataName: upload.Name},
	}
	if err := s.bucket.Upload(ctx, key, body, opts); err != nil {
		return nil, remoteError(err)
	}

	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		return nil, remoteError(err)
	}

	createdAt := attrs.CreateTime
	if createdAt.IsZero() {
		createdAt = attrs.ModTime
	}
	if createdAt.IsZero() {
		createdAt = s.clock()
	}

	return &entity.StoredFile{
		ID:        id,
		BucketID:  s.settings.BucketID,
		Name:      upload.Name,
		MimeType:  attrs.ContentType,
		SizeBytes: attrs.Size,
		CreatedAt: createdAt.UTC(),
	}, nil
}

// FilePreviewURL derives the public URL of the object with the preview
// parameters appended for an image-resizing front. No I/O.
func (s *Store) FilePreviewURL(fileID string, opts gateway.PreviewOptions) (string, error) {
	if s.settings.PublicBaseURL == "" {
		return "", &gateway.RemoteError{
			Code:    http.StatusBadRequest,
			Type:    "storage_preview_unavailable",
			Message: "no public base url configured for bucket " + s.settings.BucketID,
		}
	}

	q := url.Values{}
	if opts.Width > 0 {
		q.Set("width", strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		q.Set("height", strconv.Itoa(opts.Height))
	}
	if opts.Gravity != "" {
		q.Set("gravity", opts.Gravity)
	}
	if opts.Quality > 0 {
		q.Set("quality", strconv.Itoa(opts.Quality))
	}

	previewURL := s.settings.PublicBaseURL + "/" + escapeKey(s.key(fileID))
	if encoded := q.Encode(); encoded != "" {
		previewURL += "?" + encoded
	}

	return previewURL, nil
}

// DeleteFile deletes the object.
func (s *Store) DeleteFile(ctx context.Context, fileID string) error {
	if err := s.bucket.Delete(ctx, s.key(fileID)); err != nil {
		return remoteError(err)
	}

	return nil
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}

	return strings.Join(parts, "/")
}

// remoteError maps a gocloud error code onto the backend status it stands for.
func remoteError(err error) *gateway.RemoteError {
	code := gcerrors.Code(err)
	if code == gcerrors.Canceled || code == gcerrors.DeadlineExceeded {
		return gateway.NewNetworkError(err)
	}

	status, kind := http.StatusInternalServerError, "storage_error"
	switch code {
	case gcerrors.NotFound:
		status, kind = http.StatusNotFound, "storage_file_not_found"
	case gcerrors.AlreadyExists:
		status, kind = http.StatusConflict, "storage_file_already_exists"
	case gcerrors.PermissionDenied:
		status, kind = http.StatusForbidden, "storage_permission_denied"
	case gcerrors.InvalidArgument, gcerrors.FailedPrecondition:
		status, kind = http.StatusBadRequest, "storage_invalid_file"
	case gcerrors.ResourceExhausted:
		status, kind = http.StatusTooManyRequests, "storage_rate_limited"
	}

	return &gateway.RemoteError{Code: status, Type: kind, Message: err.Error(), Err: err}
}
