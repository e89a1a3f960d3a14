package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"snapgram/internal/domain/entity"
	"snapgram/internal/domain/gateway"
)

type fileRecord struct {
	file    entity.StoredFile
	content []byte
}

// UploadFile stores the upload under id.
func (b *Backend) UploadFile(_ context.Context, id string, upload gateway.FileUpload) (*entity.StoredFile, error) {
	var content []byte
	if upload.Body != nil {
		var err error
		if content, err = io.ReadAll(upload.Body); err != nil {
			return nil, gateway.NewNetworkError(err)
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injectedLocked(OpUploadFile); err != nil {
		return nil, err
	}
	if _, ok := b.files[id]; ok {
		return nil, conflict("storage_file_already_exists", "A storage file with the requested ID already exists.")
	}

	rec := &fileRecord{
		file: entity.StoredFile{
			ID:        id,
			BucketID:  b.bucket,
			Name:      upload.Name,
			MimeType:  upload.MimeType,
			SizeBytes: int64(len(content)),
			CreatedAt: b.nowLocked(),
		},
		content: content,
	}
	b.files[id] = rec

	file := rec.file

	return &file, nil
}

// FilePreviewURL derives the preview URL. Like the remote service, it does
// not check that the file exists.
func (b *Backend) FilePreviewURL(fileID string, opts gateway.PreviewOptions) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injectedLocked(OpPreviewURL); err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("width", strconv.Itoa(opts.Width))
	q.Set("height", strconv.Itoa(opts.Height))
	q.Set("gravity", opts.Gravity)
	q.Set("quality", strconv.Itoa(opts.Quality))
	q.Set("project", b.project)

	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/preview?%s",
		b.baseURL, url.PathEscape(b.bucket), url.PathEscape(fileID), q.Encode()), nil
}

// DeleteFile removes a stored file.
func (b *Backend) DeleteFile(_ context.Context, fileID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injectedLocked(OpDeleteFile); err != nil {
		return err
	}
	if _, ok := b.files[fileID]; !ok {
		return notFound("storage_file_not_found", "The requested file could not be found.")
	}
	delete(b.files, fileID)

	return nil
}

// FileIDs lists the stored file ids in sorted order.
func (b *Backend) FileIDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return sortedKeys(b.files)
}

// FileContent returns a reader over a stored file's bytes.
func (b *Backend) FileContent(fileID string) (io.Reader, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rec, ok := b.files[fileID]
	if !ok {
		return nil, false
	}

	return bytes.NewReader(rec.content), true
}
