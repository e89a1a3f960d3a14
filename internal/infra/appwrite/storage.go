package appwrite

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"snapgram/internal/domain/entity"
	"snapgram/internal/domain/gateway"
)

type fileResponse struct {
	ID        string `json:"$id"`
	BucketID  string `json:"bucketId"`
	CreatedAt string `json:"$createdAt"`
	Name      string `json:"name"`
	MimeType  string `json:"mimeType"`
	Size      int64  `json:"sizeOriginal"`
}

func (c *Client) filesPath() string {
	return "/storage/buckets/" + url.PathEscape(c.settings.BucketID) + "/files"
}

func (c *Client) filePath(fileID string) string {
	return c.filesPath() + "/" + url.PathEscape(fileID)
}

// UploadFile uploads a file under id as a multipart form.
func (c *Client) UploadFile(ctx context.Context, id string, upload gateway.FileUpload) (*entity.StoredFile, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}

	mimeType := upload.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	req.SetMultipartFormData(map[string]string{"fileId": id}).
		SetMultipartField("file", upload.Name, mimeType, upload.Body).
		SetResult(&fileResponse{})

	resp, err := c.execute(req, http.MethodPost, c.filesPath())
	if err != nil {
		return nil, err
	}

	out, ok := resp.Result().(*fileResponse)
	if !ok || out.ID == "" {
		return nil, &gateway.RemoteError{
			Code:    resp.StatusCode(),
			Type:    "general_server_error",
			Message: "malformed file in response",
		}
	}

	return &entity.StoredFile{
		ID:        out.ID,
		BucketID:  out.BucketID,
		Name:      out.Name,
		MimeType:  out.MimeType,
		SizeBytes: out.Size,
		CreatedAt: parseTimestamp(out.CreatedAt),
	}, nil
}

// FilePreviewURL derives the preview URL of a stored file without I/O.
func (c *Client) FilePreviewURL(fileID string, opts gateway.PreviewOptions) (string, error) {
	return c.settings.Endpoint + c.filePath(fileID) + "/preview?" + previewQuery(opts, c.settings.ProjectID).Encode(), nil
}

// DeleteFile deletes a stored file.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	_, err := c.call(ctx, http.MethodDelete, c.filePath(fileID), nil, nil)

	return err
}

func previewQuery(opts gateway.PreviewOptions, project string) url.Values {
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
	if project != "" {
		q.Set("project", project)
	}

	return q
}
