package cli

import (
	"bufio"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	domainerrors "snapgram/internal/domain/errors"
	"snapgram/internal/usecase"
)

// sniffLen is how many bytes http.DetectContentType looks at.
const sniffLen = 512

// openImage opens path for upload. The mime type comes from the extension,
// or from the leading bytes when the extension is unknown.
func openImage(path string) (usecase.File, func(), error) {
	f, err := os.Open(path) //nolint:gosec // path is given by the user on purpose
	if err != nil {
		return usecase.File{}, nil, domainerrors.ErrValidationFailed.WithDetails("cannot open image").WithCause(err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()

		return usecase.File{}, nil, domainerrors.ErrValidationFailed.WithDetails("cannot stat image").WithCause(err)
	}

	reader := bufio.NewReaderSize(f, sniffLen)
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		head, _ := reader.Peek(sniffLen)
		mimeType = http.DetectContentType(head)
	}

	file := usecase.File{
		Name:     filepath.Base(path),
		MimeType: mimeType,
		Size:     info.Size(),
		Content:  reader,
	}

	return file, func() { _ = f.Close() }, nil
}
