package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// TypeNetwork is the RemoteError type of transport failures where no response arrived.
const TypeNetwork = "network"

// RemoteError is a failure reported by the backend or by the transport reaching it.
type RemoteError struct {
	Code    int    // HTTP-style status; 0 for transport failures.
	Type    string // Backend error type, e.g. "document_not_found".
	Message string
	Err     error // Transport error, if any.
}

// NewNetworkError wraps a transport failure.
func NewNetworkError(err error) *RemoteError {
	return &RemoteError{Type: TypeNetwork, Message: err.Error(), Err: err}
}

func (e *RemoteError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("remote error %d (%s): %s", e.Code, e.Type, e.Message)
	}

	return fmt.Sprintf("remote error %d: %s", e.Code, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// RemoteCode returns the backend status code carried by err, or -1 if err is not a RemoteError.
func RemoteCode(err error) int {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Code
	}

	return -1
}

// IsNotFound reports whether the backend answered 404.
func IsNotFound(err error) bool {
	return RemoteCode(err) == http.StatusNotFound
}

// IsUnauthorized reports whether the backend rejected the credentials or session.
func IsUnauthorized(err error) bool {
	code := RemoteCode(err)

	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// IsConflict reports whether the backend rejected a duplicate id or unique attribute.
func IsConflict(err error) bool {
	return RemoteCode(err) == http.StatusConflict
}
