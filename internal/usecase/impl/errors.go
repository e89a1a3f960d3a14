package impl

import (
	domainerrors "snapgram/internal/domain/errors"
	"snapgram/internal/domain/gateway"
	"snapgram/internal/errors"
)

// remoteFailure classifies a gateway failure that needs no compensation.
// Rejected credentials or sessions become Auth; everything else is Remote.
func remoteFailure(err error) error {
	if gateway.IsUnauthorized(err) {
		return domainerrors.ErrAuth.WithCause(err)
	}

	return domainerrors.ErrRemote.WithCause(err)
}

// lookupFailure is remoteFailure with 404 reported as NotFound.
func lookupFailure(err error) error {
	if gateway.IsNotFound(err) {
		return domainerrors.ErrNotFound.WithCause(err)
	}

	return remoteFailure(err)
}

// writeFailure classifies a failed write to an existing document: 404 is
// NotFound, anything else is Persist.
func writeFailure(err error) error {
	if gateway.IsNotFound(err) {
		return domainerrors.ErrNotFound.WithCause(err)
	}

	return domainerrors.ErrPersist.WithCause(err)
}

// decodeFailure reports a backend document that does not match its fixed shape.
func decodeFailure(err error) error {
	return domainerrors.ErrIntegrityViolation.WithCause(err)
}

// joinFailures keeps primary first so its kind wins, and keeps secondary reachable.
func joinFailures(primary, secondary error) error {
	if secondary == nil {
		return primary
	}

	return errors.Join(primary, secondary)
}
