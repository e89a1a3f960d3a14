package impl

import (
	domainerrors "snapgram/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals
var inputValidator = validator.New(validator.WithRequiredStructEnabled())

// validateInput rejects malformed input before any remote call.
func validateInput(input any) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("missing input")
	}
	if err := inputValidator.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WithCause(err)
	}

	return nil
}
