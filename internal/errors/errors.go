// Package errors combines the stdlib error tree helpers with pkg/errors stack
// traces, so callers import one errors package.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error with a stack trace.
func New(text string) error {
	return pkgerrors.New(text)
}

// Errorf formats an error with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join returns an error wrapping errs. The first non-nil error is reported first.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with a stack trace and message.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf annotates err with a stack trace and a formatted message.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Leaves returns the failures joined anywhere along err's chain, depth first.
// An error whose chain holds no join is its own single leaf.
func Leaves(err error) []error {
	for cur := err; cur != nil; {
		if joined, ok := cur.(interface{ Unwrap() []error }); ok { //nolint:errorlint // walking the chain by hand
			var leaves []error
			for _, child := range joined.Unwrap() {
				leaves = append(leaves, Leaves(child)...)
			}

			return leaves
		}

		wrapper, ok := cur.(interface{ Unwrap() error }) //nolint:errorlint // walking the chain by hand
		if !ok {
			break
		}
		cur = wrapper.Unwrap()
	}

	if err == nil {
		return nil
	}

	return []error{err}
}
