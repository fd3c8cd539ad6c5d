// errors.go defines sentinel errors for parameter validation failures.
//
// Separated to centralise error definitions. These errors are used with
// errors.Is() for type-safe error checking. Each error represents a
// distinct validation failure category; the validators wrap them with
// fmt.Errorf to add the offending value.
//
// Every one of these is a preflight failure: the CLI driver converts any
// returned error into a diagnostic plus a non-zero exit before the
// generation pipeline runs.

package params

import "errors"

var (
	ErrUnknownParam     = errors.New("unknown parameter")
	ErrInvalidPath      = errors.New("invalid path")
	ErrInvalidImage     = errors.New("invalid image")
	ErrUnknownMode      = errors.New("unknown mode")
	ErrUnknownGenerator = errors.New("unknown generator")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrInvalidPadding   = errors.New("invalid padding")
	ErrInvalidColour    = errors.New("invalid colour")
	ErrMissingOutput    = errors.New("output is required")
)
