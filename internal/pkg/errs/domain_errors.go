package errs

import "errors"

// Error kinds. Every domain and usecase sentinel is marked with exactly one of
// these so the HTTP boundary can map it to a status code.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// NewKind builds a sentinel error carrying the given kind mark.
func NewKind(msg string, kind error) error {
	return Mark(New(msg), kind)
}

func IsInvalidInput(err error) bool { return Is(err, ErrInvalidInput) }
func IsNotFound(err error) bool     { return Is(err, ErrNotFound) }
func IsConflict(err error) bool     { return Is(err, ErrConflict) }
