package library

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLink means a share token could not be decoded.
	ErrInvalidLink = errors.New("invalid share link")

	// ErrImportFailed is matched by every *ImportError.
	ErrImportFailed = errors.New("import failed")
)

// ImportError records which import step failed.
type ImportError struct {
	Step string
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrImportFailed, e.Step, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func (e *ImportError) Is(target error) bool {
	return target == ErrImportFailed
}
