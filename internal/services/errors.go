package services

import "errors"

// Error kinds surfaced to handlers. Wrap them with fmt.Errorf("%w: ...") and
// test with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrExtraction = errors.New("extraction error")
)
