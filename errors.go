package ssml

import "errors"

// ErrNilDocument is returned when a nil document is passed for encoding.
var ErrNilDocument = errors.New("ssml: nil document")
