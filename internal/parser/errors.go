package parser

import "errors"

// ErrInvalidDocument is returned when the top-level document (or one of its
// entity entries) has a shape the raw model cannot represent. Callers should
// use [errors.Is] to match against it.
var ErrInvalidDocument = errors.New("backend configuration must be a mapping or a sequence of entities")
