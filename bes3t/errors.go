package bes3t

import "errors"

// Common errors. Fatal conditions wrap one of these so callers can test the
// error kind with errors.Is.
var (
	ErrNotFound    = errors.New("file not found")
	ErrFormat      = errors.New("invalid format")
	ErrIO          = errors.New("read failed")
	ErrUnsupported = errors.New("unsupported feature")
)
