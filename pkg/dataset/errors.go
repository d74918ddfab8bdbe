package dataset

import "errors"

var (
	// ErrIOFailure wraps any failure to create, write or read a dataset file.
	ErrIOFailure = errors.New("dataset I/O failure")

	ErrDecode         = errors.New("failed to decode dataset")
	ErrInvalidVersion = errors.New("invalid format version")
)
