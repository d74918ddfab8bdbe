package generator

import "errors"

var (
	// ErrInvalidInput is returned when generator parameters cannot produce a
	// valid dataset (empty time range, track too short, too few identifiers).
	ErrInvalidInput = errors.New("invalid input")

	ErrUnknownDataset = errors.New("unknown dataset")
)
