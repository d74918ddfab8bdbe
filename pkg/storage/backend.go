package storage

import "errors"

// ErrBucketNotFound is returned when an operation names a missing bucket.
var ErrBucketNotFound = errors.New("bucket not found")

// Backend is a bucketed key-value store working on raw bytes.
// Serialization is left to wrappers such as JSONStore.
type Backend interface {
	// CreateBucket is idempotent
	CreateBucket(name []byte) error
	BucketExists(name []byte) (bool, error)

	Put(bucket, key, value []byte) error
	// Get returns nil, nil for a missing key
	Get(bucket, key []byte) ([]byte, error)

	// ForEach visits keys in ascending byte order
	ForEach(bucket []byte, fn func(k, v []byte) error) error

	Close() error
}
