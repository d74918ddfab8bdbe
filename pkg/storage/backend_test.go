package storage

import (
	"bytes"
	"errors"
	"testing"
)

// backendTestSuite runs the same checks against any Backend implementation
func backendTestSuite(t *testing.T, newBackend func() (Backend, func(), error)) {
	open := func(t *testing.T) Backend {
		t.Helper()
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		t.Cleanup(cleanup)
		return backend
	}

	t.Run("CreateBucket", func(t *testing.T) {
		backend := open(t)

		if err := backend.CreateBucket([]byte("runs")); err != nil {
			t.Fatalf("CreateBucket failed: %v", err)
		}

		exists, err := backend.BucketExists([]byte("runs"))
		if err != nil {
			t.Fatalf("BucketExists failed: %v", err)
		}
		if !exists {
			t.Error("Bucket should exist after creation")
		}

		// Idempotent
		if err := backend.CreateBucket([]byte("runs")); err != nil {
			t.Errorf("CreateBucket should be idempotent: %v", err)
		}
	})

	t.Run("PutAndGet", func(t *testing.T) {
		backend := open(t)
		backend.CreateBucket([]byte("runs"))

		value := []byte(`{"seed":42}`)
		if err := backend.Put([]byte("runs"), []byte("run-1"), value); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, err := backend.Get([]byte("runs"), []byte("run-1"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, value) {
			t.Errorf("Get returned %s, want %s", got, value)
		}

		got, err = backend.Get([]byte("runs"), []byte("missing"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != nil {
			t.Errorf("Get should return nil for non-existent key, got %s", got)
		}
	})

	t.Run("GetReturnsCopy", func(t *testing.T) {
		backend := open(t)
		backend.CreateBucket([]byte("runs"))
		backend.Put([]byte("runs"), []byte("k"), []byte("abc"))

		got, _ := backend.Get([]byte("runs"), []byte("k"))
		got[0] = 'x'

		again, _ := backend.Get([]byte("runs"), []byte("k"))
		if string(again) != "abc" {
			t.Errorf("stored value mutated through Get result: %s", again)
		}
	})

	t.Run("MissingBucket", func(t *testing.T) {
		backend := open(t)

		if err := backend.Put([]byte("nope"), []byte("k"), []byte("v")); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("Put error = %v, want ErrBucketNotFound", err)
		}
		if _, err := backend.Get([]byte("nope"), []byte("k")); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("Get error = %v, want ErrBucketNotFound", err)
		}
		err := backend.ForEach([]byte("nope"), func(k, v []byte) error { return nil })
		if !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("ForEach error = %v, want ErrBucketNotFound", err)
		}
	})

	t.Run("ForEachSorted", func(t *testing.T) {
		backend := open(t)
		backend.CreateBucket([]byte("runs"))

		for _, k := range []string{"c", "a", "b"} {
			backend.Put([]byte("runs"), []byte(k), []byte(k+"-value"))
		}

		var keys []string
		err := backend.ForEach([]byte("runs"), func(k, v []byte) error {
			if string(v) != string(k)+"-value" {
				t.Errorf("key %s has value %s", k, v)
			}
			keys = append(keys, string(k))
			return nil
		})
		if err != nil {
			t.Fatalf("ForEach failed: %v", err)
		}
		if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
			t.Errorf("ForEach visited %v, want [a b c]", keys)
		}
	})

	t.Run("ForEachStopsOnError", func(t *testing.T) {
		backend := open(t)
		backend.CreateBucket([]byte("runs"))
		backend.Put([]byte("runs"), []byte("a"), []byte("1"))
		backend.Put([]byte("runs"), []byte("b"), []byte("2"))

		stop := errors.New("stop")
		visited := 0
		err := backend.ForEach([]byte("runs"), func(k, v []byte) error {
			visited++
			return stop
		})
		if !errors.Is(err, stop) {
			t.Errorf("ForEach error = %v, want stop", err)
		}
		if visited != 1 {
			t.Errorf("visited %d entries, want 1", visited)
		}
	})
}
