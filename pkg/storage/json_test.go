package storage

import (
	"encoding/json"
	"testing"
)

type testRun struct {
	Seed  uint64 `json:"seed"`
	Files int    `json:"files"`
}

func TestJSONStore(t *testing.T) {
	t.Run("PutAndGetJSON", func(t *testing.T) {
		store := NewJSONStore(NewMemoryBackend())
		defer store.Close()

		if err := store.CreateBucket([]byte("runs")); err != nil {
			t.Fatalf("CreateBucket failed: %v", err)
		}

		original := testRun{Seed: 42, Files: 2}
		if err := store.PutJSON([]byte("runs"), []byte("r1"), original); err != nil {
			t.Fatalf("PutJSON failed: %v", err)
		}

		var got testRun
		found, err := store.GetJSON([]byte("runs"), []byte("r1"), &got)
		if err != nil {
			t.Fatalf("GetJSON failed: %v", err)
		}
		if !found {
			t.Fatal("GetJSON reported missing key")
		}
		if got != original {
			t.Errorf("Got %+v, want %+v", got, original)
		}
	})

	t.Run("BucketExists", func(t *testing.T) {
		store := NewJSONStore(NewMemoryBackend())
		defer store.Close()

		exists, err := store.BucketExists([]byte("runs"))
		if err != nil || exists {
			t.Fatalf("BucketExists before create = %v, %v; want false, nil", exists, err)
		}
		store.CreateBucket([]byte("runs"))
		exists, err = store.BucketExists([]byte("runs"))
		if err != nil || !exists {
			t.Errorf("BucketExists after create = %v, %v; want true, nil", exists, err)
		}
	})

	t.Run("GetJSONNonExistent", func(t *testing.T) {
		store := NewJSONStore(NewMemoryBackend())
		defer store.Close()
		store.CreateBucket([]byte("runs"))

		var got testRun
		found, err := store.GetJSON([]byte("runs"), []byte("nonexistent"), &got)
		if err != nil {
			t.Errorf("GetJSON should not error for non-existent key: %v", err)
		}
		if found {
			t.Error("GetJSON reported a missing key as found")
		}
		if got != (testRun{}) {
			t.Errorf("Got %+v, want zero value", got)
		}
	})

	t.Run("GetJSONInvalidData", func(t *testing.T) {
		backend := NewMemoryBackend()
		store := NewJSONStore(backend)
		defer store.Close()
		store.CreateBucket([]byte("runs"))
		backend.Put([]byte("runs"), []byte("bad"), []byte("not json"))

		var got testRun
		if _, err := store.GetJSON([]byte("runs"), []byte("bad"), &got); err == nil {
			t.Error("GetJSON should fail for invalid JSON")
		}
	})

	t.Run("ForEachJSON", func(t *testing.T) {
		store := NewJSONStore(NewMemoryBackend())
		defer store.Close()
		store.CreateBucket([]byte("runs"))

		store.PutJSON([]byte("runs"), []byte("a"), testRun{Seed: 1})
		store.PutJSON([]byte("runs"), []byte("b"), testRun{Seed: 2})

		var seeds []uint64
		err := store.ForEachJSON([]byte("runs"), func(k []byte, raw json.RawMessage) error {
			var r testRun
			if err := json.Unmarshal(raw, &r); err != nil {
				return err
			}
			seeds = append(seeds, r.Seed)
			return nil
		})
		if err != nil {
			t.Fatalf("ForEachJSON failed: %v", err)
		}
		if len(seeds) != 2 || seeds[0] != 1 || seeds[1] != 2 {
			t.Errorf("seeds = %v, want [1 2]", seeds)
		}
	})
}
