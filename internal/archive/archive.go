package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"pkg.jsn.cam/nightwalkers/pkg/dataset"
	"pkg.jsn.cam/nightwalkers/pkg/storage"
)

var (
	ErrRunNotFound     = errors.New("run not found")
	ErrIncompatibleRun = errors.New("incompatible run format")
)

var bucketRuns = []byte("runs")

// Run is one generator invocation: its seed and every document it produced,
// keyed by dataset name.
type Run struct {
	ID            uuid.UUID                  `json:"id"`
	Seed          uint64                     `json:"seed"`
	CreatedAt     time.Time                  `json:"created_at"`
	FormatVersion string                     `json:"format_version"`
	Datasets      map[string]json.RawMessage `json:"datasets"`
}

// NewRun starts an empty run stamped with the current format version.
func NewRun(seed uint64) *Run {
	return &Run{
		ID:            uuid.New(),
		Seed:          seed,
		CreatedAt:     time.Now().UTC(),
		FormatVersion: dataset.FormatVersion,
		Datasets:      make(map[string]json.RawMessage),
	}
}

// Add stores the JSON form of one generated document.
func (r *Run) Add(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode dataset %s: %w", name, err)
	}
	r.Datasets[name] = data
	return nil
}

// Archive keeps a history of generator runs in a storage backend
type Archive struct {
	store *storage.JSONStore
}

// New wraps an existing backend
func New(backend storage.Backend) (*Archive, error) {
	store := storage.NewJSONStore(backend)
	exists, err := store.BucketExists(bucketRuns)
	if err != nil {
		return nil, fmt.Errorf("failed to check runs bucket: %w", err)
	}
	if !exists {
		log.Printf("[ARCHIVE] Initializing empty run archive")
	}
	if err := store.CreateBucket(bucketRuns); err != nil {
		return nil, fmt.Errorf("failed to create runs bucket: %w", err)
	}
	return &Archive{store: store}, nil
}

// Open opens a bbolt-backed archive at path
func Open(path string) (*Archive, error) {
	backend, err := storage.NewBboltBackend(path)
	if err != nil {
		return nil, err
	}
	a, err := New(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	log.Printf("[ARCHIVE] Opened run archive at %s", path)
	return a, nil
}

func (a *Archive) Close() error {
	return a.store.Close()
}

// Save records a run, replacing any run with the same ID
func (a *Archive) Save(run *Run) error {
	if err := a.store.PutJSON(bucketRuns, []byte(run.ID.String()), run); err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.ID, err)
	}
	log.Printf("[ARCHIVE] Saved run %s (seed %d, %d datasets)", run.ID, run.Seed, len(run.Datasets))
	return nil
}

// Load returns the run with the given ID
func (a *Archive) Load(id uuid.UUID) (*Run, error) {
	var run Run
	found, err := a.store.GetJSON(bucketRuns, []byte(id.String()), &run)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	ok, err := dataset.IsCompatible(run.FormatVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: run %s: %v", ErrIncompatibleRun, id, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: run %s has format %s, this build reads %s",
			ErrIncompatibleRun, id, run.FormatVersion, dataset.FormatVersion)
	}
	return &run, nil
}

// List returns every stored run, oldest first
func (a *Archive) List() ([]*Run, error) {
	var runs []*Run
	err := a.store.ForEachJSON(bucketRuns, func(k []byte, raw json.RawMessage) error {
		var run Run
		if err := json.Unmarshal(raw, &run); err != nil {
			log.Printf("[ARCHIVE] Warning: Failed to decode run %s: %v", k, err)
			return nil
		}
		runs = append(runs, &run)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.Before(runs[j].CreatedAt)
	})
	return runs, nil
}
