package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pkg.jsn.cam/nightwalkers/pkg/generator"
)

const indent = "  "

// Encode renders v as a 2-space indented JSON document.
func Encode(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile encodes v and replaces path with it atomically. The document is
// written to a temp file in the same directory and renamed over path, so a
// failure never leaves a truncated file behind. Returns the bytes written.
func WriteFile(path string, v any) (int, error) {
	data, err := Encode(v)
	if err != nil {
		return 0, err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("%w: create temp file in %s: %v", ErrIOFailure, dir, err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return 0, fmt.Errorf("%w: write %s: %v", ErrIOFailure, tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		return 0, fmt.Errorf("%w: sync %s: %v", ErrIOFailure, tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("%w: close %s: %v", ErrIOFailure, tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return 0, fmt.Errorf("%w: chmod %s: %v", ErrIOFailure, tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return 0, fmt.Errorf("%w: rename to %s: %v", ErrIOFailure, path, err)
	}
	committed = true

	return len(data), nil
}

// ReadAnimals decodes an animals.json file.
func ReadAnimals(path string) ([]generator.AnimalRecord, error) {
	var animals []generator.AnimalRecord
	if err := readFile(path, &animals); err != nil {
		return nil, err
	}
	return animals, nil
}

// ReadEncounters decodes an encounter.json file.
func ReadEncounters(path string) ([]generator.EncounterRecord, error) {
	var encounters []generator.EncounterRecord
	if err := readFile(path, &encounters); err != nil {
		return nil, err
	}
	return encounters, nil
}

func readFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w %s: %v", ErrDecode, path, err)
	}
	return nil
}
