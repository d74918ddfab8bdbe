package generator

import (
	"fmt"
	"math/rand/v2"
)

const (
	// DefaultEncounterCount is the number of encounter draws per run.
	DefaultEncounterCount = 5

	minInteractions = 1
	maxInteractions = 5
)

// DefaultAnimalIDs is the fixed identifier set encounters are drawn from.
var DefaultAnimalIDs = []string{"cat001", "dog001", "cat002", "dog002", "cat003"}

// GenerateEncounters draws count encounters. Each picks two distinct
// identifiers uniformly without replacement and an interaction count in
// [1, 5]. Draws are independent, so the same pair may appear more than once.
func GenerateEncounters(r *rand.Rand, ids []string, count int) ([]EncounterRecord, error) {
	if len(ids) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 animal ids, got %d", ErrInvalidInput, len(ids))
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative encounter count %d", ErrInvalidInput, count)
	}

	encounters := make([]EncounterRecord, 0, count)
	for range count {
		a1, a2 := samplePair(r, len(ids))
		encounters = append(encounters, EncounterRecord{
			Animal1: ids[a1],
			Animal2: ids[a2],
			Count:   uniformInt(r, minInteractions, maxInteractions),
		})
	}
	return encounters, nil
}

// samplePair returns two distinct indexes in [0, n), in random order.
func samplePair(r *rand.Rand, n int) (int, int) {
	i := r.IntN(n)
	j := r.IntN(n - 1)
	if j >= i {
		j++
	}
	return i, j
}
