package generator

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"
)

// Registry maps dataset names to factories.
// Factories rather than instances so flags can re-parameterize an entry.
var Registry = map[string]func() Dataset{
	"animals":   func() Dataset { return NewAnimalDataset() },
	"encounter": func() Dataset { return NewEncounterDataset(DefaultEncounterCount) },
}

// Get returns a fresh dataset by name
func Get(name string) (Dataset, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, name)
	}
	return factory(), nil
}

// List returns all registered dataset names, sorted
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetEncounterCount changes the number of draws made by the encounter dataset
func SetEncounterCount(count int) {
	Registry["encounter"] = func() Dataset { return NewEncounterDataset(count) }
}

// AnimalDataset generates one AnimalRecord per spec over a shared time series.
type AnimalDataset struct {
	Animals  []AnimalSpec
	Start    Timestamp
	End      Timestamp
	Interval time.Duration

	rand *rand.Rand
}

func NewAnimalDataset() *AnimalDataset {
	return &AnimalDataset{
		Animals:  DefaultAnimals,
		Start:    DefaultStart,
		End:      DefaultEnd,
		Interval: DefaultInterval,
	}
}

func (d *AnimalDataset) Init(r *rand.Rand) {
	d.rand = r
}

func (d *AnimalDataset) Generate() (any, error) {
	return d.Records()
}

// Records is Generate with a concrete return type.
func (d *AnimalDataset) Records() ([]AnimalRecord, error) {
	times, err := TimeSeries(d.Start, d.End, d.Interval)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(d.Animals))
	records := make([]AnimalRecord, 0, len(d.Animals))
	for _, spec := range d.Animals {
		if seen[spec.ID] {
			return nil, fmt.Errorf("%w: duplicate animal id %s", ErrInvalidInput, spec.ID)
		}
		seen[spec.ID] = true

		rec, err := GenerateAnimal(d.rand, spec, times)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (d *AnimalDataset) Description() string {
	return "Animal GPS tracks: id, species, gender, age, track[time, lat, lng]"
}

func (d *AnimalDataset) DefaultFile() string {
	return "animals.json"
}

// EncounterDataset draws pairwise encounter counts from a fixed id set.
type EncounterDataset struct {
	IDs   []string
	Count int

	rand *rand.Rand
}

func NewEncounterDataset(count int) *EncounterDataset {
	return &EncounterDataset{IDs: DefaultAnimalIDs, Count: count}
}

func (d *EncounterDataset) Init(r *rand.Rand) {
	d.rand = r
}

func (d *EncounterDataset) Generate() (any, error) {
	return GenerateEncounters(d.rand, d.IDs, d.Count)
}

func (d *EncounterDataset) Description() string {
	return "Encounter counts: animal1, animal2, count"
}

func (d *EncounterDataset) DefaultFile() string {
	return "encounter.json"
}
