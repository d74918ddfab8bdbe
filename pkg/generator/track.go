package generator

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	// MinTrackPoints is the shortest time series that leaves room for a rest
	// window clear of the first 5 and last 10 points.
	MinTrackPoints = 18

	restStartMin = 5
	restTailGap  = 10
	restLenMin   = 3
	restLenMax   = 8

	// MaxStep bounds the per-step drift of each coordinate, in degrees.
	MaxStep = 0.0008

	coordScale = 1e6
)

// AnimalSpec describes an animal before its track is generated.
type AnimalSpec struct {
	ID      string
	Species string
	Gender  string
	Age     int
	Start   Position
}

// DefaultAnimals are the five animals released near central London.
var DefaultAnimals = []AnimalSpec{
	{ID: "cat001", Species: "cat", Gender: "female", Age: 2, Start: Position{51.5074, -0.1278}},
	{ID: "dog001", Species: "dog", Gender: "male", Age: 4, Start: Position{51.5060, -0.1300}},
	{ID: "cat002", Species: "cat", Gender: "male", Age: 3, Start: Position{51.5080, -0.1250}},
	{ID: "dog002", Species: "dog", Gender: "female", Age: 5, Start: Position{51.5050, -0.1280}},
	{ID: "cat003", Species: "cat", Gender: "female", Age: 1, Start: Position{51.5090, -0.1260}},
}

// RoundCoord rounds a coordinate to 6 decimal places.
func RoundCoord(v float64) float64 {
	return math.Round(v*coordScale) / coordScale
}

// GenerateAnimal walks spec.Start across times, one point per timestamp.
//
// A single rest window starting in [5, N-10] and lasting 3 to 8 points keeps
// the position fixed. Outside it each coordinate drifts by a uniform offset in
// [-MaxStep, MaxStep]. The running position is rounded to 6 decimals after
// every step and the next step accumulates from the rounded value.
//
// Each rest point repeats the point before it, so the run of identical
// positions spans Length+1 points starting at Rest.Start-1, while the number
// of stationary steps is exactly Rest.Length.
func GenerateAnimal(r *rand.Rand, spec AnimalSpec, times []Timestamp) (AnimalRecord, error) {
	n := len(times)
	if n < MinTrackPoints {
		return AnimalRecord{}, fmt.Errorf("%w: animal %s needs at least %d timestamps, got %d",
			ErrInvalidInput, spec.ID, MinTrackPoints, n)
	}
	if spec.Age < 0 {
		return AnimalRecord{}, fmt.Errorf("%w: animal %s has negative age %d", ErrInvalidInput, spec.ID, spec.Age)
	}

	rest := RestPeriod{
		Start:  uniformInt(r, restStartMin, n-restTailGap),
		Length: uniformInt(r, restLenMin, restLenMax),
	}

	lat, lng := spec.Start.Lat, spec.Start.Lng
	track := make([]TrackPoint, 0, n)
	for i, t := range times {
		if !rest.Contains(i) {
			lat = RoundCoord(lat + uniformFloat(r, -MaxStep, MaxStep))
			lng = RoundCoord(lng + uniformFloat(r, -MaxStep, MaxStep))
		}
		track = append(track, TrackPoint{Time: t, Lat: lat, Lng: lng})
	}

	return AnimalRecord{
		ID:      spec.ID,
		Species: spec.Species,
		Gender:  spec.Gender,
		Age:     spec.Age,
		Track:   track,
		Rest:    rest,
	}, nil
}

// uniformInt returns an int in [lo, hi], both inclusive.
func uniformInt(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

func uniformFloat(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
