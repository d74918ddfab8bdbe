package generator

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
)

// TimeLayout is the naive local date-time layout used for every timestamp,
// second precision, no zone.
const TimeLayout = "2006-01-02T15:04:05"

// Timestamp is a naive date-time serialized as YYYY-MM-DDTHH:MM:SS.
type Timestamp struct {
	time.Time
}

func (t Timestamp) String() string {
	return t.Format(TimeLayout)
}

func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.Format(TimeLayout)), nil
}

// MarshalJSON overrides the RFC 3339 encoding promoted from time.Time.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	text, err := t.MarshalText()
	if err != nil {
		return nil, err
	}
	return strconv.AppendQuote(nil, string(text)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", b, err)
	}
	return t.UnmarshalText([]byte(s))
}

func (t *Timestamp) UnmarshalText(b []byte) error {
	parsed, err := time.Parse(TimeLayout, string(b))
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", b, err)
	}
	t.Time = parsed
	return nil
}

// ParseTimestamp parses a YYYY-MM-DDTHH:MM:SS string.
func ParseTimestamp(s string) (Timestamp, error) {
	var t Timestamp
	err := t.UnmarshalText([]byte(s))
	return t, err
}

// Position is a latitude/longitude pair in degrees.
type Position struct {
	Lat float64
	Lng float64
}

// TrackPoint is one timestamped position. Lat/Lng are flattened in the JSON
// form to match the published animals.json layout.
type TrackPoint struct {
	Time Timestamp `json:"time"`
	Lat  float64   `json:"lat"`
	Lng  float64   `json:"lng"`
}

// Position returns the point's coordinates.
func (p TrackPoint) Position() Position {
	return Position{Lat: p.Lat, Lng: p.Lng}
}

// RestPeriod is the window of track indexes [Start, Start+Length) during which
// the animal did not move. It is not serialized.
type RestPeriod struct {
	Start  int
	Length int
}

// Contains reports whether track index i falls inside the rest window.
func (r RestPeriod) Contains(i int) bool {
	return i >= r.Start && i < r.Start+r.Length
}

// AnimalRecord is one tracked animal and its chronological track.
type AnimalRecord struct {
	ID      string       `json:"id"`
	Species string       `json:"species"`
	Gender  string       `json:"gender"`
	Age     int          `json:"age"`
	Track   []TrackPoint `json:"track"`

	Rest RestPeriod `json:"-"`
}

// EncounterRecord counts interactions between two distinct animals.
type EncounterRecord struct {
	Animal1 string `json:"animal1"`
	Animal2 string `json:"animal2"`
	Count   int    `json:"count"`
}

// Dataset produces one output document for the CLI
type Dataset interface {
	// Init sets the per-run random source. Must be called before Generate.
	Init(r *rand.Rand)

	// Generate builds the full in-memory document
	Generate() (any, error)

	// Description returns a human-readable description of the data
	Description() string

	// DefaultFile returns the file name the document is written to
	DefaultFile() string
}
