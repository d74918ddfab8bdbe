package generator

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean Earth radius.
const EarthRadiusMeters = 6371008.8

// TrackSummary describes a generated track for logging.
type TrackSummary struct {
	Points       int
	Rest         RestPeriod
	LengthMeters float64
	Min          Position
	Max          Position
}

// Summarize computes the great-circle path length and bounding box of a track.
func Summarize(a AnimalRecord) TrackSummary {
	s := TrackSummary{Points: len(a.Track), Rest: a.Rest}
	if len(a.Track) == 0 {
		return s
	}

	s.Min = Position{Lat: math.Inf(1), Lng: math.Inf(1)}
	s.Max = Position{Lat: math.Inf(-1), Lng: math.Inf(-1)}

	var prev s2.LatLng
	for i, p := range a.Track {
		ll := s2.LatLngFromDegrees(p.Lat, p.Lng)
		if i > 0 {
			s.LengthMeters += prev.Distance(ll).Radians() * EarthRadiusMeters
		}
		prev = ll

		s.Min.Lat = math.Min(s.Min.Lat, p.Lat)
		s.Min.Lng = math.Min(s.Min.Lng, p.Lng)
		s.Max.Lat = math.Max(s.Max.Lat, p.Lat)
		s.Max.Lng = math.Max(s.Max.Lng, p.Lng)
	}
	return s
}
