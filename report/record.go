package report

import (
	"time"

	"github.com/bgraf/trackstat/geotrack"
)

// Entry is the outcome of loading one track file. Exactly one of Metrics and Err is set.
type Entry struct {
	Path      string
	Metrics   *geotrack.Metrics
	Reference *geotrack.Reference
	Err       error
}

// Record is the serialized form of an Entry.
type Record struct {
	Path      string     `json:"path" yaml:"path"`
	Summary   *Summary   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Reference *Reference `json:"reference,omitempty" yaml:"reference,omitempty"`
	Error     string     `json:"error,omitempty" yaml:"error,omitempty"`
}

type Summary struct {
	DistanceMeters     float64 `json:"distanceMeters" yaml:"distance_meters"`
	DistanceSource     string  `json:"distanceSource" yaml:"distance_source"`
	MinElevationMeters float64 `json:"minElevationMeters" yaml:"min_elevation_meters"`
	MaxElevationMeters float64 `json:"maxElevationMeters" yaml:"max_elevation_meters"`
	DurationSeconds    float64 `json:"durationSeconds" yaml:"duration_seconds"`
	Start              string  `json:"start" yaml:"start"`
	End                string  `json:"end" yaml:"end"`
	Points             int     `json:"points" yaml:"points"`
}

// Reference carries the gpxgo cross-check values.
type Reference struct {
	Length3DMeters     float64 `json:"length3dMeters" yaml:"length3d_meters"`
	DurationSeconds    float64 `json:"durationSeconds" yaml:"duration_seconds"`
	UphillMeters       float64 `json:"uphillMeters" yaml:"uphill_meters"`
	DownhillMeters     float64 `json:"downhillMeters" yaml:"downhill_meters"`
	MinElevationMeters float64 `json:"minElevationMeters" yaml:"min_elevation_meters"`
	MaxElevationMeters float64 `json:"maxElevationMeters" yaml:"max_elevation_meters"`
	Points             int     `json:"points" yaml:"points"`
}

func NewRecord(e Entry) Record {
	rec := Record{Path: e.Path}

	if e.Err != nil {
		rec.Error = e.Err.Error()
		return rec
	}

	if m := e.Metrics; m != nil {
		rec.Summary = &Summary{
			DistanceMeters:     m.Distance(),
			DistanceSource:     string(m.DistanceSource()),
			MinElevationMeters: m.MinElevation(),
			MaxElevationMeters: m.MaxElevation(),
			DurationSeconds:    m.Duration().Seconds(),
			Start:              m.StartTime().Format(time.RFC3339),
			End:                m.EndTime().Format(time.RFC3339),
			Points:             m.PointCount(),
		}
	}

	if ref := e.Reference; ref != nil {
		rec.Reference = &Reference{
			Length3DMeters:     ref.Length3D,
			DurationSeconds:    ref.Duration.Seconds(),
			UphillMeters:       ref.Uphill,
			DownhillMeters:     ref.Downhill,
			MinElevationMeters: ref.MinElevation,
			MaxElevationMeters: ref.MaxElevation,
			Points:             ref.PointCount,
		}
	}

	return rec
}
