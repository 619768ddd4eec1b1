package geotrack

import (
	"fmt"
	"time"

	"github.com/tkrajina/gpxgo/gpx"
)

// Reference holds the metrics gpxgo computes for a track. It only serves as a cross-check
// of Metrics, gpxgo walks tracks and segments only and uses its own earth model.
type Reference struct {
	Length3D     float64
	Duration     time.Duration
	Uphill       float64
	Downhill     float64
	MinElevation float64
	MaxElevation float64
	PointCount   int
}

// LoadReference parses the file with gpxgo and returns its metrics.
func LoadReference(trackFilePath string) (ref Reference, err error) {
	gpxData, err := gpx.ParseFile(trackFilePath)
	if err != nil {
		return ref, fmt.Errorf("read GPX file: %w", err)
	}

	updown := gpxData.UphillDownhill()
	bounds := gpxData.ElevationBounds()

	ref = Reference{
		Length3D:     gpxData.Length3D(),
		Duration:     time.Duration(gpxData.Duration() * float64(time.Second)),
		Uphill:       updown.Uphill,
		Downhill:     updown.Downhill,
		MinElevation: bounds.MinElevation,
		MaxElevation: bounds.MaxElevation,
	}

	for _, track := range gpxData.Tracks {
		for _, segment := range track.Segments {
			ref.PointCount += len(segment.Points)
		}
	}

	return ref, nil
}
