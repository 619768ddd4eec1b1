package geotrack

import (
	"fmt"
	"time"
)

// Metrics summarizes a single track file.
type Metrics struct {
	distance       float64
	distanceSource DistanceSource
	minElevation   float64
	maxElevation   float64
	start, end     time.Time
	pointCount     int
}

// Distance is the total 3D distance in meters.
func (m *Metrics) Distance() float64 { return m.distance }

func (m *Metrics) DistanceSource() DistanceSource { return m.distanceSource }

// MinElevation is the lowest elevation in meters.
func (m *Metrics) MinElevation() float64 { return m.minElevation }

// MaxElevation is the highest elevation in meters.
func (m *Metrics) MaxElevation() float64 { return m.maxElevation }

// Duration spans the earliest to the latest timestamp, regardless of point order.
func (m *Metrics) Duration() time.Duration { return m.end.Sub(m.start) }

// StartTime is the earliest timestamp of the track.
func (m *Metrics) StartTime() time.Time { return m.start }

// EndTime is the latest timestamp of the track.
func (m *Metrics) EndTime() time.Time { return m.end }

func (m *Metrics) PointCount() int { return m.pointCount }

// computeMetrics derives the summary of points. A distance given in the document's
// <exerciseinfo> replaces the pairwise accumulation.
func computeMetrics(points []trackPoint, root *element) (*Metrics, error) {
	if len(points) == 0 {
		return nil, ErrEmptyTrack
	}

	m := &Metrics{
		minElevation: points[0].ele,
		maxElevation: points[0].ele,
		start:        points[0].time,
		end:          points[0].time,
		pointCount:   len(points),
	}

	for _, p := range points[1:] {
		if p.ele < m.minElevation {
			m.minElevation = p.ele
		}
		if p.ele > m.maxElevation {
			m.maxElevation = p.ele
		}
		if p.time.Before(m.start) {
			m.start = p.time
		}
		if p.time.After(m.end) {
			m.end = p.time
		}
	}

	distance, ok, err := documentDistance(root)
	if err != nil {
		return nil, err
	}

	if ok {
		m.distance = distance
		m.distanceSource = DistanceDocument
	} else {
		m.distance = pathDistance(points)
		m.distanceSource = DistanceComputed
	}

	return m, nil
}

// documentDistance reads <exerciseinfo><distance> below the root. The element is reported
// as absent only if <exerciseinfo> is missing.
func documentDistance(root *element) (float64, bool, error) {
	info := root.child(gpxName("exerciseinfo"))
	if info == nil {
		return 0, false, nil
	}

	distance := info.child(gpxName("distance"))
	if distance == nil {
		return 0, false, fmt.Errorf("%w: <exerciseinfo> without <distance>", ErrUnexpected)
	}

	v, err := parseFinite(distance.textContent())
	if err != nil {
		return 0, false, fmt.Errorf("%w: <exerciseinfo><distance>: %w", ErrUnexpected, err)
	}

	return v, true, nil
}
