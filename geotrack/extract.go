package geotrack

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bgraf/trackstat/option"
)

// Accepted timestamp layouts, tried in order. Timestamps without zone are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// extractTrackPoints returns one point per <trkpt> at any depth below root, in document order.
func extractTrackPoints(root *element) ([]trackPoint, error) {
	var points []trackPoint

	for i, trkpt := range root.descendants(gpxName("trkpt")) {
		p, err := readTrackPoint(trkpt)
		if err != nil {
			return nil, fmt.Errorf("%w: point %d: %w", ErrMalformedTrackPoint, i, err)
		}
		points = append(points, p)
	}

	return points, nil
}

func readTrackPoint(trkpt *element) (p trackPoint, err error) {
	p.lat, err = floatAttr(trkpt, "lat", -90, 90)
	if err != nil {
		return
	}

	p.lon, err = floatAttr(trkpt, "lon", -180, 180)
	if err != nil {
		return
	}

	ele := trkpt.child(gpxName("ele"))
	if ele == nil {
		return p, fmt.Errorf("missing <ele>")
	}
	p.ele, err = parseFinite(ele.textContent())
	if err != nil {
		return p, fmt.Errorf("<ele>: %w", err)
	}

	ts := trkpt.child(gpxName("time"))
	if ts == nil {
		return p, fmt.Errorf("missing <time>")
	}
	p.time, err = parseTime(ts.textContent())
	if err != nil {
		return p, fmt.Errorf("<time>: %w", err)
	}

	p.heartRate = readHeartRate(trkpt)

	return p, nil
}

func floatAttr(e *element, name string, min, max float64) (float64, error) {
	s, ok := e.attr(name)
	if !ok {
		return 0, fmt.Errorf("missing attribute '%s'", name)
	}

	v, err := parseFinite(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("attribute '%s': %w", name, err)
	}

	if v < min || v > max {
		return 0, fmt.Errorf("attribute '%s' out of range [%g, %g]: %g", name, min, max, v)
	}

	return v, nil
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: '%s'", s)
	}
	return v, nil
}

func parseTime(s string) (t time.Time, err error) {
	for _, layout := range timeLayouts {
		t, err = time.Parse(layout, s)
		if err == nil {
			return
		}
	}

	return t, fmt.Errorf("not an ISO-8601 timestamp: '%s'", s)
}

// readHeartRate looks up <extensions>/<gpxtpx:TrackPointExtension>/<gpxtpx:hr>. Any missing
// step yields none.
func readHeartRate(trkpt *element) option.Option[string] {
	hr := trkpt.path(
		gpxName("extensions"),
		gpxtpxName("TrackPointExtension"),
		gpxtpxName("hr"),
	)
	if hr == nil {
		return option.None[string]()
	}

	return option.Some(hr.textContent())
}
