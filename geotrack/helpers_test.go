package geotrack

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var t0 = time.Date(2025, 1, 3, 8, 0, 0, 0, time.UTC)

type fixturePoint struct {
	lat, lon, ele float64
	time          time.Time
	hr            string
}

// gpxDocument renders a GPX 1.1 document with a single track segment. extra is inserted
// after the track.
func gpxDocument(points []fixturePoint, extra string) string {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test"
  xmlns="http://www.topografix.com/GPX/1/1"
  xmlns:gpxtpx="http://www.garmin.com/xmlschemas/TrackPointExtension/v1">
  <trk><trkseg>
`)
	for _, p := range points {
		fmt.Fprintf(&b, `    <trkpt lat="%g" lon="%g">
      <ele>%g</ele>
      <time>%s</time>
`, p.lat, p.lon, p.ele, p.time.Format(time.RFC3339))
		if p.hr != "" {
			fmt.Fprintf(&b, `      <extensions>
        <gpxtpx:TrackPointExtension><gpxtpx:hr>%s</gpxtpx:hr></gpxtpx:TrackPointExtension>
      </extensions>
`, p.hr)
		}
		b.WriteString("    </trkpt>\n")
	}
	b.WriteString("  </trkseg></trk>\n")
	b.WriteString(extra)
	b.WriteString("</gpx>\n")

	return b.String()
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o666); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	return p
}

func equatorTrack() []fixturePoint {
	return []fixturePoint{
		{lat: 0, lon: 0, ele: 0, time: t0},
		{lat: 0, lon: 0.001, ele: 0, time: t0.Add(time.Second)},
		{lat: 0, lon: 0.002, ele: 0, time: t0.Add(2 * time.Second)},
	}
}
