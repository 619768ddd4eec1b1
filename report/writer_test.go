package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bgraf/trackstat/geotrack"
	"github.com/goodsign/monday"
)

const testTrack = `<gpx xmlns="http://www.topografix.com/GPX/1/1"><trk><trkseg>
  <trkpt lat="0" lon="0"><ele>10</ele><time>2025-01-03T08:00:00Z</time></trkpt>
  <trkpt lat="0" lon="0.001"><ele>20</ele><time>2025-01-03T08:00:01Z</time></trkpt>
  <trkpt lat="0" lon="0.002"><ele>15</ele><time>2025-01-03T08:00:02Z</time></trkpt>
</trkseg></trk></gpx>`

func testEntries(t *testing.T) []Entry {
	t.Helper()

	m, err := geotrack.ParseMetrics(strings.NewReader(testTrack))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	return []Entry{
		{Path: "good.gpx", Metrics: m},
		{Path: "missing.gpx", Err: fmt.Errorf("%w: missing.gpx", geotrack.ErrFileNotFound)},
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "json", "yaml"} {
		if f, err := ParseFormat(s); err != nil || string(f) != s {
			t.Errorf("ParseFormat(%q) = %q, %v", s, f, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Errorf("expected error for unknown format")
	}
}

func TestParseLocale(t *testing.T) {
	if l, err := ParseLocale("de_DE"); err != nil || l != monday.LocaleDeDE {
		t.Errorf("ParseLocale(de_DE) = %q, %v", l, err)
	}
	if _, err := ParseLocale("xx_YY"); err == nil {
		t.Errorf("expected error for unknown locale")
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, FormatText, monday.LocaleEnUS).Write(testEntries(t)); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"== good.gpx ==",
		"Min Elevation (meters): 10.00",
		"Max Elevation (meters): 20.00",
		"Duration (seconds): 2\n",
		"(computed)",
		"Start: Friday, 3 January 2025 08:00:00 UTC",
		"Points: 3",
		"== missing.gpx ==",
		"error: track file not found: missing.gpx",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestWriteTextLocale(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, FormatText, monday.LocaleDeDE).Write(testEntries(t)[:1]); err != nil {
		t.Fatalf("write: %v", err)
	}

	if out := buf.String(); !strings.Contains(out, "Freitag") || !strings.Contains(out, "Januar") {
		t.Errorf("start time not localized:\n%s", out)
	}
}

func TestWriteTextReference(t *testing.T) {
	entries := testEntries(t)[:1]
	entries[0].Reference = &geotrack.Reference{
		Length3D:     222.5,
		Uphill:       10,
		Downhill:     5,
		MinElevation: 10,
		MaxElevation: 20,
		PointCount:   3,
	}

	var buf bytes.Buffer
	if err := NewWriter(&buf, FormatText, monday.LocaleEnUS).Write(entries); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"gpxgo 3D length (meters): 222.50",
		"gpxgo elevation (meters): 10.00 .. 20.00",
		"gpxgo points: 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := NewWriter(&buf, FormatJSON, monday.LocaleEnUS).Write(entries); err != nil {
		t.Fatalf("write json: %v", err)
	}

	var recs []Record
	if err := json.Unmarshal(buf.Bytes(), &recs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	ref := recs[0].Reference
	if ref == nil || ref.MinElevationMeters != 10 || ref.MaxElevationMeters != 20 || ref.Points != 3 {
		t.Errorf("unexpected reference %+v", ref)
	}

	buf.Reset()
	if err := NewWriter(&buf, FormatYAML, monday.LocaleEnUS).Write(entries); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "max_elevation_meters: 20") {
		t.Errorf("yaml reference lacks bounds:\n%s", out)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, FormatJSON, monday.LocaleEnUS).Write(testEntries(t)); err != nil {
		t.Fatalf("write: %v", err)
	}

	var recs []Record
	if err := json.Unmarshal(buf.Bytes(), &recs); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records", len(recs))
	}

	s := recs[0].Summary
	if s == nil || s.DurationSeconds != 2 || s.Points != 3 || s.Start != "2025-01-03T08:00:00Z" {
		t.Errorf("unexpected summary %+v", s)
	}
	if recs[0].Error != "" || recs[0].Reference != nil {
		t.Errorf("unexpected fields in %+v", recs[0])
	}
	if recs[1].Summary != nil || recs[1].Error == "" {
		t.Errorf("failed entry serialized as %+v", recs[1])
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, FormatYAML, monday.LocaleEnUS).Write(testEntries(t)); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"path: good.gpx", "distance_source: computed", "points: 3", "error: "} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestNewRecordError(t *testing.T) {
	rec := NewRecord(Entry{Path: "x.gpx", Err: errors.New("boom")})
	if rec.Error != "boom" || rec.Summary != nil {
		t.Fatalf("unexpected record %+v", rec)
	}
}
