package geotrack

import (
	"errors"
	"strings"
	"testing"
)

func TestParseDocumentTree(t *testing.T) {
	root, err := parseDocument(strings.NewReader(`<gpx xmlns="http://www.topografix.com/GPX/1/1">
  <trk><trkseg><trkpt lat="1" lon="2"><ele> 12.5 </ele></trkpt></trkseg></trk>
  <wpt lat="3" lon="4"/>
</gpx>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if root.name.Local != "gpx" || root.name.Space != gpxNamespace {
		t.Fatalf("unexpected root %v", root.name)
	}

	trkpts := root.descendants(gpxName("trkpt"))
	if len(trkpts) != 1 {
		t.Fatalf("got %d trkpt, want 1", len(trkpts))
	}

	if lat, ok := trkpts[0].attr("lat"); !ok || lat != "1" {
		t.Fatalf("lat = %q, %v", lat, ok)
	}
	if _, ok := trkpts[0].attr("ele"); ok {
		t.Fatalf("child element reported as attribute")
	}

	ele := root.path(gpxName("trk"), gpxName("trkseg"), gpxName("trkpt"), gpxName("ele"))
	if ele == nil || ele.textContent() != "12.5" {
		t.Fatalf("path lookup failed: %v", ele)
	}

	if root.path(gpxName("trk"), gpxName("missing")) != nil {
		t.Fatalf("expected nil for missing path step")
	}
}

func TestParseDocumentForeignNamespace(t *testing.T) {
	root, err := parseDocument(strings.NewReader(`<gpx xmlns="http://www.topografix.com/GPX/1/0"><trkpt/></gpx>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if n := len(root.descendants(gpxName("trkpt"))); n != 0 {
		t.Fatalf("matched %d elements of a foreign namespace", n)
	}
}

func TestParseDocumentLatin1(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n<gpx><name>M\xfcnchen</name></gpx>"

	root, err := parseDocument(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	name := root.child(gpxName("name"))
	if name == nil || name.textContent() != "München" {
		t.Fatalf("unexpected name %v", name)
	}
}

func TestParseDocumentSurroundingWhitespace(t *testing.T) {
	if _, err := parseDocument(strings.NewReader("\n  <gpx></gpx>\n\n")); err != nil {
		t.Fatalf("parse: %v", err)
	}
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unclosed tag", `<gpx><trk><trkseg>`},
		{"mismatched tag", `<gpx><trk></trkseg></gpx>`},
		{"empty input", ``},
		{"only whitespace", "  \n "},
		{"two roots", `<gpx></gpx><gpx></gpx>`},
		{"not xml", `{"lat": 1}`},
		{"text after root", `<gpx><trkpt lat="0" lon="0"><ele>1</ele></trkpt></gpx>junk`},
		{"text before root", `junk<gpx></gpx>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDocument(strings.NewReader(tt.doc))
			if !errors.Is(err, ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
		})
	}
}
