package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/goodsign/monday"
	"gopkg.in/yaml.v2"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const startTimeLayout = "Monday, 2 January 2006 15:04:05 MST"

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}

	return "", fmt.Errorf("unknown output format '%s'", s)
}

func ParseLocale(s string) (monday.Locale, error) {
	for _, l := range monday.ListLocales() {
		if string(l) == s {
			return l, nil
		}
	}

	return "", fmt.Errorf("unknown locale '%s'", s)
}

// Writer renders entries in one of the output formats.
type Writer struct {
	out    io.Writer
	format Format
	locale monday.Locale
}

func NewWriter(out io.Writer, format Format, locale monday.Locale) *Writer {
	return &Writer{out: out, format: format, locale: locale}
}

func (w *Writer) Write(entries []Entry) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(records(entries))

	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		if err := enc.Encode(records(entries)); err != nil {
			return err
		}
		return enc.Close()

	default:
		for _, e := range entries {
			if err := w.writeText(e); err != nil {
				return err
			}
		}
		return nil
	}
}

func records(entries []Entry) []Record {
	recs := make([]Record, 0, len(entries))
	for _, e := range entries {
		recs = append(recs, NewRecord(e))
	}
	return recs
}

func (w *Writer) writeText(e Entry) (err error) {
	printf := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w.out, format, args...)
		}
	}

	printf("== %s ==\n", e.Path)

	if e.Err != nil {
		printf("error: %s\n\n", e.Err)
		return
	}

	m := e.Metrics
	printf("Total Distance (meters): %.2f (%s)\n", m.Distance(), m.DistanceSource())
	printf("Min Elevation (meters): %.2f\n", m.MinElevation())
	printf("Max Elevation (meters): %.2f\n", m.MaxElevation())
	printf("Duration (seconds): %s\n", strconv.FormatFloat(m.Duration().Seconds(), 'f', -1, 64))
	printf("Start: %s\n", monday.Format(m.StartTime(), startTimeLayout, w.locale))
	printf("Points: %d\n", m.PointCount())

	if ref := e.Reference; ref != nil {
		printf("gpxgo 3D length (meters): %.2f\n", ref.Length3D)
		printf("gpxgo duration (seconds): %s\n", strconv.FormatFloat(ref.Duration.Seconds(), 'f', -1, 64))
		printf("gpxgo uphill/downhill (meters): %.2f / %.2f\n", ref.Uphill, ref.Downhill)
		printf("gpxgo elevation (meters): %.2f .. %.2f\n", ref.MinElevation, ref.MaxElevation)
		printf("gpxgo points: %d\n", ref.PointCount)
	}

	printf("\n")

	return
}
