package geotrack

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// LoadMetrics reads the GPX file at trackFilePath and computes its metrics.
func LoadMetrics(trackFilePath string) (*Metrics, error) {
	f, err := openTrackFile(trackFilePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ParseMetrics(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", trackFilePath, err)
	}

	return m, nil
}

// ParseMetrics computes the metrics of the GPX document read from r.
func ParseMetrics(r io.Reader) (*Metrics, error) {
	root, err := parseDocument(r)
	if err != nil {
		return nil, err
	}

	points, err := extractTrackPoints(root)
	if err != nil {
		return nil, err
	}

	return computeMetrics(points, root)
}

func openTrackFile(trackFilePath string) (*os.File, error) {
	fi, err := os.Stat(trackFilePath)
	if err != nil {
		return nil, classifyOpenError(trackFilePath, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: '%s' is not a regular file", ErrFileNotFound, trackFilePath)
	}

	f, err := os.Open(trackFilePath)
	if err != nil {
		return nil, classifyOpenError(trackFilePath, err)
	}

	return f, nil
}

func classifyOpenError(trackFilePath string, err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	return fmt.Errorf("%w: open '%s': %w", ErrUnexpected, trackFilePath, err)
}
