package geotrack

import "errors"

// Failure categories of LoadMetrics and ParseMetrics. Every returned error wraps exactly one
// of them, test with errors.Is.
var (
	ErrFileNotFound        = errors.New("track file not found")
	ErrParse               = errors.New("parse GPX document")
	ErrMalformedTrackPoint = errors.New("malformed track point")
	ErrEmptyTrack          = errors.New("track contains no points")
	ErrUnexpected          = errors.New("unexpected error")
)
