package geotrack

import (
	"time"

	"github.com/bgraf/trackstat/option"
)

// trackPoint is one <trkpt> of a document.
type trackPoint struct {
	lat, lon  float64
	ele       float64
	time      time.Time
	heartRate option.Option[string]
}

// DistanceSource tells where Metrics.Distance came from.
type DistanceSource string

const (
	// DistanceComputed is the sum of pairwise point distances.
	DistanceComputed DistanceSource = "computed"
	// DistanceDocument is the value of <exerciseinfo><distance>.
	DistanceDocument DistanceSource = "document"
)
