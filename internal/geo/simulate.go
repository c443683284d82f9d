package geo

import (
	"hash/fnv"
	"math"
	"strings"

	"github.com/nurpe/contract-manager/internal/model"
)

const simulatedSpeedKmh = 70.0

// Simulate produces a stable one-way estimate for an address pair. The same
// pair always yields the same figures.
func Simulate(origin, destination string) model.DistanceResult {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(origin))))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(destination))))

	km := 15 + float64(h.Sum64()%28500)/100
	minutes := math.Round(km / simulatedSpeedKmh * 60)
	return model.DistanceResult{
		DistanceText:    formatDistance(km),
		DistanceKm:      km,
		DurationText:    formatDuration(minutes),
		DurationMinutes: minutes,
		Source:          model.DataSourceSimulated,
	}
}
