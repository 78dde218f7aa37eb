package description

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"route-descriptor/internal/models"
)

// BuildSummary formats the totals of a route. Negative totals are clamped
// to zero so every input has a rendering.
func BuildSummary(startName, destName string, distanceMeters, durationSeconds int) models.RouteSummary {
	distanceMeters = max(distanceMeters, 0)
	durationSeconds = max(durationSeconds, 0)

	return models.RouteSummary{
		StartName:       startName,
		DestName:        destName,
		DistanceMeters:  distanceMeters,
		DurationSeconds: durationSeconds,
		Distance:        strconv.Itoa(distanceMeters),
		Duration:        strconv.Itoa(durationSeconds),
		DistanceText:    FormatDistance(distanceMeters),
		DurationText:    FormatDuration(durationSeconds),
	}
}

// FormatDistance returns a human readable distance, e.g. "1.2 km"
func FormatDistance(meters int) string {
	if meters < 1000 {
		return strconv.Itoa(meters) + " m"
	}
	return humanize.SIWithDigits(float64(meters), 1, "m")
}

// FormatDuration returns a human readable duration, e.g. "1h2m3s"
func FormatDuration(seconds int) string {
	return (time.Duration(seconds) * time.Second).String()
}
