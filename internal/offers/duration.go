package offers

import (
	"regexp"
	"strconv"
)

var (
	durationHours   = regexp.MustCompile(`(\d+)H`)
	durationMinutes = regexp.MustCompile(`(\d+)M`)
)

// ParseDurationMinutes converts a compact duration string (PT1H, PT2H30M,
// PT45M) into total minutes. A missing component counts as zero, so malformed
// input degrades to 0 rather than erroring; sorting treats such itineraries as
// zero-length, which is the accepted behavior for bad vendor data.
func ParseDurationMinutes(duration string) int {
	minutes := 0
	if m := durationHours.FindStringSubmatch(duration); m != nil {
		h, _ := strconv.Atoi(m[1])
		minutes += h * 60
	}
	if m := durationMinutes.FindStringSubmatch(duration); m != nil {
		mins, _ := strconv.Atoi(m[1])
		minutes += mins
	}
	return minutes
}
