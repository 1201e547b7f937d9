package offers

import "sort"

// SortMode selects one of the comparison strategies for a result set.
type SortMode string

const (
	SortPriceAsc     SortMode = "price_asc"
	SortPriceDesc    SortMode = "price_desc"
	SortDurationAsc  SortMode = "duration_asc"
	SortDurationDesc SortMode = "duration_desc"
	SortStopsAsc     SortMode = "stops_asc"
)

// Valid reports whether the mode is one of the recognized strategies. Sort
// itself treats anything else as the identity transform; callers holding a
// logger use Valid to warn about it.
func (m SortMode) Valid() bool {
	switch m {
	case SortPriceAsc, SortPriceDesc, SortDurationAsc, SortDurationDesc, SortStopsAsc:
		return true
	}
	return false
}

// Sort returns a new slice ordered by the given mode. Sorting is stable so
// offers with equal keys keep their original relative order and re-renders stay
// reproducible. An unrecognized mode returns the input order unchanged.
func Sort(list []Offer, mode SortMode) []Offer {
	sorted := make([]Offer, len(list))
	copy(sorted, list)

	switch mode {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].TotalAmount() < sorted[j].TotalAmount()
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].TotalAmount() > sorted[j].TotalAmount()
		})
	case SortDurationAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return outboundMinutes(sorted[i]) < outboundMinutes(sorted[j])
		})
	case SortDurationDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return outboundMinutes(sorted[i]) > outboundMinutes(sorted[j])
		})
	case SortStopsAsc:
		// Primary: outbound segment count. Secondary: outbound duration.
		sort.SliceStable(sorted, func(i, j int) bool {
			si, sj := len(sorted[i].Outbound().Segments), len(sorted[j].Outbound().Segments)
			if si != sj {
				return si < sj
			}
			return outboundMinutes(sorted[i]) < outboundMinutes(sorted[j])
		})
	}

	return sorted
}

func outboundMinutes(o Offer) int {
	return ParseDurationMinutes(o.Outbound().Duration)
}
