package offers

import (
	"math"
	"slices"
	"sort"
)

// Stop-bucket filter categories.
const (
	StopsDirect  = "0"
	StopsOne     = "1"
	StopsTwoPlus = "2+"
)

// Filters is the ephemeral per-view filter state. Empty Stops or Airlines mean
// "no restriction".
type Filters struct {
	MaxPrice float64  `json:"max_price"`
	Stops    []string `json:"stops,omitempty"`
	Airlines []string `json:"airlines,omitempty"`
}

// NewFilters derives the initial filter state from a loaded result set: the
// price ceiling is the highest observed total rounded up to the next 100, with
// a floor of 1000 so an empty or cheap result set still gets a usable slider
// range.
func NewFilters(list []Offer) Filters {
	highest := 1000.0
	for _, o := range list {
		if p := o.TotalAmount(); p > highest {
			highest = p
		}
	}
	return Filters{MaxPrice: math.Ceil(highest/100) * 100}
}

// Apply reduces the result set to offers passing every active filter. The
// output preserves the input's relative order and the input is never mutated.
func (f Filters) Apply(list []Offer) []Offer {
	filtered := make([]Offer, 0, len(list))

	for _, o := range list {
		if o.TotalAmount() > f.MaxPrice {
			continue
		}

		outbound := o.Outbound()

		if len(f.Stops) > 0 && !matchesStopBucket(outbound.Stops(), f.Stops) {
			continue
		}

		if len(f.Airlines) > 0 {
			carrier := outbound.Segments[0].CarrierCode
			if !slices.Contains(f.Airlines, carrier) {
				continue
			}
		}

		filtered = append(filtered, o)
	}

	return filtered
}

func matchesStopBucket(stops int, buckets []string) bool {
	for _, b := range buckets {
		switch b {
		case StopsDirect:
			if stops == 0 {
				return true
			}
		case StopsOne:
			if stops == 1 {
				return true
			}
		case StopsTwoPlus:
			if stops >= 2 {
				return true
			}
		}
	}
	return false
}

// Airline pairs a carrier code with its display name for the filter sidebar.
type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// AvailableAirlines collects every carrier flying an outbound segment in the
// result set, resolved through the carriers dictionary with the code itself as
// fallback name. Sorted by code so the list is stable across recomputations.
func AvailableAirlines(list []Offer, carriers map[string]string) []Airline {
	seen := make(map[string]struct{})
	airlines := make([]Airline, 0)

	for _, o := range list {
		for _, seg := range o.Outbound().Segments {
			if _, ok := seen[seg.CarrierCode]; ok {
				continue
			}
			seen[seg.CarrierCode] = struct{}{}

			name := carriers[seg.CarrierCode]
			if name == "" {
				name = seg.CarrierCode
			}
			airlines = append(airlines, Airline{Code: seg.CarrierCode, Name: name})
		}
	}

	sort.Slice(airlines, func(i, j int) bool {
		return airlines[i].Code < airlines[j].Code
	})
	return airlines
}

// AveragePrice is the mean total over the current filtered set, 0 when empty.
// Feeds the price trend chart.
func AveragePrice(list []Offer) float64 {
	if len(list) == 0 {
		return 0
	}
	sum := 0.0
	for _, o := range list {
		sum += o.TotalAmount()
	}
	return sum / float64(len(list))
}
