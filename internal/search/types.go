package search

import (
	"regexp"

	"flightdeck/internal/httperr"
	"flightdeck/internal/offers"
)

var (
	iataCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)
	isoDateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Request identifies one search-parameter tuple. One raw result set is fetched
// per distinct tuple; every derived view recomputes from it.
type Request struct {
	Origin        string `form:"origin" json:"origin"`
	Destination   string `form:"destination" json:"destination"`
	DepartureDate string `form:"date" json:"date"`
	ReturnDate    string `form:"returnDate" json:"return_date,omitempty"`
	Adults        int    `form:"adults" json:"adults"`
}

func (r *Request) Validate() error {
	if !iataCodeRe.MatchString(r.Origin) {
		return httperr.Validation("origin must be a 3-letter IATA code")
	}
	if !iataCodeRe.MatchString(r.Destination) {
		return httperr.Validation("destination must be a 3-letter IATA code")
	}
	if !isoDateRe.MatchString(r.DepartureDate) {
		return httperr.Validation("date must be YYYY-MM-DD")
	}
	if r.ReturnDate != "" && !isoDateRe.MatchString(r.ReturnDate) {
		return httperr.Validation("returnDate must be YYYY-MM-DD")
	}
	if r.Adults == 0 {
		r.Adults = 1
	}
	if r.Adults < 1 {
		return httperr.Validation("adults must be at least 1")
	}
	return nil
}

func (r Request) RoundTrip() bool {
	return r.ReturnDate != ""
}

type Meta struct {
	TotalResults    int    `json:"total_results"`
	FilteredResults int    `json:"filtered_results,omitempty"`
	SearchTimeMs    int64  `json:"search_time_ms"`
	CacheHit        bool   `json:"cache_hit"`
	CacheKey        string `json:"cache_key,omitempty"`
}

// Response is one raw result set plus its lookup tables, as cached per tuple.
type Response struct {
	Criteria     Request             `json:"search_criteria"`
	Meta         Meta                `json:"metadata"`
	Data         []offers.Offer      `json:"data"`
	Dictionaries offers.Dictionaries `json:"dictionaries"`
}

// ViewRequest is one user interaction: the search tuple plus the current
// filter/sort/selection state to recompute derived views for.
type ViewRequest struct {
	Request
	Filters            *offers.Filters `json:"filters,omitempty"`
	Sort               offers.SortMode `json:"sort,omitempty"`
	SelectedOutboundID string          `json:"selected_outbound_id,omitempty"`
}

// ReturnView is present exactly when an outbound is selected; Flights may be
// empty, which renders as "no returns available" rather than an error.
type ReturnView struct {
	OutboundKey string         `json:"outbound_key"`
	Flights     []offers.Offer `json:"flights"`
}

type ViewResponse struct {
	Criteria Request `json:"search_criteria"`
	Meta     Meta    `json:"metadata"`

	// Filtered and sorted result set, raw order preserved within equal keys.
	Flights []offers.Offer `json:"flights"`
	// Unique outbound legs, round trip only.
	Outbounds []offers.OutboundGroup `json:"outbounds,omitempty"`
	Returns   *ReturnView            `json:"returns,omitempty"`

	// Filter bootstrap for the sidebar.
	PriceCeiling float64          `json:"price_ceiling"`
	Airlines     []offers.Airline `json:"airlines"`
	AveragePrice float64          `json:"average_price"`

	Dictionaries offers.Dictionaries `json:"dictionaries"`
}
