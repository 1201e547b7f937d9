package offers

import (
	"fmt"
	"strconv"
	"strings"
)

// Offer is one priced, bookable flight result as returned by the vendor.
// Itineraries[0] is always the outbound; Itineraries[1], when present, the return.
type Offer struct {
	ID                     string      `json:"id"`
	Price                  Price       `json:"price"`
	Itineraries            []Itinerary `json:"itineraries"`
	ValidatingAirlineCodes []string    `json:"validatingAirlineCodes,omitempty"`
}

// Price keeps the vendor's decimal strings as-is; TotalAmount parses on demand.
type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal,omitempty"`
}

// Itinerary is one direction of travel within an offer.
type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is one physically flown leg.
type Segment struct {
	Departure     Endpoint `json:"departure"`
	Arrival       Endpoint `json:"arrival"`
	CarrierCode   string   `json:"carrierCode"`
	Number        string   `json:"number"`
	Aircraft      Aircraft `json:"aircraft,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	NumberOfStops int      `json:"numberOfStops,omitempty"`
}

type Endpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"` // ISO 8601
}

type Aircraft struct {
	Code string `json:"code,omitempty"`
}

// Dictionaries is the lookup-table bundle shipped alongside a result set.
type Dictionaries struct {
	Locations  map[string]Location `json:"locations,omitempty"`
	Aircraft   map[string]string   `json:"aircraft,omitempty"`
	Currencies map[string]string   `json:"currencies,omitempty"`
	Carriers   map[string]string   `json:"carriers,omitempty"`
}

type Location struct {
	CityCode    string `json:"cityCode,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

// TotalAmount parses the vendor's decimal price string. A string that does not
// parse yields 0; Validate rejects such offers at the fetch boundary, so this
// only arises for hand-constructed values.
func (o Offer) TotalAmount() float64 {
	amount, err := strconv.ParseFloat(o.Price.Total, 64)
	if err != nil {
		return 0
	}
	return amount
}

// Outbound returns the first itinerary. Offers are validated on ingestion, so
// at least one itinerary is always present.
func (o Offer) Outbound() Itinerary {
	return o.Itineraries[0]
}

// Return reports the return itinerary when the offer is a round trip.
func (o Offer) Return() (Itinerary, bool) {
	if len(o.Itineraries) < 2 {
		return Itinerary{}, false
	}
	return o.Itineraries[1], true
}

func (o Offer) RoundTrip() bool {
	return len(o.Itineraries) == 2
}

// Stops is the stop count for the itinerary: segments minus one.
func (it Itinerary) Stops() int {
	return len(it.Segments) - 1
}

// Validate enforces the offer invariants at the fetch boundary: one or two
// itineraries, every itinerary non-empty, and a parseable total price. The
// pipeline downstream assumes these hold and does not re-check.
func (o Offer) Validate() error {
	if n := len(o.Itineraries); n < 1 || n > 2 {
		return fmt.Errorf("offer %s: expected 1 or 2 itineraries, got %d", o.ID, n)
	}
	for i, it := range o.Itineraries {
		if len(it.Segments) == 0 {
			return fmt.Errorf("offer %s: itinerary %d has no segments", o.ID, i)
		}
	}
	if _, err := strconv.ParseFloat(o.Price.Total, 64); err != nil {
		return fmt.Errorf("offer %s: unparseable price total %q", o.ID, o.Price.Total)
	}
	return nil
}

// ItineraryKey derives the identity key for an itinerary: each segment rendered
// as carrierCode+number+"-"+departure.at, joined with "|". The separator keeps
// key equality equivalent to segment-by-segment equality in carrier, number and
// departure time.
func ItineraryKey(it Itinerary) string {
	var b strings.Builder
	for i, seg := range it.Segments {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(seg.CarrierCode)
		b.WriteString(seg.Number)
		b.WriteByte('-')
		b.WriteString(seg.Departure.At)
	}
	return b.String()
}

// OutboundKey is the identity key of the offer's outbound itinerary. Two offers
// with equal outbound keys fly the same physical outbound and are
// interchangeable for grouping and return matching.
func OutboundKey(o Offer) string {
	return ItineraryKey(o.Outbound())
}
