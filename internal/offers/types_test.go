package offers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboundKey_DistinguishesFlights(t *testing.T) {
	a := oneWay("a", "500.00", "PT1H", seg("LA", "3301", "GRU", "GIG", "2026-10-01T08:00:00"))
	b := oneWay("b", "450.00", "PT1H", seg("LA", "3301", "GRU", "GIG", "2026-10-01T08:00:00"))
	c := oneWay("c", "500.00", "PT1H", seg("LA", "3301", "GRU", "GIG", "2026-10-01T19:00:00"))

	// Same carrier, number and departure time: same physical flight.
	assert.Equal(t, OutboundKey(a), OutboundKey(b))
	// Different departure time: different flight.
	assert.NotEqual(t, OutboundKey(a), OutboundKey(c))
}

func TestOutboundKey_MultiSegment(t *testing.T) {
	twoLeg := oneWay("a", "900.00", "PT5H",
		seg("G3", "1402", "GRU", "BSB", "2026-10-01T06:00:00"),
		seg("G3", "1577", "BSB", "REC", "2026-10-01T09:30:00"),
	)
	oneLeg := oneWay("b", "900.00", "PT3H",
		seg("G3", "1402", "GRU", "BSB", "2026-10-01T06:00:00"),
	)

	assert.NotEqual(t, OutboundKey(oneLeg), OutboundKey(twoLeg))
	assert.Equal(t, "G31402-2026-10-01T06:00:00|G31577-2026-10-01T09:30:00", OutboundKey(twoLeg))
}

func TestOffer_TotalAmount(t *testing.T) {
	assert.Equal(t, 950.5, oneWay("a", "950.50", "PT1H", seg("G3", "1", "GRU", "GIG", "t")).TotalAmount())
	assert.Equal(t, 0.0, oneWay("a", "not-a-price", "PT1H", seg("G3", "1", "GRU", "GIG", "t")).TotalAmount())
}

func TestOffer_Validate(t *testing.T) {
	valid := roundTrip("rt", "1200.00",
		Itinerary{Duration: "PT1H", Segments: []Segment{seg("G3", "1", "GRU", "GIG", "t1")}},
		Itinerary{Duration: "PT1H", Segments: []Segment{seg("G3", "2", "GIG", "GRU", "t2")}},
	)
	require.NoError(t, valid.Validate())

	noItineraries := Offer{ID: "x", Price: Price{Total: "100.00"}}
	assert.Error(t, noItineraries.Validate())

	emptySegments := Offer{
		ID:          "x",
		Price:       Price{Total: "100.00"},
		Itineraries: []Itinerary{{Duration: "PT1H"}},
	}
	assert.Error(t, emptySegments.Validate())

	badPrice := oneWay("x", "abc", "PT1H", seg("G3", "1", "GRU", "GIG", "t"))
	assert.Error(t, badPrice.Validate())

	tooMany := Offer{
		ID:    "x",
		Price: Price{Total: "100.00"},
		Itineraries: []Itinerary{
			{Segments: []Segment{seg("G3", "1", "GRU", "GIG", "t")}},
			{Segments: []Segment{seg("G3", "2", "GIG", "GRU", "t")}},
			{Segments: []Segment{seg("G3", "3", "GRU", "GIG", "t")}},
		},
	}
	assert.Error(t, tooMany.Validate())
}
