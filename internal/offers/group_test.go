package offers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rtOffer(id, total, outboundAt, returnAt string) Offer {
	return roundTrip(id, total,
		Itinerary{Duration: "PT1H10M", Segments: []Segment{seg("G3", "1000", "GRU", "GIG", outboundAt)}},
		Itinerary{Duration: "PT1H05M", Segments: []Segment{seg("G3", "2000", "GIG", "GRU", returnAt)}},
	)
}

func TestGroupOutbounds_MinPriceAndOrdering(t *testing.T) {
	// K1 appears at 500 then 400; K2 once at 300.
	list := []Offer{
		rtOffer("k1-a", "500.00", "2026-10-01T08:00:00", "2026-10-05T10:00:00"),
		rtOffer("k1-b", "400.00", "2026-10-01T08:00:00", "2026-10-05T18:00:00"),
		rtOffer("k2-a", "300.00", "2026-10-01T14:00:00", "2026-10-05T10:00:00"),
	}

	groups := GroupOutbounds(list)

	require.Len(t, groups, 2)
	// Ascending by min price: K2 (300) before K1 (400).
	assert.Equal(t, "k2-a", groups[0].Offer.ID)
	assert.Equal(t, 300.0, groups[0].MinPrice)
	assert.Equal(t, "k1-b", groups[1].Offer.ID)
	assert.Equal(t, 400.0, groups[1].MinPrice)
}

func TestGroupOutbounds_FirstSeenWinsOnPriceTie(t *testing.T) {
	list := []Offer{
		rtOffer("first", "400.00", "2026-10-01T08:00:00", "2026-10-05T10:00:00"),
		rtOffer("second", "400.00", "2026-10-01T08:00:00", "2026-10-05T18:00:00"),
	}

	groups := GroupOutbounds(list)

	require.Len(t, groups, 1)
	// The representative is replaced only on a strictly lower price.
	assert.Equal(t, "first", groups[0].Offer.ID)
}

func TestGroupOutbounds_GroupCountBoundedByInput(t *testing.T) {
	list := []Offer{
		rtOffer("a", "500.00", "2026-10-01T08:00:00", "2026-10-05T10:00:00"),
		rtOffer("b", "450.00", "2026-10-01T08:00:00", "2026-10-05T14:00:00"),
		rtOffer("c", "480.00", "2026-10-01T08:00:00", "2026-10-05T18:00:00"),
	}

	groups := GroupOutbounds(list)

	require.Len(t, groups, 1)
	assert.Equal(t, 450.0, groups[0].MinPrice)
	assert.Equal(t, "b", groups[0].Offer.ID)
}

func TestGroupOutbounds_Empty(t *testing.T) {
	assert.Empty(t, GroupOutbounds(nil))
}
