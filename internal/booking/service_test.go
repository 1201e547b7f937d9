package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightdeck/internal/httperr"
	"flightdeck/internal/offers"
	"flightdeck/pkg/cache"
	"flightdeck/pkg/idgen"
	"flightdeck/pkg/logger"
)

func testOffer(id, total string, itineraries int) offers.Offer {
	o := offers.Offer{
		ID:    id,
		Price: offers.Price{Currency: "BRL", Total: total},
	}
	for i := 0; i < itineraries; i++ {
		o.Itineraries = append(o.Itineraries, offers.Itinerary{
			Duration: "PT1H",
			Segments: []offers.Segment{{
				CarrierCode: "G3",
				Number:      "1000",
				Departure:   offers.Endpoint{IATACode: "GRU", At: "2026-10-01T08:00:00"},
				Arrival:     offers.Endpoint{IATACode: "GIG", At: "2026-10-01T09:00:00"},
			}},
		})
	}
	return o
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	gen, err := idgen.NewSnowflakeGenerator(1)
	require.NoError(t, err)
	return NewService(cache.NewMemoryCache(), gen, 24, logger.NewZeroLog("production"))
}

func TestService_CreateAndGet_RoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	outbound := testOffer("out", "500.00", 2)
	ret := testOffer("ret", "480.00", 2)

	record, err := svc.Create(ctx, Request{
		Outbound:     outbound,
		ReturnFlight: &ret,
		Dictionaries: offers.Dictionaries{Carriers: map[string]string{"G3": "GOL"}},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, record.Reference)
	assert.Equal(t, StatusConfirmed, record.Status)
	assert.Equal(t, 980.0, record.TotalPrice)
	assert.Equal(t, "BRL", record.Currency)
	assert.False(t, record.CreatedAt.IsZero())

	loaded, err := svc.Get(ctx, record.Reference)
	require.NoError(t, err)
	assert.Equal(t, record.Reference, loaded.Reference)
	assert.Equal(t, "out", loaded.Outbound.ID)
	require.NotNil(t, loaded.ReturnFlight)
	assert.Equal(t, "ret", loaded.ReturnFlight.ID)
	assert.Equal(t, "GOL", loaded.Dictionaries.Carriers["G3"])
}

func TestService_Create_OneWayTotal(t *testing.T) {
	svc := newTestService(t)

	record, err := svc.Create(context.Background(), Request{
		Outbound: testOffer("out", "312.40", 1),
	})
	require.NoError(t, err)
	assert.Equal(t, 312.4, record.TotalPrice)
	assert.Nil(t, record.ReturnFlight)
}

func TestService_Create_RejectsInvalidOffers(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, Request{Outbound: offers.Offer{ID: "empty"}})
	var appErr *httperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, httperr.ErrorCodeValidation, appErr.Code)

	bad := testOffer("bad", "not-a-number", 1)
	out := testOffer("out", "100.00", 1)
	_, err = svc.Create(ctx, Request{Outbound: out, ReturnFlight: &bad})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, httperr.ErrorCodeValidation, appErr.Code)
}

func TestService_Get_UnknownReference(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), "NOPE")
	var appErr *httperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, httperr.ErrorCodeNotFound, appErr.Code)
}
