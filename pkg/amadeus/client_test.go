package amadeus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightdeck/pkg/logger"
)

func newVendorStub(t *testing.T, tokenCalls *atomic.Int32, offersPayload string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "test-token",
			"token_type":   "Bearer",
			"expires_in":   1799,
		})
	})

	mux.HandleFunc("/v2/shopping/flight-offers", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "20", r.URL.Query().Get("max"))
		assert.Equal(t, "BRL", r.URL.Query().Get("currencyCode"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(offersPayload))
	})

	mux.HandleFunc("/v1/reference-data/locations", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("keyword") == "nowhere" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"name":"GUARULHOS INTL","iataCode":"GRU","subType":"AIRPORT","address":{"cityName":"SAO PAULO","countryCode":"BR"}}]}`))
	})

	return httptest.NewServer(mux)
}

func testClient(srv *httptest.Server) *Client {
	return NewClient(srv.Client(), Config{
		BaseURL:      srv.URL,
		ClientID:     "id",
		ClientSecret: "secret",
	}, logger.NewZeroLog("production"))
}

const validOffersPayload = `{
  "data": [
    {
      "id": "1",
      "price": {"currency": "BRL", "total": "950.50"},
      "itineraries": [
        {"duration": "PT1H10M", "segments": [
          {"carrierCode": "G3", "number": "1001",
           "departure": {"iataCode": "GRU", "at": "2026-10-01T08:00:00"},
           "arrival": {"iataCode": "GIG", "at": "2026-10-01T09:10:00"}}
        ]}
      ]
    },
    {
      "id": "broken",
      "price": {"currency": "BRL", "total": "100.00"},
      "itineraries": [{"duration": "PT1H", "segments": []}]
    }
  ],
  "dictionaries": {"carriers": {"G3": "GOL LINHAS AEREAS"}},
  "meta": {"count": 2}
}`

func TestClient_SearchOffers_DropsMalformedOffers(t *testing.T) {
	var tokenCalls atomic.Int32
	srv := newVendorStub(t, &tokenCalls, validOffersPayload)
	defer srv.Close()

	c := testClient(srv)
	resp, err := c.SearchOffers(context.Background(), SearchParams{
		Origin: "GRU", Destination: "GIG", DepartureDate: "2026-10-01", Adults: 1,
	})
	require.NoError(t, err)

	// The zero-segment offer is dropped at the boundary.
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "1", resp.Data[0].ID)
	assert.Equal(t, 1, resp.Meta.Count)
	assert.Equal(t, "GOL LINHAS AEREAS", resp.Dictionaries.Carriers["G3"])
}

func TestClient_TokenFetchedOnceAcrossCalls(t *testing.T) {
	var tokenCalls atomic.Int32
	srv := newVendorStub(t, &tokenCalls, validOffersPayload)
	defer srv.Close()

	c := testClient(srv)
	ctx := context.Background()
	params := SearchParams{Origin: "GRU", Destination: "GIG", DepartureDate: "2026-10-01", Adults: 1}

	_, err := c.SearchOffers(ctx, params)
	require.NoError(t, err)
	_, err = c.SearchOffers(ctx, params)
	require.NoError(t, err)

	// Second call reuses the cached credential.
	assert.Equal(t, int32(1), tokenCalls.Load())
}

func TestClient_SearchOffers_UpstreamError(t *testing.T) {
	var tokenCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"t","token_type":"Bearer","expires_in":1799}`))
	})
	mux.HandleFunc("/v2/shopping/flight-offers", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"title":"quota exceeded"}]}`, http.StatusTooManyRequests)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := testClient(srv)
	_, err := c.SearchOffers(context.Background(), SearchParams{Origin: "GRU", Destination: "GIG", DepartureDate: "2026-10-01"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_SearchLocations(t *testing.T) {
	var tokenCalls atomic.Int32
	srv := newVendorStub(t, &tokenCalls, validOffersPayload)
	defer srv.Close()

	c := testClient(srv)
	ctx := context.Background()

	locations, err := c.SearchLocations(ctx, "sao")
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "GRU", locations[0].IATACode)
	assert.Equal(t, "SAO PAULO", locations[0].Address.CityName)

	// Vendor 404 is an empty result, not an error.
	locations, err = c.SearchLocations(ctx, "nowhere")
	require.NoError(t, err)
	assert.Empty(t, locations)

	// Blank keyword short-circuits without a vendor call.
	locations, err = c.SearchLocations(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, locations)
}
