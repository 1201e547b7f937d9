package amadeus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"flightdeck/internal/offers"
	"flightdeck/pkg/logger"
)

// Upstream caps one result set; keeps every downstream recomputation cheap.
const maxOffers = 20

type SearchParams struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
}

type Meta struct {
	Count int `json:"count"`
}

type SearchResponse struct {
	Data         []offers.Offer      `json:"data"`
	Dictionaries offers.Dictionaries `json:"dictionaries"`
	Meta         Meta                `json:"meta"`
}

// SearchOffers fetches one raw result set for a search tuple. Offers violating
// the data invariants (itinerary count, empty segments, unparseable price) are
// dropped here with a warning so the pipeline only ever sees well-formed input.
func (c *Client) SearchOffers(ctx context.Context, p SearchParams) (*SearchResponse, error) {
	query := url.Values{}
	query.Set("originLocationCode", p.Origin)
	query.Set("destinationLocationCode", p.Destination)
	query.Set("departureDate", p.DepartureDate)
	if p.ReturnDate != "" {
		query.Set("returnDate", p.ReturnDate)
	}
	adults := p.Adults
	if adults < 1 {
		adults = 1
	}
	query.Set("adults", strconv.Itoa(adults))
	query.Set("max", strconv.Itoa(maxOffers))
	query.Set("currencyCode", c.currency)

	resp, err := c.get(ctx, "/v2/shopping/flight-offers", query)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, drainError(resp)
	}

	var decoded SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	valid := make([]offers.Offer, 0, len(decoded.Data))
	for _, o := range decoded.Data {
		if err := o.Validate(); err != nil {
			c.logger.Warn("dropping malformed offer", logger.Field{Key: "err", Value: err})
			continue
		}
		valid = append(valid, o)
	}
	decoded.Data = valid
	decoded.Meta.Count = len(valid)

	return &decoded, nil
}
