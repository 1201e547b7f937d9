package amadeus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

type Location struct {
	Name     string          `json:"name"`
	IATACode string          `json:"iataCode"`
	SubType  string          `json:"subType"`
	Address  LocationAddress `json:"address"`
}

type LocationAddress struct {
	CityName    string `json:"cityName,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

type locationsResponse struct {
	Data []Location `json:"data"`
}

// SearchLocations resolves a city/airport autocomplete keyword. A blank
// keyword or a vendor 404 yields an empty list, never an error.
func (c *Client) SearchLocations(ctx context.Context, keyword string) ([]Location, error) {
	if keyword == "" {
		return []Location{}, nil
	}

	query := url.Values{}
	query.Set("subType", "CITY,AIRPORT")
	query.Set("keyword", keyword)
	query.Set("view", "LIGHT")
	query.Set("page[limit]", "20")

	resp, err := c.get(ctx, "/v1/reference-data/locations", query)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []Location{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, drainError(resp)
	}

	var decoded locationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}
	if decoded.Data == nil {
		decoded.Data = []Location{}
	}
	return decoded.Data, nil
}
