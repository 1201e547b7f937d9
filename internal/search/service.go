package search

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"flightdeck/internal/httperr"
	"flightdeck/internal/offers"
	"flightdeck/pkg/amadeus"
	"flightdeck/pkg/cache"
	"flightdeck/pkg/logger"
)

// VendorClient is the fetch boundary: one raw result set per search tuple,
// plus the locations autocomplete.
type VendorClient interface {
	SearchOffers(ctx context.Context, p amadeus.SearchParams) (*amadeus.SearchResponse, error)
	SearchLocations(ctx context.Context, keyword string) ([]amadeus.Location, error)
}

type Service struct {
	client VendorClient
	cache  cache.Cache
	ttl    time.Duration
	logger logger.Logger
}

func NewService(client VendorClient, cache cache.Cache, ttlMinutes int, logger logger.Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		logger: logger,
	}
}

// cacheKey derives a deterministic key from the search tuple.
func (s *Service) cacheKey(req Request) string {
	key := fmt.Sprintf("offers:%s:%s:%s:%s:%d",
		req.Origin,
		req.Destination,
		req.DepartureDate,
		req.ReturnDate,
		req.Adults,
	)
	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("flight:offers:%x", hash[:16])
}

// Search returns the raw result set for a tuple, from cache when possible.
// A vendor failure is retried once; a second failure surfaces as an upstream
// error and the pipeline has no input for this tuple.
func (s *Service) Search(ctx context.Context, req Request) (*Response, error) {
	key := s.cacheKey(req)

	cached, err := s.cache.Get(ctx, key)
	if err == nil && cached != "" {
		var response Response
		if err := json.Unmarshal([]byte(cached), &response); err != nil {
			s.logger.Error("failed to unmarshal cached result set", logger.Field{Key: "err", Value: err})
		} else {
			s.logger.Info("cache hit for search", logger.Field{Key: "cache_key", Value: key})
			response.Meta.CacheHit = true
			response.Meta.CacheKey = key
			return &response, nil
		}
	}

	s.logger.Info("cache miss for search",
		logger.Field{Key: "cache_key", Value: key},
		logger.Field{Key: "route", Value: fmt.Sprintf("%s->%s", req.Origin, req.Destination)},
	)

	startTime := time.Now()
	vendorResp, err := s.fetchWithRetry(ctx, req)
	if err != nil {
		return nil, httperr.Upstream("failed to fetch flights from provider", err)
	}
	searchTime := time.Since(startTime).Milliseconds()

	response := &Response{
		Criteria: req,
		Meta: Meta{
			TotalResults: len(vendorResp.Data),
			SearchTimeMs: searchTime,
			CacheHit:     false,
			CacheKey:     key,
		},
		Data:         vendorResp.Data,
		Dictionaries: vendorResp.Dictionaries,
	}

	responseBytes, err := json.Marshal(response)
	if err != nil {
		s.logger.Error("failed to marshal response for caching", logger.Field{Key: "err", Value: err})
		return response, nil
	}

	go func() {
		bgCtx := context.Background()
		if err := s.cache.Set(bgCtx, key, string(responseBytes), s.ttl); err != nil {
			s.logger.Error("failed to cache search results",
				logger.Field{Key: "err", Value: err},
				logger.Field{Key: "cache_key", Value: key},
			)
		}
	}()

	return response, nil
}

func (s *Service) fetchWithRetry(ctx context.Context, req Request) (*amadeus.SearchResponse, error) {
	params := amadeus.SearchParams{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Adults:        req.Adults,
	}

	resp, err := s.client.SearchOffers(ctx, params)
	if err == nil {
		return resp, nil
	}

	s.logger.Warn("vendor search failed, retrying once", logger.Field{Key: "err", Value: err})
	resp, err = s.client.SearchOffers(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("vendor search failed after retry: %w", err)
	}
	return resp, nil
}

// View recomputes the derived views for one interaction: filter, sort, and for
// round trips the unique-outbound groups plus, when an outbound is selected,
// its compatible returns. The raw set is never mutated.
func (s *Service) View(ctx context.Context, req ViewRequest) (*ViewResponse, error) {
	base, err := s.Search(ctx, req.Request)
	if err != nil {
		return nil, err
	}

	defaults := offers.NewFilters(base.Data)
	filters := defaults
	if req.Filters != nil {
		filters = *req.Filters
	}
	flights := filters.Apply(base.Data)

	mode := req.Sort
	if mode == "" {
		mode = offers.SortPriceAsc
	}
	if !mode.Valid() {
		s.logger.Warn("invalid sort criteria", logger.Field{Key: "sort_by", Value: string(mode)})
	}
	flights = offers.Sort(flights, mode)

	resp := &ViewResponse{
		Criteria: req.Request,
		Meta: Meta{
			TotalResults:    len(base.Data),
			FilteredResults: len(flights),
			SearchTimeMs:    base.Meta.SearchTimeMs,
			CacheHit:        base.Meta.CacheHit,
			CacheKey:        base.Meta.CacheKey,
		},
		Flights:      flights,
		PriceCeiling: defaults.MaxPrice,
		Airlines:     offers.AvailableAirlines(base.Data, base.Dictionaries.Carriers),
		AveragePrice: offers.AveragePrice(flights),
		Dictionaries: base.Dictionaries,
	}

	if req.RoundTrip() {
		resp.Outbounds = offers.GroupOutbounds(flights)

		if req.SelectedOutboundID != "" {
			selected, ok := findOffer(flights, req.SelectedOutboundID)
			if !ok {
				// The selection may have been filtered out of the current
				// view; resolve it against the raw set so its key is known.
				selected, ok = findOffer(base.Data, req.SelectedOutboundID)
			}
			if !ok {
				return nil, httperr.NotFound("selected outbound offer not found in result set")
			}
			resp.Returns = &ReturnView{
				OutboundKey: offers.OutboundKey(selected),
				Flights:     offers.MatchReturns(flights, selected),
			}
		}
	}

	return resp, nil
}

func findOffer(list []offers.Offer, id string) (offers.Offer, bool) {
	for _, o := range list {
		if o.ID == id {
			return o, true
		}
	}
	return offers.Offer{}, false
}

// Locations proxies the autocomplete lookup to the vendor.
func (s *Service) Locations(ctx context.Context, keyword string) ([]amadeus.Location, error) {
	locations, err := s.client.SearchLocations(ctx, keyword)
	if err != nil {
		return nil, httperr.Upstream("failed to fetch locations from provider", err)
	}
	return locations, nil
}

// InvalidateCache drops the cached result set for a tuple.
func (s *Service) InvalidateCache(ctx context.Context, req Request) error {
	key := s.cacheKey(req)
	s.logger.Info("invalidating cache", logger.Field{Key: "cache_key", Value: key})
	return s.cache.Del(ctx, key)
}
