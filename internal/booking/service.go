// Package booking receives the record the search flow hands off on confirm
// and keeps it retrievable through the mock checkout. There is no payment
// integration behind it.
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"flightdeck/internal/httperr"
	"flightdeck/internal/offers"
	"flightdeck/pkg/cache"
	"flightdeck/pkg/idgen"
	"flightdeck/pkg/logger"
)

const StatusConfirmed = "CONFIRMED"

// Request is the handoff payload produced by a confirmed selection.
type Request struct {
	Outbound     offers.Offer        `json:"outbound"`
	ReturnFlight *offers.Offer       `json:"returnFlight,omitempty"`
	Dictionaries offers.Dictionaries `json:"dictionaries"`
}

// Record is one stored booking. Total is outbound plus optional return, in the
// outbound's currency.
type Record struct {
	Reference    string              `json:"reference"`
	Status       string              `json:"status"`
	Outbound     offers.Offer        `json:"outbound"`
	ReturnFlight *offers.Offer       `json:"returnFlight,omitempty"`
	Dictionaries offers.Dictionaries `json:"dictionaries"`
	TotalPrice   float64             `json:"total_price"`
	Currency     string              `json:"currency"`
	CreatedAt    time.Time           `json:"created_at"`
}

type Service struct {
	cache  cache.Cache
	ids    idgen.Generator
	ttl    time.Duration
	logger logger.Logger
}

func NewService(cache cache.Cache, ids idgen.Generator, ttlHours int, logger logger.Logger) *Service {
	return &Service{
		cache:  cache,
		ids:    ids,
		ttl:    time.Duration(ttlHours) * time.Hour,
		logger: logger,
	}
}

func bookingKey(reference string) string {
	return "booking:" + reference
}

// Create validates the handoff payload, assigns a reference and stores the
// record with TTL.
func (s *Service) Create(ctx context.Context, req Request) (*Record, error) {
	if err := req.Outbound.Validate(); err != nil {
		return nil, httperr.Validation(fmt.Sprintf("invalid outbound offer: %v", err))
	}
	if req.ReturnFlight != nil {
		if err := req.ReturnFlight.Validate(); err != nil {
			return nil, httperr.Validation(fmt.Sprintf("invalid return offer: %v", err))
		}
	}

	total := req.Outbound.TotalAmount()
	if req.ReturnFlight != nil {
		total += req.ReturnFlight.TotalAmount()
	}

	record := &Record{
		Reference:    s.ids.Reference(),
		Status:       StatusConfirmed,
		Outbound:     req.Outbound,
		ReturnFlight: req.ReturnFlight,
		Dictionaries: req.Dictionaries,
		TotalPrice:   total,
		Currency:     req.Outbound.Price.Currency,
		CreatedAt:    time.Now().UTC(),
	}

	recordBytes, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking record: %w", err)
	}
	if err := s.cache.Set(ctx, bookingKey(record.Reference), string(recordBytes), s.ttl); err != nil {
		return nil, fmt.Errorf("failed to store booking record: %w", err)
	}

	s.logger.Info("booking created",
		logger.Field{Key: "reference", Value: record.Reference},
		logger.Field{Key: "total_price", Value: total},
		logger.Field{Key: "round_trip", Value: req.ReturnFlight != nil},
	)
	return record, nil
}

// Get loads a stored booking by reference.
func (s *Service) Get(ctx context.Context, reference string) (*Record, error) {
	stored, err := s.cache.Get(ctx, bookingKey(reference))
	if err != nil {
		return nil, httperr.NotFound("booking not found")
	}

	var record Record
	if err := json.Unmarshal([]byte(stored), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking record: %w", err)
	}
	return &record, nil
}
