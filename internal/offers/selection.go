package offers

import "errors"

// Phase is the current step of the round-trip mix-and-match flow.
type Phase string

const (
	PhaseChoosingOutbound Phase = "choosing_outbound"
	PhaseChoosingReturn   Phase = "choosing_return"
)

var (
	ErrNoOutboundSelected  = errors.New("no outbound selected")
	ErrNotRoundTrip        = errors.New("return selection only applies to round trips")
	ErrSelectionIncomplete = errors.New("selection incomplete")
)

// Selection tracks the chosen outbound and return offers for one search view.
// One-way searches never leave the outbound phase and confirm as soon as an
// outbound is chosen.
type Selection struct {
	roundTrip    bool
	phase        Phase
	outbound     *Offer
	returnFlight *Offer
}

func NewSelection(roundTrip bool) *Selection {
	return &Selection{
		roundTrip: roundTrip,
		phase:     PhaseChoosingOutbound,
	}
}

func (s *Selection) Phase() Phase {
	return s.phase
}

func (s *Selection) Outbound() (Offer, bool) {
	if s.outbound == nil {
		return Offer{}, false
	}
	return *s.outbound, true
}

func (s *Selection) Return() (Offer, bool) {
	if s.returnFlight == nil {
		return Offer{}, false
	}
	return *s.returnFlight, true
}

// SelectOutbound records the chosen outbound and unconditionally clears any
// previously chosen return, even when the same outbound is picked again:
// return compatibility is defined relative to the outbound's identity key, so
// every outbound selection restarts the return choice. Round trips advance to
// the return phase.
func (s *Selection) SelectOutbound(o Offer) {
	s.outbound = &o
	s.returnFlight = nil
	if s.roundTrip {
		s.phase = PhaseChoosingReturn
	}
}

// SelectReturn records the chosen return offer. Only meaningful once an
// outbound is set on a round-trip selection.
func (s *Selection) SelectReturn(o Offer) error {
	if !s.roundTrip {
		return ErrNotRoundTrip
	}
	if s.outbound == nil {
		return ErrNoOutboundSelected
	}
	s.returnFlight = &o
	return nil
}

// ReopenOutbound switches back to the outbound phase without clearing either
// selection; both are retained unless a new outbound is actually picked.
func (s *Selection) ReopenOutbound() {
	s.phase = PhaseChoosingOutbound
}

// CanConfirm reports whether the terminal confirm action is enabled: an
// outbound for one-way searches, outbound plus return for round trips.
func (s *Selection) CanConfirm() bool {
	if s.outbound == nil {
		return false
	}
	if s.roundTrip && s.returnFlight == nil {
		return false
	}
	return true
}

// Booking is the record handed off to checkout on confirm.
type Booking struct {
	Outbound     Offer        `json:"outbound"`
	ReturnFlight *Offer       `json:"returnFlight,omitempty"`
	Dictionaries Dictionaries `json:"dictionaries"`
}

// Confirm produces the booking record for the current selection. The receiving
// collaborator owns persistence and navigation from here.
func (s *Selection) Confirm(dict Dictionaries) (Booking, error) {
	if !s.CanConfirm() {
		return Booking{}, ErrSelectionIncomplete
	}
	return Booking{
		Outbound:     *s.outbound,
		ReturnFlight: s.returnFlight,
		Dictionaries: dict,
	}, nil
}
