package offers

import "fmt"

// seg builds one flown leg. The departure timestamp is part of the identity
// key, so fixtures vary it to distinguish physical flights.
func seg(carrier, number, from, to, departAt string) Segment {
	return Segment{
		CarrierCode: carrier,
		Number:      number,
		Departure:   Endpoint{IATACode: from, At: departAt},
		Arrival:     Endpoint{IATACode: to, At: departAt},
	}
}

func oneWay(id, total, duration string, segments ...Segment) Offer {
	return Offer{
		ID:    id,
		Price: Price{Currency: "BRL", Total: total},
		Itineraries: []Itinerary{
			{Duration: duration, Segments: segments},
		},
	}
}

func roundTrip(id, total string, outbound, inbound Itinerary) Offer {
	return Offer{
		ID:          id,
		Price:       Price{Currency: "BRL", Total: total},
		Itineraries: []Itinerary{outbound, inbound},
	}
}

func ids(list []Offer) []string {
	out := make([]string, 0, len(list))
	for _, o := range list {
		out = append(out, o.ID)
	}
	return out
}

// directOffer is a one-way GRU->GIG non-stop, price and flight number varied
// per call site.
func directOffer(n int, total string) Offer {
	return oneWay(
		fmt.Sprintf("offer-%d", n),
		total,
		"PT1H10M",
		seg("G3", fmt.Sprintf("10%d", n), "GRU", "GIG", fmt.Sprintf("2026-10-01T0%d:00:00", n)),
	)
}
