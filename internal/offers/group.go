package offers

import "sort"

// OutboundGroup is one distinct outbound leg: a representative offer plus the
// minimum total price observed across all offers flying the same outbound.
type OutboundGroup struct {
	Offer    Offer   `json:"offer"`
	MinPrice float64 `json:"min_price"`
}

// GroupOutbounds partitions a round-trip result set into unique outbound legs
// keyed by outbound identity. The representative for a key is replaced only on
// a strictly lower price, so on an exact price tie the first-seen offer wins.
// Output is ordered ascending by MinPrice; the sort is stable, so groups with
// equal MinPrice keep first-seen order.
func GroupOutbounds(list []Offer) []OutboundGroup {
	index := make(map[string]int, len(list))
	groups := make([]OutboundGroup, 0, len(list))

	for _, o := range list {
		key := OutboundKey(o)
		price := o.TotalAmount()

		i, ok := index[key]
		if !ok {
			index[key] = len(groups)
			groups = append(groups, OutboundGroup{Offer: o, MinPrice: price})
			continue
		}
		if price < groups[i].MinPrice {
			groups[i] = OutboundGroup{Offer: o, MinPrice: price}
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].MinPrice < groups[j].MinPrice
	})
	return groups
}
