package offers

import "sort"

// MatchReturns finds every offer in the full filtered and sorted set whose
// outbound identity key equals the selected outbound's key, ordered ascending
// by total price. The search runs over the whole set, not a group, so all
// compatible returns surface no matter which grouped representative was
// selected. An empty result is valid: no compatible returns survived the
// current filters.
func MatchReturns(list []Offer, outbound Offer) []Offer {
	key := OutboundKey(outbound)

	matched := make([]Offer, 0)
	for _, o := range list {
		if OutboundKey(o) == key {
			matched = append(matched, o)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].TotalAmount() < matched[j].TotalAmount()
	})
	return matched
}
