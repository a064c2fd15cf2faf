package domain

import (
	"slices"
	"time"
)

// ListingOrderBy is the ORDER BY clause of the product listing: out-of-stock
// rows after in-stock rows, then most recently updated first. It must be
// applied in the query, before LIMIT/OFFSET.
var ListingOrderBy = []string{
	"CASE WHEN stock = 0 THEN 1 ELSE 0 END",
	"updated_at DESC",
}

// ListingKey is the sort key of a listing row
type ListingKey struct {
	Tier    int
	Recency time.Time
}

// OrderKey returns the listing sort key for a row with the given stock and
// last update time. Tier is 1 for zero stock and 0 otherwise.
func OrderKey(stock int64, updatedAt time.Time) ListingKey {
	tier := 0
	if stock == 0 {
		tier = 1
	}
	return ListingKey{Tier: tier, Recency: updatedAt}
}

// CompareListing orders keys by tier ascending, then recency descending.
func CompareListing(a, b ListingKey) int {
	if a.Tier != b.Tier {
		if a.Tier < b.Tier {
			return -1
		}
		return 1
	}
	// newer first
	return b.Recency.Compare(a.Recency)
}

// SortListing sorts rows in place by the listing order. Rows with equal keys
// keep their relative order.
func SortListing[R any](rows []R, key func(R) ListingKey) {
	slices.SortStableFunc(rows, func(a, b R) int {
		return CompareListing(key(a), key(b))
	})
}
