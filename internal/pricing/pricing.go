// Package pricing computes the discounted payable total for a set of
// ticket category selections against a performance's band prices.  The
// computation is deterministic and has no side effects beyond one
// discount-percentage lookup per discounted category.  It is the
// server-side authority for checkout totals: client-declared amounts
// are recomputed here, never trusted.
package pricing

import "context"

// Band names recognised on a performance.  A selection naming any other
// band prices at zero.
const (
	Band1 = "Band1"
	Band2 = "Band2"
	Band3 = "Band3"
)

// Customer categories recognised at checkout.  Unknown keys in a
// selection map are ignored, not rejected.
const (
	CategoryAdults   = "adults"
	CategoryChildren = "children"
	CategoryOAP      = "oap"
	CategorySocial   = "social"
)

// volumeThreshold is the ticket count above which the additional volume
// discount applies; volumeRate is its size.  The volume discount is 5%
// of the remainder after category discounts, applied exactly once.
const (
	volumeThreshold = 20
	volumeRate      = 0.05
)

// categories fixes the iteration order so quotes are deterministic
// regardless of map ordering.
var categories = []string{CategoryAdults, CategoryChildren, CategoryOAP, CategorySocial}

// discountLabels maps a checkout category to the label stored in the
// discounts table.  Adults have no entry and are never looked up.
var discountLabels = map[string]string{
	CategoryChildren: "Children",
	CategoryOAP:      "Old Age Pensioners",
	CategorySocial:   "Social Group",
}

// Selection is one category's choice at checkout: a price band and a
// requested quantity.  A blank band or non-positive quantity marks the
// category as not purchased and it is skipped entirely.
type Selection struct {
	Band string `json:"band"`
	Qty  int    `json:"qty"`
}

// BandPrices maps band names to per-ticket prices for one performance.
// A missing band prices at zero.
type BandPrices map[string]float64

// DiscountSource looks up the stored percentage for a discount
// category label.  Implementations must return 0 (not an error) when
// no rule is stored for the label.
type DiscountSource interface {
	GetPercentage(ctx context.Context, category string) (float64, error)
}

// Quote is the result of pricing one checkout.
//
// Total may be negative when discounts exceed the base total; the
// engine does not clamp.  The client-side preview clamps to zero, so
// callers must not assume parity between the two.
type Quote struct {
	BaseTotal   float64 // undiscounted sum of bandPrice*qty over all selections
	Discount    float64 // category discounts plus any volume discount
	Total       float64 // BaseTotal - Discount
	TicketCount int     // total tickets across all selections
}

// Compute prices the given selections against the band prices.  For
// every recognised category with a band and positive quantity it
// accumulates the undiscounted subtotal, then applies the category's
// stored percentage per ticket.  When the overall ticket count exceeds
// volumeThreshold, a further 5% of the post-category-discount
// remainder is added to the discount.  The only error source is the
// DiscountSource.
func Compute(ctx context.Context, src DiscountSource, selections map[string]Selection, bands BandPrices) (Quote, error) {
	var q Quote
	for _, cat := range categories {
		sel, ok := selections[cat]
		if !ok || sel.Band == "" || sel.Qty <= 0 {
			continue
		}
		price := bands[sel.Band]
		q.TicketCount += sel.Qty
		q.BaseTotal += price * float64(sel.Qty)

		label, discounted := discountLabels[cat]
		if !discounted {
			continue
		}
		pct, err := src.GetPercentage(ctx, label)
		if err != nil {
			return Quote{}, err
		}
		perTicket := price * pct / 100
		q.Discount += perTicket * float64(sel.Qty)
	}
	if q.TicketCount > volumeThreshold {
		leftover := q.BaseTotal - q.Discount
		q.Discount += leftover * volumeRate
	}
	q.Total = q.BaseTotal - q.Discount
	return q, nil
}
