package repository

import (
	"context"
	"database/sql"
)

// DiscountRepo reads discount rules.  Rules are owned by an external
// administrative process; the booking path only ever looks them up.
// DiscountRepo satisfies pricing.DiscountSource.
type DiscountRepo struct{ DB *sql.DB }

// NewDiscountRepo returns a DiscountRepo bound to the given database.
func NewDiscountRepo(db *sql.DB) *DiscountRepo { return &DiscountRepo{DB: db} }

// GetPercentage returns the stored percentage for a category label.
// A label with no stored rule yields 0 rather than an error: an
// unconfigured category simply grants no discount.
func (r *DiscountRepo) GetPercentage(ctx context.Context, category string) (float64, error) {
	const q = `SELECT percentage FROM discounts WHERE category = ? LIMIT 1`
	var pct float64
	err := r.DB.QueryRowContext(ctx, q, category).Scan(&pct)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return pct, nil
}
