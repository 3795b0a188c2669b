package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource serves percentages from a fixed map and records lookups.
type stubSource struct {
	rates   map[string]float64
	err     error
	lookups []string
}

func (s *stubSource) GetPercentage(_ context.Context, category string) (float64, error) {
	s.lookups = append(s.lookups, category)
	if s.err != nil {
		return 0, s.err
	}
	return s.rates[category], nil
}

func standardRates() map[string]float64 {
	return map[string]float64{
		"Children":           25,
		"Old Age Pensioners": 30,
		"Social Group":       15,
	}
}

func TestComputeSingleCategoryDiscount(t *testing.T) {
	src := &stubSource{rates: standardRates()}

	q, err := Compute(context.Background(), src, map[string]Selection{
		CategoryAdults:   {Band: Band1, Qty: 2},
		CategoryChildren: {Band: Band1, Qty: 1},
	}, BandPrices{Band1: 10})

	require.NoError(t, err)
	assert.Equal(t, 30.0, q.BaseTotal)
	assert.Equal(t, 2.5, q.Discount)
	assert.Equal(t, 27.5, q.Total)
	assert.Equal(t, 3, q.TicketCount)
}

func TestComputeAdultsNeverLookedUp(t *testing.T) {
	src := &stubSource{rates: standardRates()}

	_, err := Compute(context.Background(), src, map[string]Selection{
		CategoryAdults: {Band: Band2, Qty: 5},
	}, BandPrices{Band2: 8})

	require.NoError(t, err)
	assert.Empty(t, src.lookups)
}

func TestComputeVolumeDiscountAlone(t *testing.T) {
	src := &stubSource{rates: map[string]float64{}}

	// 21 adult tickets, no category discount: volume discount is 5% of
	// the base total.
	q, err := Compute(context.Background(), src, map[string]Selection{
		CategoryAdults: {Band: Band1, Qty: 21},
	}, BandPrices{Band1: 10})

	require.NoError(t, err)
	assert.Equal(t, 210.0, q.BaseTotal)
	assert.InDelta(t, 210.0*0.05, q.Discount, 1e-9)
	assert.InDelta(t, 210.0*0.95, q.Total, 1e-9)
}

func TestComputeVolumeNotTriggeredAtThreshold(t *testing.T) {
	src := &stubSource{rates: map[string]float64{}}

	q, err := Compute(context.Background(), src, map[string]Selection{
		CategoryAdults: {Band: Band1, Qty: 20},
	}, BandPrices{Band1: 10})

	require.NoError(t, err)
	assert.Equal(t, 0.0, q.Discount)
	assert.Equal(t, 200.0, q.Total)
}

func TestComputeVolumeAppliesToRemainder(t *testing.T) {
	src := &stubSource{rates: standardRates()}

	// 25 children at 10: base 250, category discount 62.5, volume adds
	// 5% of the 187.5 remainder.
	q, err := Compute(context.Background(), src, map[string]Selection{
		CategoryChildren: {Band: Band1, Qty: 25},
	}, BandPrices{Band1: 10})

	require.NoError(t, err)
	assert.Equal(t, 250.0, q.BaseTotal)
	assert.InDelta(t, 62.5+187.5*0.05, q.Discount, 1e-9)
	assert.InDelta(t, 250.0-(62.5+187.5*0.05), q.Total, 1e-9)
}

func TestComputeSkipsUnpurchasedSelections(t *testing.T) {
	src := &stubSource{rates: standardRates()}

	q, err := Compute(context.Background(), src, map[string]Selection{
		CategoryAdults:   {Band: Band1, Qty: 2},
		CategoryChildren: {Band: "", Qty: 3},     // blank band
		CategoryOAP:      {Band: Band2, Qty: 0},  // zero qty
		CategorySocial:   {Band: Band3, Qty: -1}, // negative qty
		"students":       {Band: Band1, Qty: 4},  // unknown category
	}, BandPrices{Band1: 10, Band2: 8, Band3: 6})

	require.NoError(t, err)
	assert.Equal(t, 20.0, q.BaseTotal)
	assert.Equal(t, 0.0, q.Discount)
	assert.Equal(t, 2, q.TicketCount)
	assert.Empty(t, src.lookups)
}

func TestComputeMissingBandPricesAtZero(t *testing.T) {
	src := &stubSource{rates: standardRates()}

	q, err := Compute(context.Background(), src, map[string]Selection{
		CategoryAdults: {Band: "Band9", Qty: 3},
	}, BandPrices{Band1: 10})

	require.NoError(t, err)
	assert.Equal(t, 0.0, q.BaseTotal)
	assert.Equal(t, 0.0, q.Total)
	assert.Equal(t, 3, q.TicketCount)
}

func TestComputeNegativeTotalNotClamped(t *testing.T) {
	src := &stubSource{rates: map[string]float64{"Children": 150}}

	q, err := Compute(context.Background(), src, map[string]Selection{
		CategoryChildren: {Band: Band1, Qty: 1},
	}, BandPrices{Band1: 10})

	require.NoError(t, err)
	assert.Equal(t, 15.0, q.Discount)
	assert.Equal(t, -5.0, q.Total)
}

func TestComputeDeterministic(t *testing.T) {
	selections := map[string]Selection{
		CategoryAdults:   {Band: Band1, Qty: 3},
		CategoryChildren: {Band: Band2, Qty: 2},
		CategoryOAP:      {Band: Band3, Qty: 1},
		CategorySocial:   {Band: Band1, Qty: 4},
	}
	bands := BandPrices{Band1: 12, Band2: 9, Band3: 6}

	first, err := Compute(context.Background(), &stubSource{rates: standardRates()}, selections, bands)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := Compute(context.Background(), &stubSource{rates: standardRates()}, selections, bands)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComputePropagatesSourceError(t *testing.T) {
	src := &stubSource{err: errors.New("db down")}

	_, err := Compute(context.Background(), src, map[string]Selection{
		CategoryChildren: {Band: Band1, Qty: 1},
	}, BandPrices{Band1: 10})

	assert.Error(t, err)
}
