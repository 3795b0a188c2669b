package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuehub/ticketbooking/internal/model"
	"github.com/venuehub/ticketbooking/internal/pricing"
)

// fakeStore records every write and can be told to fail at a given
// step.
type fakeStore struct {
	failBooking bool
	failPayment bool
	failAttach  bool
	failTickets bool

	booking    *model.Booking
	payment    *model.Payment
	attachedTo [2]uint64
	tickets    []model.Ticket

	attachCalled  bool
	ticketsCalled bool
}

var errStore = errors.New("store failure")

func (f *fakeStore) CreateBooking(_ context.Context, b *model.Booking) (uint64, error) {
	if f.failBooking {
		return 0, errStore
	}
	f.booking = b
	return 101, nil
}

func (f *fakeStore) CreatePayment(_ context.Context, p *model.Payment) (uint64, error) {
	if f.failPayment {
		return 0, errStore
	}
	f.payment = p
	return 202, nil
}

func (f *fakeStore) AttachPayment(_ context.Context, bookingID, paymentID uint64) error {
	f.attachCalled = true
	if f.failAttach {
		return errStore
	}
	f.attachedTo = [2]uint64{bookingID, paymentID}
	return nil
}

func (f *fakeStore) CreateTickets(_ context.Context, tickets []model.Ticket) error {
	f.ticketsCalled = true
	if f.failTickets {
		return errStore
	}
	f.tickets = tickets
	return nil
}

type fixedDiscounts map[string]float64

func (d fixedDiscounts) GetPercentage(_ context.Context, category string) (float64, error) {
	return d[category], nil
}

var seatLabelRe = regexp.MustCompile(`^Seat ([1-9][0-9]?|100)$`)

func checkoutReq() CheckoutRequest {
	return CheckoutRequest{
		UserID:        7,
		EventID:       3,
		PerformanceID: 9,
		Selections: map[string]pricing.Selection{
			pricing.CategoryAdults:   {Band: pricing.Band1, Qty: 2},
			pricing.CategoryChildren: {Band: pricing.Band1, Qty: 1},
		},
		BandPrices: pricing.BandPrices{pricing.Band1: 10},
		Card: CardDetails{
			CardNumber:     "4111111111111111",
			Expiry:         "12/27",
			CVV:            "123",
			CardHolderName: "J Smith",
		},
	}
}

func TestCompleteHappyPath(t *testing.T) {
	store := &fakeStore{}
	seq := NewSequencer(fixedDiscounts{"Children": 25})

	res, err := seq.Complete(context.Background(), store, checkoutReq())
	require.NoError(t, err)

	assert.Equal(t, uint64(101), res.BookingID)
	assert.Equal(t, uint64(202), res.PaymentID)
	assert.Equal(t, 2.5, res.Discount)
	assert.Equal(t, 27.5, res.TotalAmount)

	require.NotNil(t, store.booking)
	assert.Equal(t, uint64(7), store.booking.UserID)
	assert.Equal(t, uint64(3), store.booking.EventID)
	assert.Equal(t, uint64(9), store.booking.PerformanceID)
	assert.Equal(t, 27.5, store.booking.TotalAmount)

	require.NotNil(t, store.payment)
	assert.Equal(t, uint64(101), store.payment.BookingID)
	assert.Equal(t, 27.5, store.payment.Amount)
	assert.Equal(t, "4111111111111111", store.payment.CardNumber)

	assert.Equal(t, [2]uint64{101, 202}, store.attachedTo)
}

func TestCompleteTicketsPricedUndiscounted(t *testing.T) {
	store := &fakeStore{}
	seq := NewSequencer(fixedDiscounts{"Children": 25})

	res, err := seq.Complete(context.Background(), store, checkoutReq())
	require.NoError(t, err)

	// Three tickets, each at the raw band price regardless of the
	// discount taken off the total.
	require.Len(t, store.tickets, 3)
	for _, tk := range store.tickets {
		assert.Equal(t, uint64(101), tk.BookingID)
		assert.Equal(t, 10.0, tk.Price)
		assert.Regexp(t, seatLabelRe, tk.SeatInfo)
	}
	assert.Len(t, res.SeatLabels, 3)
	for _, label := range res.SeatLabels {
		assert.Regexp(t, seatLabelRe, label)
	}
}

func TestCompleteEmptySelectionsSkipTickets(t *testing.T) {
	store := &fakeStore{}
	seq := NewSequencer(fixedDiscounts{})

	req := checkoutReq()
	req.Selections = map[string]pricing.Selection{}

	res, err := seq.Complete(context.Background(), store, req)
	require.NoError(t, err)

	assert.False(t, store.ticketsCalled)
	assert.Equal(t, 0.0, res.TotalAmount)
	assert.Empty(t, res.SeatLabels)
	require.NotNil(t, store.payment)
	assert.Equal(t, 0.0, store.payment.Amount)
}

func TestCompleteBookingFailureStopsSequence(t *testing.T) {
	store := &fakeStore{failBooking: true}
	seq := NewSequencer(fixedDiscounts{})

	_, err := seq.Complete(context.Background(), store, checkoutReq())
	require.Error(t, err)
	assert.ErrorIs(t, err, errStore)
	assert.Nil(t, store.payment)
	assert.False(t, store.attachCalled)
	assert.False(t, store.ticketsCalled)
}

func TestCompletePaymentFailureStopsSequence(t *testing.T) {
	store := &fakeStore{failPayment: true}
	seq := NewSequencer(fixedDiscounts{})

	_, err := seq.Complete(context.Background(), store, checkoutReq())
	require.Error(t, err)
	assert.ErrorIs(t, err, errStore)
	assert.False(t, store.attachCalled)
	assert.False(t, store.ticketsCalled)
}

func TestCompleteAttachFailureStopsSequence(t *testing.T) {
	store := &fakeStore{failAttach: true}
	seq := NewSequencer(fixedDiscounts{})

	_, err := seq.Complete(context.Background(), store, checkoutReq())
	require.Error(t, err)
	assert.ErrorIs(t, err, errStore)
	assert.False(t, store.ticketsCalled)
}

func TestCompleteTicketFailureReported(t *testing.T) {
	store := &fakeStore{failTickets: true}
	seq := NewSequencer(fixedDiscounts{})

	_, err := seq.Complete(context.Background(), store, checkoutReq())
	require.Error(t, err)
	assert.ErrorIs(t, err, errStore)
}

func TestNewSequencerNilSourcePanics(t *testing.T) {
	assert.Panics(t, func() { NewSequencer(nil) })
}
