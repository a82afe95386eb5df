package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivePaymentState(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	participant := Participant{
		ID:          1,
		BillID:      10,
		UserID:      100,
		ShareAmount: decimal.RequireFromString("33.34"),
	}

	payment := func(id int64, payer int64, amount string, offset time.Duration) Payment {
		return Payment{
			ID:          id,
			BillID:      10,
			PayerID:     payer,
			Amount:      decimal.RequireFromString(amount),
			PaymentDate: base.Add(offset),
		}
	}

	cases := []struct {
		name       string
		payments   []Payment
		wantPaid   string
		wantHas    bool
		wantPaidAt *time.Time
	}{
		{name: "no payments", wantPaid: "0"},
		{
			name:     "partial",
			payments: []Payment{payment(1, 100, "10.00", 0)},
			wantPaid: "10.00",
		},
		{
			name: "crossing payment sets paid at",
			payments: []Payment{
				// порядок во входном срезе не важен
				payment(3, 100, "5.00", 2*time.Hour),
				payment(1, 100, "20.00", 0),
				payment(2, 100, "13.34", time.Hour),
			},
			wantPaid:   "38.34",
			wantHas:    true,
			wantPaidAt: ptr(base.Add(time.Hour)),
		},
		{
			name: "other payers and bills are ignored",
			payments: []Payment{
				payment(1, 200, "100.00", 0),
				{ID: 2, BillID: 11, PayerID: 100, Amount: decimal.NewFromInt(100), PaymentDate: base},
			},
			wantPaid: "0",
		},
		{
			name:       "exact single payment",
			payments:   []Payment{payment(1, 100, "33.34", 0)},
			wantPaid:   "33.34",
			wantHas:    true,
			wantPaidAt: ptr(base),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := DerivePaymentState(participant, tc.payments)
			assert.True(t, decimal.RequireFromString(tc.wantPaid).Equal(state.Paid), "paid %s", state.Paid)
			assert.Equal(t, tc.wantHas, state.HasPaid)
			if tc.wantPaidAt == nil {
				assert.Nil(t, state.PaidAt)
			} else {
				require.NotNil(t, state.PaidAt)
				assert.True(t, tc.wantPaidAt.Equal(*state.PaidAt))
			}
		})
	}
}

func TestDerivePaymentState_Idempotent(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	participant := Participant{BillID: 1, UserID: 2, ShareAmount: decimal.NewFromInt(50)}
	payments := []Payment{
		{ID: 1, BillID: 1, PayerID: 2, Amount: decimal.NewFromInt(30), PaymentDate: base},
		{ID: 2, BillID: 1, PayerID: 2, Amount: decimal.NewFromInt(30), PaymentDate: base.Add(time.Minute)},
	}

	first := DerivePaymentState(participant, payments)
	for range 5 {
		// результат прошлого вычисления не влияет на следующее
		participant.HasPaid = first.HasPaid
		participant.PaidAt = first.PaidAt
		again := DerivePaymentState(participant, payments)
		assert.Equal(t, first.HasPaid, again.HasPaid)
		require.NotNil(t, again.PaidAt)
		assert.True(t, first.PaidAt.Equal(*again.PaidAt))
		assert.True(t, first.Paid.Equal(again.Paid))
	}
}

func TestDerivePaymentState_ZeroShare(t *testing.T) {
	state := DerivePaymentState(Participant{ShareAmount: decimal.Zero}, nil)
	assert.True(t, state.HasPaid)
	assert.Nil(t, state.PaidAt)
}

func TestOutstanding(t *testing.T) {
	assert.True(t, decimal.NewFromInt(5).Equal(Outstanding(decimal.NewFromInt(15), decimal.NewFromInt(10))))
	assert.True(t, decimal.Zero.Equal(Outstanding(decimal.NewFromInt(10), decimal.NewFromInt(15))))
}

func TestCanSettle(t *testing.T) {
	require.ErrorIs(t, CanSettle(nil), ErrInvariantViolation)
	require.ErrorIs(t, CanSettle([]Participant{{HasPaid: true}, {HasPaid: false}}), ErrInvariantViolation)
	require.NoError(t, CanSettle([]Participant{{HasPaid: true}, {HasPaid: true}}))
}

func TestNewBillDetails(t *testing.T) {
	base := time.Now()
	bill := Bill{ID: 1, Title: "Dinner", TotalAmount: decimal.NewFromInt(100)}
	participants := []Participant{
		{ID: 1, BillID: 1, UserID: 1, ShareAmount: decimal.NewFromInt(60)},
		{ID: 2, BillID: 1, UserID: 2, ShareAmount: decimal.NewFromInt(40)},
	}
	payments := []Payment{
		{ID: 1, BillID: 1, PayerID: 1, Amount: decimal.NewFromInt(70), PaymentDate: base},
		{ID: 2, BillID: 1, PayerID: 2, Amount: decimal.NewFromInt(15), PaymentDate: base},
	}

	details := NewBillDetails(bill, participants, payments)
	require.Len(t, details.Participants, 2)
	assert.True(t, decimal.Zero.Equal(details.Participants[0].Outstanding))
	assert.True(t, decimal.NewFromInt(25).Equal(details.Participants[1].Outstanding))
	assert.True(t, decimal.NewFromInt(25).Equal(details.Outstanding))
}

func ptr[T any](v T) *T {
	return &v
}
