package domain

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentState производное состояние оплаты участника.
type PaymentState struct {
	Paid    decimal.Decimal
	HasPaid bool
	PaidAt  *time.Time
}

// DerivePaymentState вычисляет has_paid/paid_at участника по истории платежей.
//
// Учитываются только платежи участника в его счёте, в порядке даты платежа (при равенстве по ID).
// PaidAt - дата платежа, на котором накопленная сумма впервые достигла доли. Результат зависит только
// от истории, поэтому повторный вызов всегда дает то же самое.
func DerivePaymentState(p Participant, payments []Payment) PaymentState {
	own := make([]Payment, 0, len(payments))
	for _, payment := range payments {
		if payment.BillID == p.BillID && payment.PayerID == p.UserID {
			own = append(own, payment)
		}
	}
	slices.SortFunc(own, func(a, b Payment) int {
		if c := a.PaymentDate.Compare(b.PaymentDate); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	state := PaymentState{Paid: decimal.Zero}
	if !p.ShareAmount.IsPositive() {
		// нулевая доля оплачена с самого начала
		state.HasPaid = true
	}

	for _, payment := range own {
		state.Paid = state.Paid.Add(payment.Amount)
		if !state.HasPaid && state.Paid.GreaterThanOrEqual(p.ShareAmount) {
			paidAt := payment.PaymentDate
			state.HasPaid = true
			state.PaidAt = &paidAt
		}
	}
	return state
}

// Outstanding остаток долга участника. Переплата не делает остаток отрицательным.
func Outstanding(share, paid decimal.Decimal) decimal.Decimal {
	rest := share.Sub(paid)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}

// CanSettle проверяет, что счёт можно закрыть: есть хотя бы один участник и все участники оплатили долю.
func CanSettle(participants []Participant) error {
	if len(participants) == 0 {
		return NewInvariantError("bill has no participants")
	}
	var unpaid int
	for _, p := range participants {
		if !p.HasPaid {
			unpaid++
		}
	}
	if unpaid > 0 {
		return NewInvariantError("bill has %d unpaid participant(s)", unpaid)
	}
	return nil
}
