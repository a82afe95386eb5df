package domain

import "github.com/shopspring/decimal"

// ParticipantBalance участник вместе с производными суммами по его платежам.
type ParticipantBalance struct {
	Participant
	Paid        decimal.Decimal
	Outstanding decimal.Decimal
}

// BillDetails полная проекция счёта: сам счёт, участники с остатками и платежи (новые первыми).
type BillDetails struct {
	Bill         Bill
	Participants []ParticipantBalance
	Payments     []Payment
	Outstanding  decimal.Decimal
}

// NewBillDetails собирает BillDetails, вычисляя остатки по истории платежей.
func NewBillDetails(bill Bill, participants []Participant, payments []Payment) *BillDetails {
	details := &BillDetails{
		Bill:         bill,
		Participants: make([]ParticipantBalance, len(participants)),
		Payments:     payments,
		Outstanding:  decimal.Zero,
	}
	for i, p := range participants {
		state := DerivePaymentState(p, payments)
		outstanding := Outstanding(p.ShareAmount, state.Paid)
		details.Participants[i] = ParticipantBalance{
			Participant: p,
			Paid:        state.Paid,
			Outstanding: outstanding,
		}
		details.Outstanding = details.Outstanding.Add(outstanding)
	}
	return details
}
