package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-bills/internal/domain"
)

// Денежные суммы отдаются строкой с двумя знаками после запятой.
func money(d decimal.Decimal) string {
	return d.StringFixed(domain.MoneyDecimalPlaces)
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}
}

type BillResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TotalAmount string    `json:"total_amount"`
	CreatedByID int64     `json:"created_by_id"`
	IsSettled   bool      `json:"is_settled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newBillResponse(b *domain.Bill) BillResponse {
	return BillResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		TotalAmount: money(b.TotalAmount),
		CreatedByID: b.CreatedByID,
		IsSettled:   b.IsSettled,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

type ParticipantResponse struct {
	ID          int64      `json:"id"`
	BillID      int64      `json:"bill_id"`
	UserID      int64      `json:"user_id"`
	Username    string     `json:"username"`
	ShareAmount string     `json:"share_amount"`
	HasPaid     bool       `json:"has_paid"`
	PaidAt      *time.Time `json:"paid_at"`
	Paid        string     `json:"paid,omitempty"`
	Outstanding string     `json:"outstanding,omitempty"`
}

func newParticipantResponse(p *domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:          p.ID,
		BillID:      p.BillID,
		UserID:      p.UserID,
		Username:    p.Username,
		ShareAmount: money(p.ShareAmount),
		HasPaid:     p.HasPaid,
		PaidAt:      p.PaidAt,
	}
}

type PaymentResponse struct {
	ID            int64     `json:"id"`
	BillID        int64     `json:"bill_id"`
	BillTitle     string    `json:"bill_title"`
	PayerID       int64     `json:"payer_id"`
	PayerUsername string    `json:"payer_username"`
	Amount        string    `json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	Notes         string    `json:"notes"`
}

func newPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		BillID:        p.BillID,
		BillTitle:     p.BillTitle,
		PayerID:       p.PayerID,
		PayerUsername: p.PayerUsername,
		Amount:        money(p.Amount),
		PaymentDate:   p.PaymentDate,
		Notes:         p.Notes,
	}
}

type BillDetailsResponse struct {
	BillResponse
	Outstanding  string                `json:"outstanding"`
	Participants []ParticipantResponse `json:"participants"`
	Payments     []PaymentResponse     `json:"payments"`
}

func newBillDetailsResponse(d *domain.BillDetails) BillDetailsResponse {
	res := BillDetailsResponse{
		BillResponse: newBillResponse(&d.Bill),
		Outstanding:  money(d.Outstanding),
		Participants: make([]ParticipantResponse, len(d.Participants)),
		Payments:     make([]PaymentResponse, len(d.Payments)),
	}
	for i := range d.Participants {
		p := newParticipantResponse(&d.Participants[i].Participant)
		p.Paid = money(d.Participants[i].Paid)
		p.Outstanding = money(d.Participants[i].Outstanding)
		res.Participants[i] = p
	}
	for i := range d.Payments {
		res.Payments[i] = newPaymentResponse(&d.Payments[i])
	}
	return res
}
