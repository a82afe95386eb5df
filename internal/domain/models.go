package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// User внешняя идентичность. Записи счетов ссылаются на неё по ID и никогда не дублируют её данные.
type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
}

// Bill общий расход. Счёт владеет своими участниками и платежами.
type Bill struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedByID int64
	Title       string
	Description string
	TotalAmount decimal.Decimal
	IsSettled   bool
}

func (b Bill) String() string {
	return fmt.Sprintf("%s - $%s", b.Title, b.TotalAmount.StringFixed(MoneyDecimalPlaces))
}

// Participant доля одного пользователя в одном счёте. Пара (BillID, UserID) уникальна.
type Participant struct {
	ID          int64
	BillID      int64
	UserID      int64
	Username    string
	ShareAmount decimal.Decimal
	HasPaid     bool
	PaidAt      *time.Time
}

func (p Participant) String() string {
	return fmt.Sprintf("%s - $%s", p.Username, p.ShareAmount.StringFixed(MoneyDecimalPlaces))
}

// Payment неизменяемая запись о внесённых средствах.
type Payment struct {
	ID            int64
	BillID        int64
	BillTitle     string
	PayerID       int64
	PayerUsername string
	Amount        decimal.Decimal
	PaymentDate   time.Time
	Notes         string
}

func (p Payment) String() string {
	return fmt.Sprintf("%s paid $%s for %s", p.PayerUsername, p.Amount.StringFixed(MoneyDecimalPlaces), p.BillTitle)
}
