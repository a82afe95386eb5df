package repoargs

import "github.com/shopspring/decimal"

type CreatePayment struct {
	BillID  int64
	PayerID int64
	Amount  decimal.Decimal
	Notes   string
}
