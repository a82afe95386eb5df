package repoargs

import "github.com/shopspring/decimal"

type CreateBill struct {
	CreatedByID int64
	Title       string
	Description string
	TotalAmount decimal.Decimal
}

// UpdateBill nil поля не изменяются. updated_at обновляется всегда.
type UpdateBill struct {
	Title       *string
	Description *string
	TotalAmount *decimal.Decimal
	IsSettled   *bool
}

// BillFilter параметры выборки счетов. Нулевые значения означают "без фильтра".
type BillFilter struct {
	CreatedByID int64
	// ParticipantID выбирает счета, в которых пользователь участвует или которые он создал.
	ParticipantID int64
	Settled       *bool
	// Search ищет подстроку в заголовке и описании без учета регистра.
	Search string
	Limit  uint
	Offset uint
}
