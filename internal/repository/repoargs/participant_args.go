package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-bills/internal/domain"

	"github.com/shopspring/decimal"
)

type CreateParticipant struct {
	BillID      int64
	UserID      int64
	ShareAmount decimal.Decimal
	HasPaid     bool
}

type UpdatePaymentState struct {
	ParticipantID int64
	HasPaid       bool
	PaidAt        *time.Time
}

type ParticipantBatchQueryRow func(i int, p *domain.Participant, err error)
