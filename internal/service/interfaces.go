package service

import (
	"context"

	"github.com/fsdevblog/groph-bills/internal/domain"
	"github.com/fsdevblog/groph-bills/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type BillRepository interface {
	Create(ctx context.Context, args repoargs.CreateBill) (*domain.Bill, error)
	GetByID(ctx context.Context, id int64) (*domain.Bill, error)
	LockForUpdate(ctx context.Context, id int64) (*domain.Bill, error)
	Update(ctx context.Context, id int64, args repoargs.UpdateBill) (*domain.Bill, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter repoargs.BillFilter) ([]domain.Bill, error)
}

type ParticipantRepository interface {
	Create(ctx context.Context, args repoargs.CreateParticipant) (*domain.Participant, error)
	BatchCreate(ctx context.Context, args []repoargs.CreateParticipant, fn repoargs.ParticipantBatchQueryRow)
	GetByID(ctx context.Context, id int64) (*domain.Participant, error)
	FindByBillAndUser(ctx context.Context, billID, userID int64) (*domain.Participant, error)
	ListByBill(ctx context.Context, billID int64) ([]domain.Participant, error)
	UpdatePaymentState(ctx context.Context, args repoargs.UpdatePaymentState) error
	DeleteByBill(ctx context.Context, billID int64) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, args repoargs.CreatePayment) (*domain.Payment, error)
	ListByBill(ctx context.Context, billID int64) ([]domain.Payment, error)
	ListByBillAndPayer(ctx context.Context, billID, payerID int64) ([]domain.Payment, error)
	DeleteByBill(ctx context.Context, billID int64) (int64, error)
}

// MetricsRecorder счетчики доменных событий.
type MetricsRecorder interface {
	PaymentRecorded()
	BillSettled()
	ConflictRetried()
}

type nopMetrics struct{}

func (nopMetrics) PaymentRecorded() {}
func (nopMetrics) BillSettled()     {}
func (nopMetrics) ConflictRetried() {}
