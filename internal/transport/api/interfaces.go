package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-bills/internal/domain"
	"github.com/fsdevblog/groph-bills/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bills/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, username string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

type BillServicer interface {
	Create(ctx context.Context, args service.CreateBillArgs) (*domain.Bill, error)
	Update(ctx context.Context, billID int64, args service.UpdateBillArgs) (*domain.Bill, error)
	Delete(ctx context.Context, billID int64) error
	MarkSettled(ctx context.Context, billID int64) (*domain.Bill, error)
	Details(ctx context.Context, billID int64) (*domain.BillDetails, error)
	List(ctx context.Context, filter repoargs.BillFilter) ([]domain.Bill, error)
	ListActive(ctx context.Context, userID int64) ([]domain.Bill, error)
	ListSettled(ctx context.Context, userID int64) ([]domain.Bill, error)
}

type ParticipantServicer interface {
	Add(ctx context.Context, billID, userID int64, share decimal.Decimal) (*domain.Participant, error)
	SplitEvenly(ctx context.Context, billID int64, userIDs []int64) ([]domain.Participant, error)
	List(ctx context.Context, billID int64) ([]domain.Participant, error)
}

type PaymentServicer interface {
	Create(ctx context.Context, args service.CreatePaymentArgs) (*service.PaymentResult, error)
	List(ctx context.Context, billID int64) ([]domain.Payment, error)
}
