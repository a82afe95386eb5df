package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-bills/internal/domain"
	"github.com/fsdevblog/groph-bills/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bills/pkg/uow"
)

type PaymentService struct {
	uow      uow.UOW
	retry    *conflictRetrier
	metrics  MetricsRecorder
	billRepo BillRepository
	pmtRepo  PaymentRepository
}

func NewPaymentService(u uow.UOW, opts Options) (*PaymentService, error) {
	billRepo, err := poolRepo[BillRepository](u, repoargs.BillRepoName)
	if err != nil {
		return nil, err
	}
	pmtRepo, err := poolRepo[PaymentRepository](u, repoargs.PaymentRepoName)
	if err != nil {
		return nil, err
	}
	retry := opts.retrier(u, "payment")
	return &PaymentService{
		uow:      u,
		retry:    retry,
		metrics:  retry.metrics,
		billRepo: billRepo,
		pmtRepo:  pmtRepo,
	}, nil
}

type CreatePaymentArgs struct {
	BillID  int64
	PayerID int64
	Amount  decimal.Decimal
	Notes   string
}

// PaymentResult записанный платеж и состояние участника после него.
type PaymentResult struct {
	Payment     *domain.Payment
	Participant *domain.Participant
}

// Create записывает платеж и пересчитывает состояние оплаты плательщика в той же транзакции.
//
// Ошибки:
//   - *domain.ValidationError сумма не положительная или плательщик не участвует в счёте.
//   - domain.ErrInvariantViolation счёт закрыт.
//   - domain.ErrRecordNotFound счёта нет.
func (p *PaymentService) Create(ctx context.Context, args CreatePaymentArgs) (*PaymentResult, error) {
	if err := domain.ValidatePositiveMoney("amount", args.Amount); err != nil {
		return nil, fmt.Errorf("creating payment: %w", err)
	}

	var result PaymentResult
	txErr := p.retry.do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := getBillTxRepos(tx)
		if reposErr != nil {
			return reposErr
		}
		bill, lockErr := repos.bills.LockForUpdate(c, args.BillID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if bill.IsSettled {
			return domain.NewInvariantError("bill %d is settled", args.BillID)
		}

		participant, findErr := repos.participants.FindByBillAndUser(c, args.BillID, args.PayerID)
		if findErr != nil {
			if errors.Is(findErr, domain.ErrRecordNotFound) {
				return domain.NewValidationError("payer_id", "payer does not participate in the bill")
			}
			return findErr //nolint:wrapcheck
		}

		payment, createErr := repos.payments.Create(c, repoargs.CreatePayment{
			BillID:  args.BillID,
			PayerID: args.PayerID,
			Amount:  args.Amount,
			Notes:   strings.TrimSpace(args.Notes),
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		updated, effectErr := recordPaymentEffect(c, repos, participant)
		if effectErr != nil {
			return effectErr
		}
		result = PaymentResult{Payment: payment, Participant: updated}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating payment: %w", txErr)
	}

	p.metrics.PaymentRecorded()
	p.retry.l.WithFields(logrus.Fields{
		"bill_id":  args.BillID,
		"has_paid": result.Participant.HasPaid,
	}).Info(result.Payment.String())
	return &result, nil
}

// List платежи счёта, сначала новые.
func (p *PaymentService) List(ctx context.Context, billID int64) ([]domain.Payment, error) {
	if _, err := p.billRepo.GetByID(ctx, billID); err != nil {
		return nil, err //nolint:wrapcheck
	}
	payments, err := p.pmtRepo.ListByBill(ctx, billID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return payments, nil
}
