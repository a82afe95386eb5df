package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-bills/internal/domain"
	"github.com/fsdevblog/groph-bills/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bills/pkg/uow"
)

type BillService struct {
	uow      uow.UOW
	retry    *conflictRetrier
	metrics  MetricsRecorder
	billRepo BillRepository
}

func NewBillService(u uow.UOW, opts Options) (*BillService, error) {
	billRepo, err := poolRepo[BillRepository](u, repoargs.BillRepoName)
	if err != nil {
		return nil, err
	}
	retry := opts.retrier(u, "bill")
	return &BillService{
		uow:      u,
		retry:    retry,
		metrics:  retry.metrics,
		billRepo: billRepo,
	}, nil
}

type CreateBillArgs struct {
	CreatedByID int64
	Title       string
	Description string
	TotalAmount decimal.Decimal
}

// Create создает неоплаченный счёт. Возвращает *domain.ValidationError при пустом заголовке или некорректной сумме,
// domain.ErrRecordNotFound если автора не существует.
func (b *BillService) Create(ctx context.Context, args CreateBillArgs) (*domain.Bill, error) {
	if err := domain.ValidateTitle(args.Title); err != nil {
		return nil, fmt.Errorf("creating bill: %w", err)
	}
	if err := domain.ValidateMoney("total_amount", args.TotalAmount); err != nil {
		return nil, fmt.Errorf("creating bill: %w", err)
	}

	bill, err := b.billRepo.Create(ctx, repoargs.CreateBill{
		CreatedByID: args.CreatedByID,
		Title:       args.Title,
		Description: args.Description,
		TotalAmount: args.TotalAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("creating bill: %w", err)
	}
	return bill, nil
}

// UpdateBillArgs nil поля не изменяются.
type UpdateBillArgs struct {
	Title       *string
	Description *string
	TotalAmount *decimal.Decimal
}

// Update изменяет поля счёта и обновляет updated_at. Сумму закрытого счёта и счёта с участниками менять нельзя.
func (b *BillService) Update(ctx context.Context, billID int64, args UpdateBillArgs) (*domain.Bill, error) {
	if args.Title != nil {
		if err := domain.ValidateTitle(*args.Title); err != nil {
			return nil, fmt.Errorf("updating bill: %w", err)
		}
	}
	if args.TotalAmount != nil {
		if err := domain.ValidateMoney("total_amount", *args.TotalAmount); err != nil {
			return nil, fmt.Errorf("updating bill: %w", err)
		}
	}

	var updated *domain.Bill
	txErr := b.retry.do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := getBillTxRepos(tx)
		if reposErr != nil {
			return reposErr
		}
		bill, lockErr := repos.bills.LockForUpdate(c, billID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if args.TotalAmount != nil && !args.TotalAmount.Equal(bill.TotalAmount) {
			if bill.IsSettled {
				return domain.NewInvariantError("total amount of a settled bill cannot be changed")
			}
			// доли участников считались от старой суммы
			participants, listErr := repos.participants.ListByBill(c, billID)
			if listErr != nil {
				return listErr //nolint:wrapcheck
			}
			if len(participants) > 0 {
				return domain.NewInvariantError("total amount of bill %d with participants cannot be changed", billID)
			}
		}

		var updErr error
		updated, updErr = repos.bills.Update(c, billID, repoargs.UpdateBill{
			Title:       args.Title,
			Description: args.Description,
			TotalAmount: args.TotalAmount,
		})
		return updErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("updating bill %d: %w", billID, txErr)
	}
	return updated, nil
}

// Delete удаляет счёт вместе с платежами и участниками в одной транзакции. Частичное удаление невозможно:
// любая ошибка откатывает всё.
func (b *BillService) Delete(ctx context.Context, billID int64) error {
	txErr := b.retry.do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := getBillTxRepos(tx)
		if reposErr != nil {
			return reposErr
		}
		if _, lockErr := repos.bills.LockForUpdate(c, billID); lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if _, err := repos.payments.DeleteByBill(c, billID); err != nil {
			return err //nolint:wrapcheck
		}
		if _, err := repos.participants.DeleteByBill(c, billID); err != nil {
			return err //nolint:wrapcheck
		}
		return repos.bills.Delete(c, billID) //nolint:wrapcheck
	})
	if txErr != nil {
		return fmt.Errorf("deleting bill %d: %w", billID, txErr)
	}
	return nil
}

// MarkSettled закрывает счёт, если у него есть участники и все они оплатили свою долю. Иначе возвращает
// ошибку domain.ErrInvariantViolation. Повторный вызов для закрытого счёта ничего не меняет и ошибкой не является.
func (b *BillService) MarkSettled(ctx context.Context, billID int64) (*domain.Bill, error) {
	var settled *domain.Bill
	var changed bool
	txErr := b.retry.do(ctx, func(c context.Context, tx uow.TX) error {
		changed = false
		repos, reposErr := getBillTxRepos(tx)
		if reposErr != nil {
			return reposErr
		}
		bill, lockErr := repos.bills.LockForUpdate(c, billID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if bill.IsSettled {
			settled = bill
			return nil
		}

		participants, listErr := repos.participants.ListByBill(c, billID)
		if listErr != nil {
			return listErr //nolint:wrapcheck
		}
		if err := domain.CanSettle(participants); err != nil {
			return err //nolint:wrapcheck
		}

		isSettled := true
		var updErr error
		settled, updErr = repos.bills.Update(c, billID, repoargs.UpdateBill{IsSettled: &isSettled})
		changed = updErr == nil
		return updErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("settling bill %d: %w", billID, txErr)
	}
	if changed {
		b.metrics.BillSettled()
		b.retry.l.WithField("bill_id", billID).Infof("bill settled: %s", settled)
	}
	return settled, nil
}

func (b *BillService) Get(ctx context.Context, billID int64) (*domain.Bill, error) {
	bill, err := b.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return bill, nil
}

// Details возвращает счёт с участниками, их остатками и платежами. Все чтения выполняются в одной транзакции.
func (b *BillService) Details(ctx context.Context, billID int64) (*domain.BillDetails, error) {
	var details *domain.BillDetails
	txErr := b.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := getBillTxRepos(tx)
		if reposErr != nil {
			return reposErr
		}
		bill, err := repos.bills.GetByID(c, billID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		participants, err := repos.participants.ListByBill(c, billID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		payments, err := repos.payments.ListByBill(c, billID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		details = domain.NewBillDetails(*bill, participants, payments)
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("bill %d details: %w", billID, txErr)
	}
	return details, nil
}

// List возвращает счета по фильтру, отсортированные по дате создания по убыванию.
func (b *BillService) List(ctx context.Context, filter repoargs.BillFilter) ([]domain.Bill, error) {
	bills, err := b.billRepo.List(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return bills, nil
}

// ListActive незакрытые счета, которые userID создал или в которых участвует. userID = 0 - счета всех юзеров.
func (b *BillService) ListActive(ctx context.Context, userID int64) ([]domain.Bill, error) {
	settled := false
	return b.List(ctx, repoargs.BillFilter{ParticipantID: userID, Settled: &settled})
}

// ListSettled закрытые (прошлые) счета, аналогично ListActive.
func (b *BillService) ListSettled(ctx context.Context, userID int64) ([]domain.Bill, error) {
	settled := true
	return b.List(ctx, repoargs.BillFilter{ParticipantID: userID, Settled: &settled})
}
