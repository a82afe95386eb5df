package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-bills/internal/domain"
	"github.com/fsdevblog/groph-bills/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bills/pkg/uow"
)

type ParticipantService struct {
	uow      uow.UOW
	retry    *conflictRetrier
	billRepo BillRepository
	prtRepo  ParticipantRepository
}

func NewParticipantService(u uow.UOW, opts Options) (*ParticipantService, error) {
	billRepo, err := poolRepo[BillRepository](u, repoargs.BillRepoName)
	if err != nil {
		return nil, err
	}
	prtRepo, err := poolRepo[ParticipantRepository](u, repoargs.ParticipantRepoName)
	if err != nil {
		return nil, err
	}
	return &ParticipantService{
		uow:      u,
		retry:    opts.retrier(u, "participant"),
		billRepo: billRepo,
		prtRepo:  prtRepo,
	}, nil
}

// Add добавляет пользователя в счёт с указанной долей. Нулевая доля считается оплаченной сразу.
//
// Ошибки:
//   - *domain.ValidationError доля отрицательная или больше двух знаков после запятой.
//   - *domain.DuplicateParticipantError пользователь уже участвует в счёте.
//   - domain.ErrInvariantViolation счёт закрыт.
//   - domain.ErrRecordNotFound счёта или пользователя нет.
func (s *ParticipantService) Add(
	ctx context.Context,
	billID, userID int64,
	share decimal.Decimal,
) (*domain.Participant, error) {
	if err := domain.ValidateMoney("share_amount", share); err != nil {
		return nil, fmt.Errorf("adding participant: %w", err)
	}

	var participant *domain.Participant
	txErr := s.retry.do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := getBillTxRepos(tx)
		if reposErr != nil {
			return reposErr
		}
		bill, lockErr := repos.bills.LockForUpdate(c, billID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if bill.IsSettled {
			return domain.NewInvariantError("bill %d is settled", billID)
		}

		var createErr error
		participant, createErr = repos.participants.Create(c, repoargs.CreateParticipant{
			BillID:      billID,
			UserID:      userID,
			ShareAmount: share,
			HasPaid:     !share.IsPositive(),
		})
		return mapDuplicateParticipant(createErr, billID, userID)
	})
	if txErr != nil {
		return nil, fmt.Errorf("adding participant: %w", txErr)
	}
	return participant, nil
}

// SplitEvenly делит сумму счёта поровну между userIDs и добавляет их участниками в одной транзакции.
// Остаток от деления до копеек достается последнему. Если хотя бы один пользователь уже участвует в счёте,
// не добавляется никто и возвращается *domain.DuplicateParticipantError. Если после добавления сумма долей
// всех участников не равна сумме счёта (в счёте уже были участники), возвращается *domain.InvariantError
// и транзакция откатывается.
func (s *ParticipantService) SplitEvenly(
	ctx context.Context,
	billID int64,
	userIDs []int64,
) ([]domain.Participant, error) {
	if err := validateUserIDs(userIDs); err != nil {
		return nil, fmt.Errorf("splitting bill %d: %w", billID, err)
	}

	var created []domain.Participant
	txErr := s.retry.do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := getBillTxRepos(tx)
		if reposErr != nil {
			return reposErr
		}
		bill, lockErr := repos.bills.LockForUpdate(c, billID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if bill.IsSettled {
			return domain.NewInvariantError("bill %d is settled", billID)
		}

		shares, splitErr := domain.SplitEvenly(bill.TotalAmount, len(userIDs))
		if splitErr != nil {
			return splitErr //nolint:wrapcheck
		}

		args := make([]repoargs.CreateParticipant, len(userIDs))
		for i, userID := range userIDs {
			args[i] = repoargs.CreateParticipant{
				BillID:      billID,
				UserID:      userID,
				ShareAmount: shares[i],
				HasPaid:     !shares[i].IsPositive(),
			}
		}

		created = make([]domain.Participant, len(userIDs))
		var batchErr error
		repos.participants.BatchCreate(c, args, func(i int, p *domain.Participant, err error) {
			if batchErr != nil {
				return
			}
			if err != nil {
				batchErr = mapDuplicateParticipant(err, billID, userIDs[i])
				return
			}
			created[i] = *p
		})
		if batchErr != nil {
			return batchErr
		}

		// сверяем со всеми участниками счёта, включая добавленных раньше через Add
		all, listErr := repos.participants.ListByBill(c, billID)
		if listErr != nil {
			return listErr //nolint:wrapcheck
		}
		shares = make([]decimal.Decimal, len(all))
		for i := range all {
			shares[i] = all[i].ShareAmount
		}
		return domain.CheckSplit(bill.TotalAmount, shares) //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("splitting bill %d: %w", billID, txErr)
	}
	return created, nil
}

// RecordPaymentEffect пересчитывает состояние оплаты участника по истории его платежей.
// Повторный вызов ничего не меняет.
func (s *ParticipantService) RecordPaymentEffect(ctx context.Context, participantID int64) (*domain.Participant, error) {
	var updated *domain.Participant
	txErr := s.retry.do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := getBillTxRepos(tx)
		if reposErr != nil {
			return reposErr
		}
		participant, err := repos.participants.GetByID(c, participantID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if _, lockErr := repos.bills.LockForUpdate(c, participant.BillID); lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		// состояние могло измениться, пока ждали блокировку
		if participant, err = repos.participants.GetByID(c, participantID); err != nil {
			return err //nolint:wrapcheck
		}

		updated, err = recordPaymentEffect(c, repos, participant)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("recording payment effect for participant %d: %w", participantID, txErr)
	}
	return updated, nil
}

// List участники счёта в порядке добавления. Для несуществующего счёта вернется domain.ErrRecordNotFound.
func (s *ParticipantService) List(ctx context.Context, billID int64) ([]domain.Participant, error) {
	if _, err := s.billRepo.GetByID(ctx, billID); err != nil {
		return nil, err //nolint:wrapcheck
	}
	participants, err := s.prtRepo.ListByBill(ctx, billID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return participants, nil
}

func validateUserIDs(userIDs []int64) error {
	if len(userIDs) == 0 {
		return domain.NewValidationError("user_ids", "must not be empty")
	}
	seen := make(map[int64]struct{}, len(userIDs))
	for _, id := range userIDs {
		if id <= 0 {
			return domain.NewValidationError("user_ids", fmt.Sprintf("invalid user id %d", id))
		}
		if _, ok := seen[id]; ok {
			return domain.NewValidationError("user_ids", fmt.Sprintf("duplicate user id %d", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}

// mapDuplicateParticipant превращает нарушение уникальности (bill_id, user_id) в ошибку домена.
func mapDuplicateParticipant(err error, billID, userID int64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrDuplicateKey) {
		return errors.Join(domain.NewDuplicateParticipantError(billID, userID), err)
	}
	return err
}
