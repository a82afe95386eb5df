package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-bills/internal/domain"
	"github.com/fsdevblog/groph-bills/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bills/pkg/uow"
)

const (
	DefaultConflictRetries uint = 3
	defaultRetryBaseDelay       = 20 * time.Millisecond
)

// jitter возвращает число, рассыпавшееся относительно value на случайный процент в пределах
// [1-minPercent, 1+maxPercent].
// Например, если minPercent=0.15, maxPercent=0.15, получим диапазон [0.85*value, 1.15*value].
//
// minPercent и maxPercent должны быть >= 0 (0.1 = 10%). Если указано иное, значение выставится в 0.15.
func jitter(value, minPercent, maxPercent float64) float64 {
	if minPercent < 0 || maxPercent < 0 {
		minPercent = 0.15
		maxPercent = 0.15
	}
	factor := 1 - minPercent + rand.Float64()*(minPercent+maxPercent) // nolint:gosec
	return value * factor
}

// conflictRetrier повторяет unit of work при domain.ErrConcurrencyConflict.
type conflictRetrier struct {
	uow       uow.UOW
	attempts  uint
	baseDelay time.Duration
	metrics   MetricsRecorder
	l         *logrus.Entry
}

// do выполняет fn в транзакции. При конфликте транзакция откатывается и fn запускается заново, но не больше
// attempts раз; пауза между попытками растет линейно с разбросом. Если попытки кончились, возвращает ошибку,
// оборачивающую domain.ErrConcurrencyConflict.
func (r *conflictRetrier) do(ctx context.Context, fn func(context.Context, uow.TX) error) error {
	var err error
	for attempt := uint(1); ; attempt++ {
		err = r.uow.Do(ctx, fn)
		if err == nil || !errors.Is(err, domain.ErrConcurrencyConflict) {
			return err
		}
		if attempt >= r.attempts {
			return fmt.Errorf("giving up after %d attempts: %w", attempt, err)
		}

		r.metrics.ConflictRetried()
		delay := time.Duration(jitter(float64(r.baseDelay)*float64(attempt), 0.15, 0.15))
		r.l.WithError(err).
			WithField("attempt", fmt.Sprintf("#%d / %d", attempt, r.attempts)).
			Warnf("concurrency conflict, retrying in %s", delay)

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(delay):
		}
	}
}

func txRepo[T any](tx uow.TX, name repoargs.RepositoryName) (T, error) {
	return uow.GetAs[T](tx, uow.RepositoryName(name)) //nolint:wrapcheck
}

func poolRepo[T any](u uow.UOW, name repoargs.RepositoryName) (T, error) {
	return uow.GetRepositoryAs[T](u, uow.RepositoryName(name)) //nolint:wrapcheck
}

// billTxRepos репозитории счёта в рамках одной транзакции.
type billTxRepos struct {
	bills        BillRepository
	participants ParticipantRepository
	payments     PaymentRepository
}

func getBillTxRepos(tx uow.TX) (*billTxRepos, error) {
	bills, err := txRepo[BillRepository](tx, repoargs.BillRepoName)
	if err != nil {
		return nil, err
	}
	participants, err := txRepo[ParticipantRepository](tx, repoargs.ParticipantRepoName)
	if err != nil {
		return nil, err
	}
	payments, err := txRepo[PaymentRepository](tx, repoargs.PaymentRepoName)
	if err != nil {
		return nil, err
	}
	return &billTxRepos{bills: bills, participants: participants, payments: payments}, nil
}

// recordPaymentEffect пересчитывает has_paid/paid_at участника по истории его платежей и сохраняет результат,
// если он отличается от текущего. Вызывается под блокировкой счёта.
func recordPaymentEffect(
	ctx context.Context,
	repos *billTxRepos,
	participant *domain.Participant,
) (*domain.Participant, error) {
	payments, err := repos.payments.ListByBillAndPayer(ctx, participant.BillID, participant.UserID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	state := domain.DerivePaymentState(*participant, payments)
	if state.HasPaid == participant.HasPaid && sameTime(state.PaidAt, participant.PaidAt) {
		return participant, nil
	}

	if err := repos.participants.UpdatePaymentState(ctx, repoargs.UpdatePaymentState{
		ParticipantID: participant.ID,
		HasPaid:       state.HasPaid,
		PaidAt:        state.PaidAt,
	}); err != nil {
		return nil, err //nolint:wrapcheck
	}

	updated := *participant
	updated.HasPaid = state.HasPaid
	updated.PaidAt = state.PaidAt
	return &updated, nil
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
