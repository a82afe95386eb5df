package uow

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRetryable = errors.New("retryable")

type stubPool struct {
	DBTX
	tx       pgx.Tx
	beginErr error
}

func (p *stubPool) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	return p.tx, p.beginErr
}

type stubTx struct {
	pgx.Tx
	commitErr  error
	rolledBack bool
}

func (t *stubTx) Commit(context.Context) error { return t.commitErr }

func (t *stubTx) Rollback(context.Context) error {
	t.rolledBack = true
	return pgx.ErrTxClosed
}

func newTestUOW(p *stubPool) *UnitOfWork {
	u := NewUnitOfWork(nil, WithErrConverter(func(err error, op string) error {
		return fmt.Errorf("%s: %w (%s)", op, errRetryable, err.Error())
	}))
	u.conn = p
	return u
}

func TestUnitOfWork_Do(t *testing.T) {
	noop := func(context.Context, TX) error { return nil }

	t.Run("commit", func(t *testing.T) {
		tx := &stubTx{}
		require.NoError(t, newTestUOW(&stubPool{tx: tx}).Do(t.Context(), noop))
		assert.True(t, tx.rolledBack)
	})

	t.Run("begin error is converted", func(t *testing.T) {
		err := newTestUOW(&stubPool{beginErr: errors.New("conn refused")}).Do(t.Context(), noop)
		require.ErrorIs(t, err, errRetryable)
		assert.Contains(t, err.Error(), "begin transaction")
	})

	t.Run("commit error is converted", func(t *testing.T) {
		tx := &stubTx{commitErr: errors.New("could not serialize access")}
		err := newTestUOW(&stubPool{tx: tx}).Do(t.Context(), noop)
		require.ErrorIs(t, err, errRetryable)
		assert.Contains(t, err.Error(), "commit transaction")
	})

	t.Run("fn error skips commit", func(t *testing.T) {
		fnErr := errors.New("rejected")
		tx := &stubTx{commitErr: errors.New("must not be reached")}
		err := newTestUOW(&stubPool{tx: tx}).Do(t.Context(), func(context.Context, TX) error { return fnErr })
		require.ErrorIs(t, err, fnErr)
		assert.NotErrorIs(t, err, errRetryable)
		assert.True(t, tx.rolledBack)
	})
}
