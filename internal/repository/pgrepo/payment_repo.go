package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-bills/internal/domain"
	"github.com/fsdevblog/groph-bills/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bills/pkg/uow"
)

const (
	paymentColumns = "pm.id, pm.bill_id, b.title, pm.payer_id, u.username, pm.amount, pm.payment_date, pm.notes"
	paymentJoins   = ` JOIN users u ON u.id = pm.payer_id JOIN bills b ON b.id = pm.bill_id`
	paymentSelect  = `SELECT ` + paymentColumns + ` FROM payments pm` + paymentJoins
)

type PaymentRepository struct {
	conn uow.DBTX
}

func NewPaymentRepository(conn uow.DBTX) *PaymentRepository {
	return &PaymentRepository{conn: conn}
}

// Create добавляет платеж. payment_date берется из clock_timestamp(), чтобы платежи внутри одной транзакции
// сохраняли порядок.
func (p *PaymentRepository) Create(ctx context.Context, args repoargs.CreatePayment) (*domain.Payment, error) {
	row := p.conn.QueryRow(ctx,
		`WITH pm AS (
			INSERT INTO payments (bill_id, payer_id, amount, notes, payment_date)
			VALUES ($1, $2, $3, $4, clock_timestamp())
			RETURNING id, bill_id, payer_id, amount, payment_date, notes
		)
		SELECT `+paymentColumns+` FROM pm`+paymentJoins,
		args.BillID, args.PayerID, args.Amount, args.Notes,
	)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "creating payment (bill %d, payer %d)", args.BillID, args.PayerID)
	}
	return payment, nil
}

// ListByBill возвращает платежи счёта, новые первыми.
func (p *PaymentRepository) ListByBill(ctx context.Context, billID int64) ([]domain.Payment, error) {
	return p.list(ctx, "listing payments of bill %d",
		paymentSelect+` WHERE pm.bill_id = $1 ORDER BY pm.payment_date DESC, pm.id DESC`, billID)
}

// ListByBillAndPayer возвращает платежи одного плательщика по счёту, новые первыми.
func (p *PaymentRepository) ListByBillAndPayer(ctx context.Context, billID, payerID int64) ([]domain.Payment, error) {
	return p.list(ctx, "listing payments of bill %d",
		paymentSelect+` WHERE pm.bill_id = $1 AND pm.payer_id = $2 ORDER BY pm.payment_date DESC, pm.id DESC`,
		billID, payerID)
}

// DeleteByBill удаляет все платежи счёта и возвращает их количество.
func (p *PaymentRepository) DeleteByBill(ctx context.Context, billID int64) (int64, error) {
	tag, err := p.conn.Exec(ctx, `DELETE FROM payments WHERE bill_id = $1`, billID)
	if err != nil {
		return 0, convertErr(err, "deleting payments of bill %d", billID)
	}
	return tag.RowsAffected(), nil
}

func (p *PaymentRepository) list(ctx context.Context, errFormat, query string, args ...any) ([]domain.Payment, error) {
	rows, err := p.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, errFormat, args[0])
	}
	defer rows.Close()

	var payments = make([]domain.Payment, 0)
	for rows.Next() {
		payment, scanErr := scanPayment(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning payment")
		}
		payments = append(payments, *payment)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, errFormat, args[0])
	}
	return payments, nil
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var payment domain.Payment
	err := row.Scan(
		&payment.ID,
		&payment.BillID,
		&payment.BillTitle,
		&payment.PayerID,
		&payment.PayerUsername,
		&payment.Amount,
		&payment.PaymentDate,
		&payment.Notes,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &payment, nil
}
