package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-bills/internal/domain"
	"github.com/fsdevblog/groph-bills/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bills/pkg/uow"
)

const billColumns = "id, created_at, updated_at, created_by_id, title, description, total_amount, is_settled"

type BillRepository struct {
	conn uow.DBTX
}

func NewBillRepository(conn uow.DBTX) *BillRepository {
	return &BillRepository{conn: conn}
}

// Create создает счёт. created_at и updated_at берутся из одного now(), поэтому при создании равны.
// Если автора не существует, возвращает domain.ErrRecordNotFound.
func (b *BillRepository) Create(ctx context.Context, args repoargs.CreateBill) (*domain.Bill, error) {
	row := b.conn.QueryRow(ctx,
		`INSERT INTO bills (created_by_id, title, description, total_amount, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, now(), now())
		 RETURNING `+billColumns,
		args.CreatedByID, args.Title, args.Description, args.TotalAmount,
	)
	bill, err := scanBill(row)
	if err != nil {
		return nil, convertErr(err, "creating bill")
	}
	return bill, nil
}

func (b *BillRepository) GetByID(ctx context.Context, id int64) (*domain.Bill, error) {
	row := b.conn.QueryRow(ctx, `SELECT `+billColumns+` FROM bills WHERE id = $1`, id)
	bill, err := scanBill(row)
	if err != nil {
		return nil, convertErr(err, "getting bill by id %d", id)
	}
	return bill, nil
}

// LockForUpdate читает счёт с блокировкой строки до конца транзакции. Через эту блокировку сериализуются
// все изменения участников и платежей одного счёта.
func (b *BillRepository) LockForUpdate(ctx context.Context, id int64) (*domain.Bill, error) {
	row := b.conn.QueryRow(ctx, `SELECT `+billColumns+` FROM bills WHERE id = $1 FOR UPDATE`, id)
	bill, err := scanBill(row)
	if err != nil {
		return nil, convertErr(err, "locking bill %d", id)
	}
	return bill, nil
}

// Update изменяет переданные поля и обновляет updated_at.
func (b *BillRepository) Update(ctx context.Context, id int64, args repoargs.UpdateBill) (*domain.Bill, error) {
	row := b.conn.QueryRow(ctx,
		`UPDATE bills SET
			title        = COALESCE($2::text, title),
			description  = COALESCE($3::text, description),
			total_amount = COALESCE($4::numeric, total_amount),
			is_settled   = COALESCE($5::boolean, is_settled),
			updated_at   = now()
		 WHERE id = $1
		 RETURNING `+billColumns,
		id, args.Title, args.Description, args.TotalAmount, args.IsSettled,
	)
	bill, err := scanBill(row)
	if err != nil {
		return nil, convertErr(err, "updating bill %d", id)
	}
	return bill, nil
}

// Delete удаляет только сам счёт. Зависимые записи удаляет сервисный слой в той же транзакции.
func (b *BillRepository) Delete(ctx context.Context, id int64) error {
	tag, err := b.conn.Exec(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting bill %d", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("[repository/deleting bill %d] %w", id, domain.ErrRecordNotFound)
	}
	return nil
}

// List возвращает счета по фильтру, новые первыми.
func (b *BillRepository) List(ctx context.Context, filter repoargs.BillFilter) ([]domain.Bill, error) {
	query, args := billListQuery(filter)

	rows, err := b.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "listing bills")
	}
	defer rows.Close()

	var bills = make([]domain.Bill, 0)
	for rows.Next() {
		bill, scanErr := scanBill(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning bill")
		}
		bills = append(bills, *bill)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, "listing bills")
	}
	return bills, nil
}

// billListQuery собирает запрос выборки счетов. Нулевые поля фильтра в запрос не попадают.
func billListQuery(filter repoargs.BillFilter) (string, []any) {
	var where whereBuilder
	if filter.CreatedByID != 0 {
		where.add("created_by_id = ?", filter.CreatedByID)
	}
	if filter.ParticipantID != 0 {
		where.add(
			"(created_by_id = ? OR EXISTS (SELECT 1 FROM participants p WHERE p.bill_id = bills.id AND p.user_id = ?))",
			filter.ParticipantID,
		)
	}
	if filter.Settled != nil {
		where.add("is_settled = ?", *filter.Settled)
	}
	if filter.Search != "" {
		where.add("(title ILIKE ? OR description ILIKE ?)", "%"+escapeLike(filter.Search)+"%")
	}

	query := `SELECT ` + billColumns + ` FROM bills` + where.String() + ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += " LIMIT " + where.addArg(int64(filter.Limit))
	}
	if filter.Offset > 0 {
		query += " OFFSET " + where.addArg(int64(filter.Offset))
	}
	return query, where.args
}

func scanBill(row rowScanner) (*domain.Bill, error) {
	var bill domain.Bill
	err := row.Scan(
		&bill.ID,
		&bill.CreatedAt,
		&bill.UpdatedAt,
		&bill.CreatedByID,
		&bill.Title,
		&bill.Description,
		&bill.TotalAmount,
		&bill.IsSettled,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &bill, nil
}
