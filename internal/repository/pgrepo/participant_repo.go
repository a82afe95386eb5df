package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-bills/internal/domain"
	"github.com/fsdevblog/groph-bills/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bills/pkg/uow"
)

const (
	participantColumns = "p.id, p.bill_id, p.user_id, u.username, p.share_amount, p.has_paid, p.paid_at"
	participantSelect  = `SELECT ` + participantColumns + ` FROM participants p JOIN users u ON u.id = p.user_id`

	participantInsert = `WITH p AS (
			INSERT INTO participants (bill_id, user_id, share_amount, has_paid)
			VALUES ($1, $2, $3, $4)
			RETURNING id, bill_id, user_id, share_amount, has_paid, paid_at
		)
		SELECT ` + participantColumns + ` FROM p JOIN users u ON u.id = p.user_id`
)

type ParticipantRepository struct {
	conn uow.DBTX
}

func NewParticipantRepository(conn uow.DBTX) *ParticipantRepository {
	return &ParticipantRepository{conn: conn}
}

// Create добавляет участника. Повтор пары (bill_id, user_id) возвращает domain.ErrDuplicateKey,
// несуществующий счёт или юзер - domain.ErrRecordNotFound.
func (p *ParticipantRepository) Create(
	ctx context.Context,
	args repoargs.CreateParticipant,
) (*domain.Participant, error) {
	row := p.conn.QueryRow(ctx, participantInsert, args.BillID, args.UserID, args.ShareAmount, args.HasPaid)
	participant, err := scanParticipant(row)
	if err != nil {
		return nil, convertErr(err, "creating participant (bill %d, user %d)", args.BillID, args.UserID)
	}
	return participant, nil
}

// BatchCreate добавляет участников одним батчем. Для каждой строки вызывается fn с результатом вставки.
func (p *ParticipantRepository) BatchCreate(
	ctx context.Context,
	args []repoargs.CreateParticipant,
	fn repoargs.ParticipantBatchQueryRow,
) {
	batch := new(pgx.Batch)
	for _, a := range args {
		batch.Queue(participantInsert, a.BillID, a.UserID, a.ShareAmount, a.HasPaid)
	}

	results := p.conn.SendBatch(ctx, batch)
	defer results.Close()

	for i, a := range args {
		participant, err := scanParticipant(results.QueryRow())
		if err != nil {
			fn(i, nil, convertErr(err, "creating participant (bill %d, user %d)", a.BillID, a.UserID))
			continue
		}
		fn(i, participant, nil)
	}
}

func (p *ParticipantRepository) GetByID(ctx context.Context, id int64) (*domain.Participant, error) {
	row := p.conn.QueryRow(ctx, participantSelect+` WHERE p.id = $1`, id)
	participant, err := scanParticipant(row)
	if err != nil {
		return nil, convertErr(err, "getting participant by id %d", id)
	}
	return participant, nil
}

func (p *ParticipantRepository) FindByBillAndUser(
	ctx context.Context,
	billID, userID int64,
) (*domain.Participant, error) {
	row := p.conn.QueryRow(ctx, participantSelect+` WHERE p.bill_id = $1 AND p.user_id = $2`, billID, userID)
	participant, err := scanParticipant(row)
	if err != nil {
		return nil, convertErr(err, "finding participant (bill %d, user %d)", billID, userID)
	}
	return participant, nil
}

// ListByBill возвращает участников счёта в порядке добавления.
func (p *ParticipantRepository) ListByBill(ctx context.Context, billID int64) ([]domain.Participant, error) {
	rows, err := p.conn.Query(ctx, participantSelect+` WHERE p.bill_id = $1 ORDER BY p.id`, billID)
	if err != nil {
		return nil, convertErr(err, "listing participants of bill %d", billID)
	}
	defer rows.Close()

	var participants = make([]domain.Participant, 0)
	for rows.Next() {
		participant, scanErr := scanParticipant(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning participant")
		}
		participants = append(participants, *participant)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, "listing participants of bill %d", billID)
	}
	return participants, nil
}

// UpdatePaymentState записывает производное состояние оплаты участника.
func (p *ParticipantRepository) UpdatePaymentState(ctx context.Context, args repoargs.UpdatePaymentState) error {
	tag, err := p.conn.Exec(ctx,
		`UPDATE participants SET has_paid = $2, paid_at = $3 WHERE id = $1`,
		args.ParticipantID, args.HasPaid, args.PaidAt,
	)
	if err != nil {
		return convertErr(err, "updating payment state of participant %d", args.ParticipantID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating payment state of participant %d", args.ParticipantID)
	}
	return nil
}

// DeleteByBill удаляет всех участников счёта и возвращает их количество.
func (p *ParticipantRepository) DeleteByBill(ctx context.Context, billID int64) (int64, error) {
	tag, err := p.conn.Exec(ctx, `DELETE FROM participants WHERE bill_id = $1`, billID)
	if err != nil {
		return 0, convertErr(err, "deleting participants of bill %d", billID)
	}
	return tag.RowsAffected(), nil
}

func scanParticipant(row rowScanner) (*domain.Participant, error) {
	var participant domain.Participant
	err := row.Scan(
		&participant.ID,
		&participant.BillID,
		&participant.UserID,
		&participant.Username,
		&participant.ShareAmount,
		&participant.HasPaid,
		&participant.PaidAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &participant, nil
}
