package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-bills/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode      = "23505"
	foreignKeyViolationCode  = "23503"
	checkViolationCode       = "23514"
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"
	lockNotAvailableCode     = "55P03"
)

// convertErr преобразует ошибку к стандартному виду для слоя репозитория.
// Добавляет форматированное сообщение контекста, тип бизнес-ошибки и оригинальное сообщение.
// Особенности:
//   - Для ошибок отсутствия данных (pgx.ErrNoRows) возвращает ErrRecordNotFound из domain.
//   - Дубликат ключа (23505) - ErrDuplicateKey, нарушение внешнего ключа (23503) - ErrRecordNotFound,
//     нарушение CHECK (23514) - ErrValidation.
//   - Ошибки сериализации, дедлоки и занятые блокировки - ErrConcurrencyConflict, такие операции можно повторить.
//   - Все остальные ошибки возвращаются как ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		errType = classifyPgErr(pgErr)
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}

func classifyPgErr(err *pgconn.PgError) error {
	switch err.Code {
	case uniqueViolationCode:
		return domain.ErrDuplicateKey
	case foreignKeyViolationCode:
		return domain.ErrRecordNotFound
	case checkViolationCode:
		return domain.ErrValidation
	case serializationFailureCode, deadlockDetectedCode, lockNotAvailableCode:
		return domain.ErrConcurrencyConflict
	default:
		return domain.ErrUnknown
	}
}

// ConvertTxErr преобразует ошибки открытия и коммита транзакции. Подключается к uow.UnitOfWork через
// uow.WithErrConverter, чтобы конфликт сериализации на коммите тоже стал domain.ErrConcurrencyConflict.
func ConvertTxErr(err error, op string) error {
	return convertErr(err, "%s", op)
}
