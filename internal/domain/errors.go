package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrValidation           = errors.New("validation failed")
	ErrDuplicateParticipant = errors.New("duplicate participant")
	ErrInvariantViolation   = errors.New("invariant violation")
	ErrConcurrencyConflict  = errors.New("concurrency conflict")
)

// ValidationError некорректный ввод. errors.Is(err, ErrValidation) == true.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// InvariantError нарушение доменного инварианта (попытка закрыть неоплаченный счёт, расхождение суммы долей и т.п.).
type InvariantError struct {
	Reason string
}

func NewInvariantError(format string, args ...any) error {
	return &InvariantError{Reason: fmt.Sprintf(format, args...)}
}

func (e *InvariantError) Error() string {
	return e.Reason
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariantViolation
}

type DuplicateParticipantError struct {
	BillID int64
	UserID int64
}

func NewDuplicateParticipantError(billID, userID int64) error {
	return &DuplicateParticipantError{BillID: billID, UserID: userID}
}

func (e *DuplicateParticipantError) Error() string {
	return fmt.Sprintf("user with id %d already participates in bill with id %d", e.UserID, e.BillID)
}

func (e *DuplicateParticipantError) Is(target error) bool {
	return target == ErrDuplicateParticipant
}
