package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Domain error kinds. Every operation surfaces one of these instead of leaking
// a raw storage error.
var (
	ErrInvalidWindow        = errors.New("invalid time window")
	ErrTrainerConflict      = errors.New("trainer has a conflicting session")
	ErrRoomConflict         = errors.New("room is already booked")
	ErrMemberConflict       = errors.New("member already has a session at this time")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrReferentialViolation = errors.New("referenced record does not exist or is still referenced")
	ErrBookingContention    = errors.New("booking lost to concurrent writers")
	ErrInvalidTransition    = errors.New("illegal status transition")
	ErrInsufficientPayment  = errors.New("payment does not settle the invoice")
	ErrNotFound             = errors.New("record not found")
	ErrValidation           = errors.New("validation failed")
)

// ConflictError identifies the existing session that blocked a booking.
type ConflictError struct {
	Kind      error // ErrTrainerConflict, ErrRoomConflict or ErrMemberConflict
	SessionID uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v (session %s, %s - %s)",
		e.Kind, e.SessionID,
		e.StartTime.Format(time.RFC3339), e.EndTime.Format(time.RFC3339))
}

func (e *ConflictError) Unwrap() error { return e.Kind }

func validationErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// PostgreSQL SQLSTATE codes this package reacts to.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgExclusionViolation  = "23P01"
	pgSerializationFail   = "40001"
	pgDeadlockDetected    = "40P01"
)

// translateDBError maps storage-layer failures onto domain error kinds so
// constraint violations never reach callers raw.
func translateDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if strings.Contains(pgErr.ConstraintName, "email") {
				return ErrDuplicateEmail
			}
			return validationErrorf("duplicate value for %s", pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return ErrReferentialViolation
		case pgExclusionViolation:
			// Raised by the overlap trigger when a race slipped past the
			// application check.
			if strings.Contains(pgErr.Message, "room") {
				return ErrRoomConflict
			}
			return ErrTrainerConflict
		}
	}
	return err
}

// retriable reports whether the transaction failed in a way that a clean rerun
// can resolve (serialization failure or deadlock victim).
func retriable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFail || pgErr.Code == pgDeadlockDetected
	}
	return false
}
