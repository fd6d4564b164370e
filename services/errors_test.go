package services

import (
	"errors"
	"fmt"
	"testing"

	"fitclub-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func pgError(code, constraint, message string) error {
	return fmt.Errorf("tx failed: %w", &pgconn.PgError{
		Code:           code,
		ConstraintName: constraint,
		Message:        message,
	})
}

func TestTranslateDBError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"unique violation on email index",
			pgError("23505", "idx_members_email", ""), ErrDuplicateEmail},
		{"unique violation elsewhere",
			pgError("23505", "idx_rooms_room_number", ""), ErrValidation},
		{"foreign key violation",
			pgError("23503", "fk_training_sessions_trainer", ""), ErrReferentialViolation},
		{"exclusion violation, trainer overlap",
			pgError("23P01", "", "trainer abc double-booked"), ErrTrainerConflict},
		{"exclusion violation, room overlap",
			pgError("23P01", "", "room abc double-booked"), ErrRoomConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateDBError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestTranslateDBErrorPassesUnknownThrough(t *testing.T) {
	plain := errors.New("connection reset")
	assert.Equal(t, plain, translateDBError(plain))

	// Unrecognized SQLSTATEs are not remapped.
	other := pgError("22001", "", "value too long")
	assert.Equal(t, other, translateDBError(other))
}

func TestRetriable(t *testing.T) {
	assert.True(t, retriable(pgError("40001", "", "serialization failure")))
	assert.True(t, retriable(pgError("40P01", "", "deadlock detected")))

	assert.False(t, retriable(pgError("23505", "idx_members_email", "")))
	assert.False(t, retriable(errors.New("connection reset")))
	assert.False(t, retriable(gorm.ErrRecordNotFound))
}

func TestRunWithRetryRecoversAfterSerializationFailure(t *testing.T) {
	calls := 0
	err := runWithRetry(func() error {
		calls++
		if calls == 1 {
			return pgError("40001", "", "serialization failure")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRunWithRetryStopsOnNonRetriableError(t *testing.T) {
	booked := models.TrainingSession{ID: uuid.New(), StartTime: ts(10, 0), EndTime: ts(11, 0)}
	calls := 0
	err := runWithRetry(func() error {
		calls++
		return conflictOf(ErrRoomConflict, &booked)
	})
	assert.ErrorIs(t, err, ErrRoomConflict)
	assert.Equal(t, 1, calls)
}

func TestRunWithRetryExhaustionSurfacesContention(t *testing.T) {
	calls := 0
	err := runWithRetry(func() error {
		calls++
		return pgError("40P01", "", "deadlock detected")
	})
	assert.ErrorIs(t, err, ErrBookingContention)
	assert.Equal(t, bookingRetries, calls)

	// The raw SQLSTATE never reaches the caller.
	var pgErr *pgconn.PgError
	assert.False(t, errors.As(err, &pgErr))
}
