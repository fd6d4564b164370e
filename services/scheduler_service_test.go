package services

import (
	"testing"
	"time"

	"fitclub-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func ts(hour, min int) time.Time {
	return time.Date(2026, 9, 14, hour, min, 0, 0, time.UTC)
}

func TestValidateWindow(t *testing.T) {
	assert.NoError(t, validateWindow(ts(9, 0), ts(10, 0)))
	assert.NoError(t, validateWindow(ts(9, 0), ts(9, 15)))
	assert.NoError(t, validateWindow(ts(9, 0), ts(17, 0)))

	// End must be strictly after start.
	assert.ErrorIs(t, validateWindow(ts(9, 0), ts(9, 0)), ErrInvalidWindow)
	assert.ErrorIs(t, validateWindow(ts(10, 0), ts(9, 0)), ErrInvalidWindow)

	// Duration bounds.
	assert.ErrorIs(t, validateWindow(ts(9, 0), ts(9, 10)), ErrInvalidWindow)
	assert.ErrorIs(t, validateWindow(ts(9, 0), ts(17, 1)), ErrInvalidWindow)
}

func TestSessionOverlapsHalfOpen(t *testing.T) {
	booked := models.TrainingSession{StartTime: ts(10, 0), EndTime: ts(11, 0)}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"identical window", ts(10, 0), ts(11, 0), true},
		{"contained", ts(10, 15), ts(10, 45), true},
		{"containing", ts(9, 0), ts(12, 0), true},
		{"overlaps start", ts(9, 30), ts(10, 30), true},
		{"overlaps end", ts(10, 30), ts(11, 30), true},
		{"back to back before", ts(9, 0), ts(10, 0), false},
		{"back to back after", ts(11, 0), ts(12, 0), false},
		{"well before", ts(7, 0), ts(8, 0), false},
		{"well after", ts(13, 0), ts(14, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booked.Overlaps(tt.start, tt.end))
		})
	}
}

func TestFirstConflict(t *testing.T) {
	a := models.TrainingSession{ID: uuid.New(), StartTime: ts(9, 0), EndTime: ts(10, 0)}
	b := models.TrainingSession{ID: uuid.New(), StartTime: ts(10, 0), EndTime: ts(11, 0)}
	c := models.TrainingSession{ID: uuid.New(), StartTime: ts(14, 0), EndTime: ts(15, 0)}
	sessions := []models.TrainingSession{a, b, c}

	// A window touching b's end only conflicts with c.
	got := firstConflict(sessions, ts(11, 0), ts(14, 30), uuid.Nil)
	if assert.NotNil(t, got) {
		assert.Equal(t, c.ID, got.ID)
	}

	// Adjacent on both sides: free.
	assert.Nil(t, firstConflict(sessions, ts(11, 0), ts(14, 0), uuid.Nil))

	// First overlapping session wins.
	got = firstConflict(sessions, ts(9, 30), ts(10, 30), uuid.Nil)
	if assert.NotNil(t, got) {
		assert.Equal(t, a.ID, got.ID)
	}
}

func TestFirstConflictExcludesOwnRow(t *testing.T) {
	self := models.TrainingSession{ID: uuid.New(), StartTime: ts(10, 0), EndTime: ts(11, 0)}
	other := models.TrainingSession{ID: uuid.New(), StartTime: ts(11, 0), EndTime: ts(12, 0)}
	sessions := []models.TrainingSession{self, other}

	// Rescheduling within its own old window must not collide with itself.
	assert.Nil(t, firstConflict(sessions, ts(10, 15), ts(10, 45), self.ID))

	// But it still collides with anything else.
	got := firstConflict(sessions, ts(10, 30), ts(11, 30), self.ID)
	if assert.NotNil(t, got) {
		assert.Equal(t, other.ID, got.ID)
	}
}

// Two half-open bookings for the same room: 09:00-10:00 booked, a 10:00-11:00
// request is admissible because the windows only share the 10:00 endpoint.
func TestBackToBackRoomBookings(t *testing.T) {
	roomID := uuid.New()
	booked := []models.TrainingSession{
		{ID: uuid.New(), RoomID: &roomID, StartTime: ts(9, 0), EndTime: ts(10, 0)},
	}

	assert.Nil(t, firstConflict(booked, ts(10, 0), ts(11, 0), uuid.Nil))
	assert.NotNil(t, firstConflict(booked, ts(9, 59), ts(11, 0), uuid.Nil))
}

func TestValidateScheduleRequest(t *testing.T) {
	base := func() ScheduleRequest {
		start := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
		return ScheduleRequest{
			MemberID:  uuid.New(),
			TrainerID: uuid.New(),
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		}
	}

	req := base()
	assert.NoError(t, validateScheduleRequest(&req))
	// Empty type defaults to personal training.
	assert.Equal(t, models.SessionPersonal, req.SessionType)

	req = base()
	req.StartTime = time.Now().Add(-time.Hour)
	req.EndTime = req.StartTime.Add(time.Hour)
	assert.ErrorIs(t, validateScheduleRequest(&req), ErrValidation)

	req = base()
	req.StartTime = time.Now().Add(maxBookingHorizon + 48*time.Hour)
	req.EndTime = req.StartTime.Add(time.Hour)
	assert.ErrorIs(t, validateScheduleRequest(&req), ErrValidation)

	req = base()
	req.SessionType = "Open Gym"
	assert.ErrorIs(t, validateScheduleRequest(&req), ErrValidation)

	// Group classes need a positive capacity.
	req = base()
	req.SessionType = models.SessionGroup
	assert.ErrorIs(t, validateScheduleRequest(&req), ErrValidation)

	req = base()
	req.SessionType = models.SessionGroup
	capacity := 20
	req.MaxCapacity = &capacity
	assert.NoError(t, validateScheduleRequest(&req))
}

func TestConflictErrorUnwrapsKind(t *testing.T) {
	s := &models.TrainingSession{ID: uuid.New(), StartTime: ts(10, 0), EndTime: ts(11, 0)}
	err := conflictOf(ErrRoomConflict, s)

	assert.ErrorIs(t, err, ErrRoomConflict)
	assert.Contains(t, err.Error(), s.ID.String())
}
