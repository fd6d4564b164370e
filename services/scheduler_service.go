package services

import (
	"errors"
	"fmt"
	"time"

	"fitclub-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	minSessionDuration = 15 * time.Minute
	maxSessionDuration = 8 * time.Hour
	maxBookingHorizon  = 365 * 24 * time.Hour

	// How many times a booking transaction is rerun after a serialization
	// failure or deadlock before the error is surfaced.
	bookingRetries = 3
)

// SchedulerService admits or rejects session bookings. The check-then-write
// sequence runs inside a single transaction that first locks the candidate
// trainer, room and member rows (always in that order), so two concurrent
// bookings for the same trainer or room cannot both pass the overlap scan.
type SchedulerService struct {
	db *gorm.DB
}

func NewSchedulerService(db *gorm.DB) *SchedulerService {
	return &SchedulerService{db: db}
}

// ScheduleRequest is a proposed booking. StartTime/EndTime form a half-open
// window [start, end).
type ScheduleRequest struct {
	MemberID    uuid.UUID
	TrainerID   uuid.UUID
	RoomID      *uuid.UUID
	StartTime   time.Time
	EndTime     time.Time
	SessionType string
	MaxCapacity *int
	Notes       string
}

// validateWindow enforces the basic shape of a booking window: end strictly
// after start, duration within sane bounds.
func validateWindow(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidWindow
	}
	d := end.Sub(start)
	if d < minSessionDuration || d > maxSessionDuration {
		return ErrInvalidWindow
	}
	return nil
}

// firstConflict returns the first session whose window overlaps [start, end),
// skipping excludeID (a session being rescheduled never conflicts with its own
// prior row). Half-open semantics: adjacent windows sharing an endpoint do not
// conflict.
func firstConflict(sessions []models.TrainingSession, start, end time.Time, excludeID uuid.UUID) *models.TrainingSession {
	for i := range sessions {
		if sessions[i].ID == excludeID {
			continue
		}
		if sessions[i].Overlaps(start, end) {
			return &sessions[i]
		}
	}
	return nil
}

func conflictOf(kind error, s *models.TrainingSession) error {
	return &ConflictError{Kind: kind, SessionID: s.ID, StartTime: s.StartTime, EndTime: s.EndTime}
}

// ScheduleSession books a new session after checking trainer, room and member
// availability. On any failure nothing is written.
func (s *SchedulerService) ScheduleSession(req ScheduleRequest) (*models.TrainingSession, error) {
	if err := validateScheduleRequest(&req); err != nil {
		return nil, err
	}

	var created *models.TrainingSession
	err := s.withRetry(func(tx *gorm.DB) error {
		room, err := lockParticipants(tx, req.TrainerID, req.RoomID, req.MemberID)
		if err != nil {
			return err
		}

		if req.SessionType == models.SessionGroup && req.MaxCapacity != nil &&
			room != nil && room.Capacity > 0 && *req.MaxCapacity > room.Capacity {
			return validationErrorf("max capacity %d exceeds room capacity %d", *req.MaxCapacity, room.Capacity)
		}

		if err := scanForConflicts(tx, req.TrainerID, req.RoomID, &req.MemberID,
			req.StartTime, req.EndTime, uuid.Nil); err != nil {
			return err
		}

		session := &models.TrainingSession{
			MemberID:    req.MemberID,
			TrainerID:   req.TrainerID,
			RoomID:      req.RoomID,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			SessionType: req.SessionType,
			MaxCapacity: req.MaxCapacity,
			Notes:       req.Notes,
		}
		if err := tx.Create(session).Error; err != nil {
			return translateDBError(err)
		}
		created = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RescheduleSession moves an existing session to a new window, running the same
// admissibility check but excluding the session's own prior row.
func (s *SchedulerService) RescheduleSession(sessionID uuid.UUID, start, end time.Time) (*models.TrainingSession, error) {
	if err := validateWindow(start, end); err != nil {
		return nil, err
	}

	var updated *models.TrainingSession
	err := s.withRetry(func(tx *gorm.DB) error {
		var session models.TrainingSession
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&session, "id = ?", sessionID).Error; err != nil {
			return translateDBError(err)
		}

		if _, err := lockParticipants(tx, session.TrainerID, session.RoomID, session.MemberID); err != nil {
			return err
		}

		if err := scanForConflicts(tx, session.TrainerID, session.RoomID, &session.MemberID,
			start, end, session.ID); err != nil {
			return err
		}

		session.StartTime = start
		session.EndTime = end
		if err := tx.Save(&session).Error; err != nil {
			return translateDBError(err)
		}
		updated = &session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AssignRoom books a room for an existing session, rejecting double-bookings.
func (s *SchedulerService) AssignRoom(sessionID, roomID uuid.UUID) (*models.TrainingSession, error) {
	var updated *models.TrainingSession
	err := s.withRetry(func(tx *gorm.DB) error {
		var session models.TrainingSession
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&session, "id = ?", sessionID).Error; err != nil {
			return translateDBError(err)
		}
		if session.RoomID != nil && *session.RoomID == roomID {
			return validationErrorf("room already assigned to this session")
		}

		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, "id = ?", roomID).Error; err != nil {
			return translateDBError(err)
		}
		if session.SessionType == models.SessionGroup && session.MaxCapacity != nil &&
			room.Capacity > 0 && *session.MaxCapacity > room.Capacity {
			return validationErrorf("session capacity %d exceeds room capacity %d", *session.MaxCapacity, room.Capacity)
		}

		if err := scanForConflicts(tx, uuid.Nil, &roomID, nil,
			session.StartTime, session.EndTime, session.ID); err != nil {
			return err
		}

		session.RoomID = &roomID
		if err := tx.Save(&session).Error; err != nil {
			return translateDBError(err)
		}
		updated = &session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CancelSession removes a booking and frees its window.
func (s *SchedulerService) CancelSession(sessionID uuid.UUID) error {
	res := s.db.Delete(&models.TrainingSession{}, "id = ?", sessionID)
	if res.Error != nil {
		return translateDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func validateScheduleRequest(req *ScheduleRequest) error {
	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		return err
	}
	if req.StartTime.Before(time.Now()) {
		return validationErrorf("session cannot start in the past")
	}
	if req.StartTime.After(time.Now().Add(maxBookingHorizon)) {
		return validationErrorf("session cannot be more than a year ahead")
	}
	if req.SessionType == "" {
		req.SessionType = models.SessionPersonal
	}
	if req.SessionType != models.SessionPersonal && req.SessionType != models.SessionGroup {
		return validationErrorf("unknown session type %q", req.SessionType)
	}
	if req.SessionType == models.SessionGroup {
		if req.MaxCapacity == nil || *req.MaxCapacity <= 0 {
			return validationErrorf("group classes need a positive max capacity")
		}
		if *req.MaxCapacity > 100 {
			return validationErrorf("max capacity cannot exceed 100")
		}
	}
	return nil
}

// lockParticipants takes FOR UPDATE locks on the trainer, room and member rows,
// in that fixed order. Holding these locks serializes concurrent bookings for
// the same trainer/room, which is what keeps the overlap scan race-free.
func lockParticipants(tx *gorm.DB, trainerID uuid.UUID, roomID *uuid.UUID, memberID uuid.UUID) (*models.Room, error) {
	var trainer models.Trainer
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&trainer, "id = ?", trainerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferentialViolation
		}
		return nil, translateDBError(err)
	}

	var room *models.Room
	if roomID != nil {
		var r models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&r, "id = ?", *roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrReferentialViolation
			}
			return nil, translateDBError(err)
		}
		room = &r
	}

	var member models.Member
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&member, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferentialViolation
		}
		return nil, translateDBError(err)
	}
	return room, nil
}

// scanForConflicts fetches the sessions that could overlap [start, end) for the
// trainer, room and member, and applies the half-open overlap test. Pass
// uuid.Nil / nil to skip a dimension.
func scanForConflicts(tx *gorm.DB, trainerID uuid.UUID, roomID *uuid.UUID, memberID *uuid.UUID, start, end time.Time, excludeID uuid.UUID) error {
	if trainerID != uuid.Nil {
		var sessions []models.TrainingSession
		if err := tx.Where("trainer_id = ? AND start_time < ? AND end_time > ?",
			trainerID, end, start).Find(&sessions).Error; err != nil {
			return translateDBError(err)
		}
		if c := firstConflict(sessions, start, end, excludeID); c != nil {
			return conflictOf(ErrTrainerConflict, c)
		}
	}

	if roomID != nil {
		var sessions []models.TrainingSession
		if err := tx.Where("room_id = ? AND start_time < ? AND end_time > ?",
			*roomID, end, start).Find(&sessions).Error; err != nil {
			return translateDBError(err)
		}
		if c := firstConflict(sessions, start, end, excludeID); c != nil {
			return conflictOf(ErrRoomConflict, c)
		}
	}

	if memberID != nil {
		var sessions []models.TrainingSession
		if err := tx.Where("member_id = ? AND start_time < ? AND end_time > ?",
			*memberID, end, start).Find(&sessions).Error; err != nil {
			return translateDBError(err)
		}
		if c := firstConflict(sessions, start, end, excludeID); c != nil {
			return conflictOf(ErrMemberConflict, c)
		}
	}
	return nil
}

// withRetry runs fn inside a transaction, rerunning it a bounded number of
// times when the database reports a serialization failure or deadlock.
func (s *SchedulerService) withRetry(fn func(tx *gorm.DB) error) error {
	return runWithRetry(func() error {
		return s.db.Transaction(fn)
	})
}

// runWithRetry reruns attempt up to bookingRetries times while it keeps failing
// retriably. A serialization failure carries no conflict detail, so once the
// retries are spent the caller sees ErrBookingContention, never a raw SQLSTATE.
func runWithRetry(attempt func() error) error {
	var err error
	for i := 0; i < bookingRetries; i++ {
		err = attempt()
		if err == nil || !retriable(err) {
			return err
		}
	}
	return fmt.Errorf("%w after %d attempts", ErrBookingContention, bookingRetries)
}
