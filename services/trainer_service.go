package services

import (
	"errors"
	"strings"
	"time"

	"fitclub-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	minAvailabilitySlot = 15 * time.Minute
	maxAvailabilitySlot = 24 * time.Hour
)

type TrainerService struct {
	db *gorm.DB
}

func NewTrainerService(db *gorm.DB) *TrainerService {
	return &TrainerService{db: db}
}

type CreateTrainerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Specialty string
	HireDate  *time.Time
}

func (s *TrainerService) CreateTrainer(in CreateTrainerInput) (*models.Trainer, error) {
	if err := validateName(in.FirstName, "first name"); err != nil {
		return nil, err
	}
	if err := validateName(in.LastName, "last name"); err != nil {
		return nil, err
	}
	trainer := &models.Trainer{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Specialty: strings.TrimSpace(in.Specialty),
		HireDate:  in.HireDate,
	}
	if err := s.db.Create(trainer).Error; err != nil {
		return nil, translateDBError(err)
	}
	return trainer, nil
}

// SetAvailability records a [start, end) window during which the trainer takes
// bookings. Windows for one trainer are kept non-overlapping, and a window may
// not cut across already-booked sessions.
func (s *TrainerService) SetAvailability(trainerID uuid.UUID, start, end time.Time) (*models.TrainerAvailability, error) {
	if !end.After(start) {
		return nil, ErrInvalidWindow
	}
	d := end.Sub(start)
	if d < minAvailabilitySlot || d > maxAvailabilitySlot {
		return nil, ErrInvalidWindow
	}
	if start.Before(time.Now()) {
		return nil, validationErrorf("availability cannot start in the past")
	}

	var created *models.TrainerAvailability
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var trainer models.Trainer
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&trainer, "id = ?", trainerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReferentialViolation
			}
			return translateDBError(err)
		}

		var overlapping int64
		if err := tx.Model(&models.TrainerAvailability{}).
			Where("trainer_id = ? AND start_time < ? AND end_time > ?", trainerID, end, start).
			Count(&overlapping).Error; err != nil {
			return translateDBError(err)
		}
		if overlapping > 0 {
			return validationErrorf("window overlaps an existing availability slot")
		}

		var sessions []models.TrainingSession
		if err := tx.Where("trainer_id = ? AND start_time < ? AND end_time > ?",
			trainerID, end, start).Find(&sessions).Error; err != nil {
			return translateDBError(err)
		}
		if c := firstConflict(sessions, start, end, uuid.Nil); c != nil {
			return conflictOf(ErrTrainerConflict, c)
		}

		slot := &models.TrainerAvailability{
			TrainerID: trainerID,
			StartTime: start,
			EndTime:   end,
		}
		if err := tx.Create(slot).Error; err != nil {
			return translateDBError(err)
		}
		created = slot
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetAvailability lists a trainer's windows ordered by start time.
func (s *TrainerService) GetAvailability(trainerID uuid.UUID) ([]models.TrainerAvailability, error) {
	if err := s.requireTrainer(trainerID); err != nil {
		return nil, err
	}
	var slots []models.TrainerAvailability
	if err := s.db.Where("trainer_id = ?", trainerID).
		Order("start_time").Find(&slots).Error; err != nil {
		return nil, translateDBError(err)
	}
	return slots, nil
}

// GetSchedule returns the trainer's sessions within [from, to), ordered by
// start time. A zero "to" means no upper bound.
func (s *TrainerService) GetSchedule(trainerID uuid.UUID, from, to time.Time) ([]models.TrainingSession, error) {
	if err := s.requireTrainer(trainerID); err != nil {
		return nil, err
	}

	q := s.db.Preload("Member").Preload("Room").
		Where("trainer_id = ? AND end_time > ?", trainerID, from)
	if !to.IsZero() {
		if !to.After(from) {
			return nil, ErrInvalidWindow
		}
		q = q.Where("start_time < ?", to)
	}

	var sessions []models.TrainingSession
	if err := q.Order("start_time").Find(&sessions).Error; err != nil {
		return nil, translateDBError(err)
	}
	return sessions, nil
}

func (s *TrainerService) GetTrainer(trainerID uuid.UUID) (*models.Trainer, error) {
	var trainer models.Trainer
	if err := s.db.First(&trainer, "id = ?", trainerID).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &trainer, nil
}

func (s *TrainerService) ListTrainers() ([]models.Trainer, error) {
	var trainers []models.Trainer
	if err := s.db.Order("id").Find(&trainers).Error; err != nil {
		return nil, translateDBError(err)
	}
	return trainers, nil
}

func (s *TrainerService) requireTrainer(trainerID uuid.UUID) error {
	var trainer models.Trainer
	if err := s.db.Select("id").First(&trainer, "id = ?", trainerID).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}
