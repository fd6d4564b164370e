package services

import (
	"strings"
	"time"

	"fitclub-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceService struct {
	db *gorm.DB
}

func NewMaintenanceService(db *gorm.DB) *MaintenanceService {
	return &MaintenanceService{db: db}
}

type ReportIssueInput struct {
	RoomID        uuid.UUID
	ReportedByID  uuid.UUID
	EquipmentName string
	Description   string
	Priority      string
}

// ReportIssue creates a maintenance record in the reported state.
func (s *MaintenanceService) ReportIssue(in ReportIssueInput) (*models.MaintenanceIssue, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, validationErrorf("issue description is required")
	}
	if len(in.Description) > 1000 {
		return nil, validationErrorf("issue description cannot exceed 1000 characters")
	}
	if len(in.EquipmentName) > 100 {
		return nil, validationErrorf("equipment name cannot exceed 100 characters")
	}
	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !validPriority(priority) {
		return nil, validationErrorf("priority must be one of Low, Medium, High, Critical")
	}

	var room models.Room
	if err := s.db.Select("id").First(&room, "id = ?", in.RoomID).Error; err != nil {
		return nil, ErrReferentialViolation
	}
	var staff models.AdminStaff
	if err := s.db.Select("id").First(&staff, "id = ?", in.ReportedByID).Error; err != nil {
		return nil, ErrReferentialViolation
	}

	issue := &models.MaintenanceIssue{
		RoomID:        in.RoomID,
		ReportedByID:  in.ReportedByID,
		EquipmentName: strings.TrimSpace(in.EquipmentName),
		Description:   strings.TrimSpace(in.Description),
		Priority:      priority,
		Status:        models.IssueReported,
		ReportedDate:  time.Now(),
	}
	if err := s.db.Create(issue).Error; err != nil {
		return nil, translateDBError(err)
	}
	return issue, nil
}

// canTransition encodes the one-way lifecycle: reported -> in_progress ->
// resolved. Skips and backward moves are illegal.
func canTransition(from, to string) bool {
	switch from {
	case models.IssueReported:
		return to == models.IssueInProgress
	case models.IssueInProgress:
		return to == models.IssueResolved
	}
	return false
}

// UpdateStatus advances an issue one step along its lifecycle, failing with
// ErrInvalidTransition on a skip or backward move.
func (s *MaintenanceService) UpdateStatus(issueID uuid.UUID, newStatus, resolutionNotes string) (*models.MaintenanceIssue, error) {
	if newStatus != models.IssueReported && newStatus != models.IssueInProgress && newStatus != models.IssueResolved {
		return nil, validationErrorf("unknown status %q", newStatus)
	}
	if len(resolutionNotes) > 1000 {
		return nil, validationErrorf("resolution notes cannot exceed 1000 characters")
	}

	var updated *models.MaintenanceIssue
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var issue models.MaintenanceIssue
		if err := tx.First(&issue, "id = ?", issueID).Error; err != nil {
			return translateDBError(err)
		}

		if !canTransition(issue.Status, newStatus) {
			return ErrInvalidTransition
		}
		if resolutionNotes != "" && newStatus != models.IssueResolved {
			return validationErrorf("resolution notes only apply when resolving")
		}

		issue.Status = newStatus
		if newStatus == models.IssueResolved {
			now := time.Now()
			issue.ResolvedDate = &now
			issue.ResolutionNotes = strings.TrimSpace(resolutionNotes)
		}
		if err := tx.Save(&issue).Error; err != nil {
			return translateDBError(err)
		}
		updated = &issue
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ListIssues returns issues, optionally filtered by room or status, newest
// first.
func (s *MaintenanceService) ListIssues(roomID *uuid.UUID, status string) ([]models.MaintenanceIssue, error) {
	q := s.db.Preload("Room").Order("reported_date DESC")
	if roomID != nil {
		q = q.Where("room_id = ?", *roomID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var issues []models.MaintenanceIssue
	if err := q.Find(&issues).Error; err != nil {
		return nil, translateDBError(err)
	}
	return issues, nil
}

func validPriority(p string) bool {
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityCritical:
		return true
	}
	return false
}
