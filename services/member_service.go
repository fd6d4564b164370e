package services

import (
	"errors"
	"strings"
	"time"

	"fitclub-backend/models"
	"fitclub-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberService struct {
	db *gorm.DB
}

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{db: db}
}

type RegisterMemberInput struct {
	FirstName        string
	LastName         string
	Email            string
	DateOfBirth      *time.Time
	Gender           string
	Phone            string
	Address          string
	MembershipStatus string
}

type UpdateProfileInput struct {
	FirstName   *string
	LastName    *string
	Phone       *string
	Address     *string
	DateOfBirth *time.Time
	Gender      *string
}

// RegisterMember creates a member with a unique, normalized email. When the
// email is taken nothing is written and ErrDuplicateEmail is returned.
func (s *MemberService) RegisterMember(in RegisterMemberInput) (*models.Member, error) {
	if err := validateName(in.FirstName, "first name"); err != nil {
		return nil, err
	}
	if err := validateName(in.LastName, "last name"); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !utils.ValidateEmail(email) {
		return nil, validationErrorf("invalid email format")
	}
	if len(email) > 100 {
		return nil, validationErrorf("email cannot exceed 100 characters")
	}
	if err := validateDateOfBirth(in.DateOfBirth); err != nil {
		return nil, err
	}
	gender, err := normalizeGender(in.Gender)
	if err != nil {
		return nil, err
	}
	status := in.MembershipStatus
	if status == "" {
		status = models.MembershipActive
	}
	if !validMembershipStatus(status) {
		return nil, validationErrorf("membership status must be one of Active, Inactive, Suspended, Cancelled")
	}

	member := &models.Member{
		FirstName:        strings.TrimSpace(in.FirstName),
		LastName:         strings.TrimSpace(in.LastName),
		Email:            email,
		DateOfBirth:      in.DateOfBirth,
		Gender:           gender,
		Phone:            strings.TrimSpace(in.Phone),
		Address:          strings.TrimSpace(in.Address),
		JoinDate:         time.Now(),
		MembershipStatus: status,
	}

	// The unique index is the real guard; this pre-check just gives the common
	// case a clean answer without burning a failed insert.
	var existing models.Member
	err = s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translateDBError(err)
	}

	if err := s.db.Create(member).Error; err != nil {
		return nil, translateDBError(err)
	}
	return member, nil
}

// UpdateProfile applies a partial update; at least one field must be set.
func (s *MemberService) UpdateProfile(memberID uuid.UUID, in UpdateProfileInput) (*models.Member, error) {
	if in.FirstName == nil && in.LastName == nil && in.Phone == nil &&
		in.Address == nil && in.DateOfBirth == nil && in.Gender == nil {
		return nil, validationErrorf("at least one field must be provided")
	}

	var member models.Member
	if err := s.db.First(&member, "id = ?", memberID).Error; err != nil {
		return nil, translateDBError(err)
	}

	if in.FirstName != nil {
		if err := validateName(*in.FirstName, "first name"); err != nil {
			return nil, err
		}
		member.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		if err := validateName(*in.LastName, "last name"); err != nil {
			return nil, err
		}
		member.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Phone != nil {
		if len(*in.Phone) > 20 {
			return nil, validationErrorf("phone cannot exceed 20 characters")
		}
		member.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		if len(*in.Address) > 200 {
			return nil, validationErrorf("address cannot exceed 200 characters")
		}
		member.Address = strings.TrimSpace(*in.Address)
	}
	if in.DateOfBirth != nil {
		if err := validateDateOfBirth(in.DateOfBirth); err != nil {
			return nil, err
		}
		member.DateOfBirth = in.DateOfBirth
	}
	if in.Gender != nil {
		gender, err := normalizeGender(*in.Gender)
		if err != nil {
			return nil, err
		}
		member.Gender = gender
	}

	if err := s.db.Save(&member).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &member, nil
}

type AddGoalInput struct {
	GoalType             string
	TargetBodyWeightKg   *float64
	TargetBodyFatPercent *float64
	TargetDate           *time.Time
	Notes                string
}

func (s *MemberService) AddFitnessGoal(memberID uuid.UUID, in AddGoalInput) (*models.FitnessGoal, error) {
	if strings.TrimSpace(in.GoalType) == "" {
		return nil, validationErrorf("goal type is required")
	}
	if len(in.GoalType) > 50 {
		return nil, validationErrorf("goal type cannot exceed 50 characters")
	}
	if in.TargetBodyWeightKg == nil && in.TargetBodyFatPercent == nil {
		return nil, validationErrorf("at least one target must be specified")
	}
	if in.TargetBodyWeightKg != nil && (*in.TargetBodyWeightKg <= 0 || *in.TargetBodyWeightKg > 1000) {
		return nil, validationErrorf("target body weight out of range")
	}
	if in.TargetBodyFatPercent != nil && (*in.TargetBodyFatPercent < 0 || *in.TargetBodyFatPercent > 100) {
		return nil, validationErrorf("target body fat must be between 0 and 100")
	}
	if in.TargetDate != nil {
		if in.TargetDate.Before(time.Now()) {
			return nil, validationErrorf("target date cannot be in the past")
		}
		if in.TargetDate.After(time.Now().AddDate(10, 0, 0)) {
			return nil, validationErrorf("target date is too far in the future")
		}
	}

	if err := s.requireMember(memberID); err != nil {
		return nil, err
	}

	goal := &models.FitnessGoal{
		MemberID:             memberID,
		GoalType:             strings.TrimSpace(in.GoalType),
		TargetBodyWeightKg:   in.TargetBodyWeightKg,
		TargetBodyFatPercent: in.TargetBodyFatPercent,
		SetDate:              time.Now(),
		TargetDate:           in.TargetDate,
		GoalStatus:           models.GoalActive,
		Notes:                strings.TrimSpace(in.Notes),
	}
	if err := s.db.Create(goal).Error; err != nil {
		return nil, translateDBError(err)
	}
	return goal, nil
}

type LogMetricInput struct {
	RecordedAt       time.Time
	HeightCm         *float64
	WeightKg         *float64
	BodyFatPercent   *float64
	RestingHeartRate *int
	Notes            string
}

// LogHealthMetric appends a time-stamped reading. Metrics are historical
// records: there is no update, only insert.
func (s *MemberService) LogHealthMetric(memberID uuid.UUID, in LogMetricInput) (*models.HealthMetric, error) {
	if in.RecordedAt.After(time.Now()) {
		return nil, validationErrorf("recorded date cannot be in the future")
	}
	if in.HeightCm == nil && in.WeightKg == nil && in.BodyFatPercent == nil && in.RestingHeartRate == nil {
		return nil, validationErrorf("at least one metric must be provided")
	}
	if in.HeightCm != nil && (*in.HeightCm <= 0 || *in.HeightCm > 300) {
		return nil, validationErrorf("height out of range")
	}
	if in.WeightKg != nil && (*in.WeightKg <= 0 || *in.WeightKg > 1000) {
		return nil, validationErrorf("weight out of range")
	}
	if in.BodyFatPercent != nil && (*in.BodyFatPercent < 0 || *in.BodyFatPercent > 100) {
		return nil, validationErrorf("body fat must be between 0 and 100")
	}
	if in.RestingHeartRate != nil && (*in.RestingHeartRate < 30 || *in.RestingHeartRate > 200) {
		return nil, validationErrorf("resting heart rate must be between 30 and 200 bpm")
	}

	if err := s.requireMember(memberID); err != nil {
		return nil, err
	}

	metric := &models.HealthMetric{
		MemberID:         memberID,
		RecordedAt:       in.RecordedAt,
		HeightCm:         in.HeightCm,
		WeightKg:         in.WeightKg,
		BodyFatPercent:   in.BodyFatPercent,
		RestingHeartRate: in.RestingHeartRate,
		Notes:            strings.TrimSpace(in.Notes),
	}
	if err := s.db.Create(metric).Error; err != nil {
		return nil, translateDBError(err)
	}
	return metric, nil
}

// MemberSummary pairs a member with their latest goal and latest metric, the
// shape trainers see on lookup.
type MemberSummary struct {
	Member       models.Member        `json:"member"`
	LatestGoal   *models.FitnessGoal  `json:"latestGoal"`
	LatestMetric *models.HealthMetric `json:"latestMetric"`
}

// SearchMembers matches a case-insensitive name/email substring, handling
// "First Last" and "Last First" forms, ordered by id for stable pagination.
func (s *MemberService) SearchMembers(query string) ([]MemberSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, validationErrorf("search term cannot be empty")
	}
	if len(query) > 100 {
		return nil, validationErrorf("search term cannot exceed 100 characters")
	}

	pattern := "%" + query + "%"
	q := s.db.Model(&models.Member{})

	parts := strings.Fields(query)
	if len(parts) >= 2 {
		first := "%" + parts[0] + "%"
		last := "%" + parts[len(parts)-1] + "%"
		q = q.Where(
			s.db.Where("first_name ILIKE ? AND last_name ILIKE ?", first, last).
				Or("last_name ILIKE ? AND first_name ILIKE ?", first, last).
				Or("first_name || ' ' || last_name ILIKE ?", pattern).
				Or("email ILIKE ?", pattern))
	} else {
		q = q.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?",
			pattern, pattern, pattern)
	}

	var members []models.Member
	if err := q.Order("id").Limit(100).Find(&members).Error; err != nil {
		return nil, translateDBError(err)
	}

	results := make([]MemberSummary, 0, len(members))
	for _, m := range members {
		summary := MemberSummary{Member: m}

		var goal models.FitnessGoal
		err := s.db.Where("member_id = ?", m.ID).
			Order("set_date DESC").First(&goal).Error
		if err == nil {
			summary.LatestGoal = &goal
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, translateDBError(err)
		}

		var metric models.HealthMetric
		err = s.db.Where("member_id = ?", m.ID).
			Order("recorded_at DESC").First(&metric).Error
		if err == nil {
			summary.LatestMetric = &metric
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, translateDBError(err)
		}

		results = append(results, summary)
	}
	return results, nil
}

// MemberHistory is the chronological goal and metric history of one member.
type MemberHistory struct {
	Goals   []models.FitnessGoal  `json:"goals"`
	Metrics []models.HealthMetric `json:"metrics"`
}

// GetMemberGoalsAndMetrics returns goals and metrics ordered by creation time.
// Metrics are append-only, so this is a true chronological history.
func (s *MemberService) GetMemberGoalsAndMetrics(memberID uuid.UUID) (*MemberHistory, error) {
	if err := s.requireMember(memberID); err != nil {
		return nil, err
	}

	var history MemberHistory
	if err := s.db.Where("member_id = ?", memberID).
		Order("set_date").Find(&history.Goals).Error; err != nil {
		return nil, translateDBError(err)
	}
	if err := s.db.Where("member_id = ?", memberID).
		Order("recorded_at").Find(&history.Metrics).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &history, nil
}

func (s *MemberService) GetMember(memberID uuid.UUID) (*models.Member, error) {
	var member models.Member
	if err := s.db.First(&member, "id = ?", memberID).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &member, nil
}

func (s *MemberService) requireMember(memberID uuid.UUID) error {
	var member models.Member
	if err := s.db.Select("id").First(&member, "id = ?", memberID).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

func validateName(name, field string) error {
	if strings.TrimSpace(name) == "" {
		return validationErrorf("%s is required", field)
	}
	if len(name) > 50 {
		return validationErrorf("%s cannot exceed 50 characters", field)
	}
	return nil
}

func validateDateOfBirth(dob *time.Time) error {
	if dob == nil {
		return nil
	}
	now := time.Now()
	if dob.After(now) {
		return validationErrorf("date of birth cannot be in the future")
	}
	age := int(now.Sub(*dob).Hours() / 24 / 365)
	if age > 120 {
		return validationErrorf("date of birth is unreasonably old")
	}
	if age < 13 {
		return validationErrorf("member must be at least 13 years old")
	}
	return nil
}

func normalizeGender(g string) (string, error) {
	g = strings.ToUpper(strings.TrimSpace(g))
	switch g {
	case "", "M", "F", "O":
		return g, nil
	}
	return "", validationErrorf("gender must be M, F, O or empty")
}

func validMembershipStatus(status string) bool {
	switch status {
	case models.MembershipActive, models.MembershipInactive,
		models.MembershipSuspended, models.MembershipCancelled:
		return true
	}
	return false
}
