package services

import (
	"strings"
	"time"

	"fitclub-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FacilityService covers the admin-side records without conflict logic: rooms,
// staff and the dashboard rollups built on the derived views.
type FacilityService struct {
	db *gorm.DB
}

func NewFacilityService(db *gorm.DB) *FacilityService {
	return &FacilityService{db: db}
}

type CreateRoomInput struct {
	RoomNumber string
	Capacity   int
	RoomType   string
}

func (s *FacilityService) CreateRoom(in CreateRoomInput) (*models.Room, error) {
	if strings.TrimSpace(in.RoomNumber) == "" {
		return nil, validationErrorf("room number is required")
	}
	if in.Capacity < 0 {
		return nil, validationErrorf("capacity cannot be negative")
	}
	room := &models.Room{
		RoomNumber: strings.TrimSpace(in.RoomNumber),
		Capacity:   in.Capacity,
		RoomType:   strings.TrimSpace(in.RoomType),
	}
	if err := s.db.Create(room).Error; err != nil {
		return nil, translateDBError(err)
	}
	return room, nil
}

func (s *FacilityService) ListRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, translateDBError(err)
	}
	return rooms, nil
}

// DeleteRoom refuses to delete a room that still has sessions booked; no
// silent orphaning.
func (s *FacilityService) DeleteRoom(roomID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, "id = ?", roomID).Error; err != nil {
			return translateDBError(err)
		}

		var sessions int64
		if err := tx.Model(&models.TrainingSession{}).
			Where("room_id = ?", roomID).Count(&sessions).Error; err != nil {
			return translateDBError(err)
		}
		if sessions > 0 {
			return ErrReferentialViolation
		}

		if err := tx.Delete(&room).Error; err != nil {
			return translateDBError(err)
		}
		return nil
	})
}

type CreateStaffInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      string
}

func (s *FacilityService) CreateStaff(in CreateStaffInput) (*models.AdminStaff, error) {
	if err := validateName(in.FirstName, "first name"); err != nil {
		return nil, err
	}
	if err := validateName(in.LastName, "last name"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Role) == "" {
		return nil, validationErrorf("role is required")
	}
	staff := &models.AdminStaff{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Role:      strings.TrimSpace(in.Role),
	}
	if err := s.db.Create(staff).Error; err != nil {
		return nil, translateDBError(err)
	}
	return staff, nil
}

func (s *FacilityService) ListStaff() ([]models.AdminStaff, error) {
	var staff []models.AdminStaff
	if err := s.db.Order("id").Find(&staff).Error; err != nil {
		return nil, translateDBError(err)
	}
	return staff, nil
}

// RoomOccupancy is one row of room_occupancy_view.
type RoomOccupancy struct {
	RoomID           uuid.UUID  `json:"roomId"`
	RoomNumber       string     `json:"roomNumber"`
	RoomType         string     `json:"roomType"`
	Capacity         int        `json:"capacity"`
	UpcomingBookings int        `json:"upcomingBookings"`
	NextBookingAt    *time.Time `json:"nextBookingAt"`
}

// RoomOccupancyReport reads the occupancy view; it reflects all committed
// session writes.
func (s *FacilityService) RoomOccupancyReport() ([]RoomOccupancy, error) {
	var report []RoomOccupancy
	if err := s.db.Raw(`SELECT * FROM room_occupancy_view ORDER BY room_number`).
		Scan(&report).Error; err != nil {
		return nil, translateDBError(err)
	}
	return report, nil
}

// DashboardOverview is the admin landing-page rollup.
type DashboardOverview struct {
	TotalMembers     int64           `json:"totalMembers"`
	ActiveMembers    int64           `json:"activeMembers"`
	UpcomingSessions int64           `json:"upcomingSessions"`
	OpenIssues       int64           `json:"openIssues"`
	UnpaidInvoices   int64           `json:"unpaidInvoices"`
	MonthlyRevenue   float64         `json:"monthlyRevenue"`
	Rooms            []RoomOccupancy `json:"rooms"`
}

func (s *FacilityService) DashboardOverview() (*DashboardOverview, error) {
	var overview DashboardOverview

	if err := s.db.Model(&models.Member{}).Count(&overview.TotalMembers).Error; err != nil {
		return nil, translateDBError(err)
	}
	if err := s.db.Model(&models.Member{}).
		Where("membership_status = ?", models.MembershipActive).
		Count(&overview.ActiveMembers).Error; err != nil {
		return nil, translateDBError(err)
	}
	if err := s.db.Model(&models.TrainingSession{}).
		Where("start_time >= ?", time.Now()).
		Count(&overview.UpcomingSessions).Error; err != nil {
		return nil, translateDBError(err)
	}
	if err := s.db.Model(&models.MaintenanceIssue{}).
		Where("status <> ?", models.IssueResolved).
		Count(&overview.OpenIssues).Error; err != nil {
		return nil, translateDBError(err)
	}
	if err := s.db.Model(&models.Invoice{}).
		Where("payment_status = ?", models.InvoiceUnpaid).
		Count(&overview.UnpaidInvoices).Error; err != nil {
		return nil, translateDBError(err)
	}

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if err := s.db.Model(&models.Invoice{}).
		Where("invoice_date >= ?", firstOfMonth).
		Select("COALESCE(SUM(paid_amount), 0)").
		Scan(&overview.MonthlyRevenue).Error; err != nil {
		return nil, translateDBError(err)
	}

	rooms, err := s.RoomOccupancyReport()
	if err != nil {
		return nil, err
	}
	overview.Rooms = rooms

	return &overview, nil
}

// GetTrainerScheduleView reads trainer_schedule_view for one trainer.
func (s *FacilityService) GetTrainerScheduleView(trainerID uuid.UUID) ([]TrainerScheduleRow, error) {
	var rows []TrainerScheduleRow
	if err := s.db.Raw(
		`SELECT * FROM trainer_schedule_view WHERE trainer_id = ?`, trainerID).
		Scan(&rows).Error; err != nil {
		return nil, translateDBError(err)
	}
	return rows, nil
}

// MemberDashboardRow is one member's rollup from member_dashboard_view.
type MemberDashboardRow struct {
	MemberID             uuid.UUID  `json:"memberId"`
	FirstName            string     `json:"firstName"`
	LastName             string     `json:"lastName"`
	Email                string     `json:"email"`
	MembershipStatus     string     `json:"membershipStatus"`
	LatestWeightKg       *float64   `json:"latestWeightKg"`
	LatestMetricAt       *time.Time `json:"latestMetricAt"`
	CurrentGoal          *string    `json:"currentGoal"`
	PastSessionCount     int        `json:"pastSessionCount"`
	UpcomingSessionCount int        `json:"upcomingSessionCount"`
}

func (s *FacilityService) GetMemberDashboard(memberID uuid.UUID) (*MemberDashboardRow, error) {
	var row MemberDashboardRow
	res := s.db.Raw(
		`SELECT * FROM member_dashboard_view WHERE member_id = ?`, memberID).
		Scan(&row)
	if res.Error != nil {
		return nil, translateDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &row, nil
}

type TrainerScheduleRow struct {
	TrainerID   uuid.UUID `json:"trainerId"`
	TrainerName string    `json:"trainerName"`
	SessionID   uuid.UUID `json:"sessionId"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	SessionType string    `json:"sessionType"`
	MemberName  string    `json:"memberName"`
	RoomNumber  *string   `json:"roomNumber"`
}
