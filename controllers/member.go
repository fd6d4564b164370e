// controllers/member.go
package controllers

import (
	"net/http"
	"time"

	"fitclub-backend/services"
	"fitclub-backend/utils"

	"github.com/gin-gonic/gin"
)

type MemberController struct {
	members *services.MemberService
}

func NewMemberController(members *services.MemberService) *MemberController {
	return &MemberController{members: members}
}

// RegisterMemberInput defines the expected JSON structure for registration
type RegisterMemberInput struct {
	FirstName        string     `json:"firstName" binding:"required"`
	LastName         string     `json:"lastName" binding:"required"`
	Email            string     `json:"email" binding:"required"`
	DateOfBirth      *time.Time `json:"dateOfBirth"`
	Gender           string     `json:"gender"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	MembershipStatus string     `json:"membershipStatus" binding:"omitempty,oneof=Active Inactive Suspended Cancelled"`
}

// UpdateProfileInput defines the expected JSON structure for a profile update
type UpdateProfileInput struct {
	FirstName   *string    `json:"firstName"`
	LastName    *string    `json:"lastName"`
	Phone       *string    `json:"phone"`
	Address     *string    `json:"address"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Gender      *string    `json:"gender"`
}

func (mc *MemberController) Register(c *gin.Context) {
	var input RegisterMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	member, err := mc.members.RegisterMember(services.RegisterMemberInput{
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		DateOfBirth:      input.DateOfBirth,
		Gender:           input.Gender,
		Phone:            input.Phone,
		Address:          input.Address,
		MembershipStatus: input.MembershipStatus,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (mc *MemberController) UpdateProfile(c *gin.Context) {
	memberID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	member, err := mc.members.UpdateProfile(memberID, services.UpdateProfileInput{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Phone:       input.Phone,
		Address:     input.Address,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (mc *MemberController) Get(c *gin.Context) {
	memberID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	member, err := mc.members.GetMember(memberID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// Search handles GET /members?q=...; trainers use it for member lookup.
func (mc *MemberController) Search(c *gin.Context) {
	results, err := mc.members.SearchMembers(c.Query("q"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// AddGoalInput defines the expected JSON structure for a fitness goal
type AddGoalInput struct {
	GoalType             string     `json:"goalType" binding:"required"`
	TargetBodyWeightKg   *float64   `json:"targetBodyWeightKg"`
	TargetBodyFatPercent *float64   `json:"targetBodyFatPercent"`
	TargetDate           *time.Time `json:"targetDate"`
	Notes                string     `json:"notes"`
}

func (mc *MemberController) AddGoal(c *gin.Context) {
	memberID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input AddGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	goal, err := mc.members.AddFitnessGoal(memberID, services.AddGoalInput{
		GoalType:             input.GoalType,
		TargetBodyWeightKg:   input.TargetBodyWeightKg,
		TargetBodyFatPercent: input.TargetBodyFatPercent,
		TargetDate:           input.TargetDate,
		Notes:                input.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// LogMetricInput defines the expected JSON structure for a health metric entry
type LogMetricInput struct {
	RecordedAt       time.Time `json:"recordedAt" binding:"required"`
	HeightCm         *float64  `json:"heightCm"`
	WeightKg         *float64  `json:"weightKg"`
	BodyFatPercent   *float64  `json:"bodyFatPercent"`
	RestingHeartRate *int      `json:"restingHeartRate"`
	Notes            string    `json:"notes"`
}

func (mc *MemberController) LogMetric(c *gin.Context) {
	memberID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input LogMetricInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	metric, err := mc.members.LogHealthMetric(memberID, services.LogMetricInput{
		RecordedAt:       input.RecordedAt,
		HeightCm:         input.HeightCm,
		WeightKg:         input.WeightKg,
		BodyFatPercent:   input.BodyFatPercent,
		RestingHeartRate: input.RestingHeartRate,
		Notes:            input.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, metric)
}

// History handles GET /members/:id/history, returning goals and metrics in
// chronological order.
func (mc *MemberController) History(c *gin.Context) {
	memberID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	history, err := mc.members.GetMemberGoalsAndMetrics(memberID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
