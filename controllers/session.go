// controllers/session.go
package controllers

import (
	"net/http"
	"time"

	"fitclub-backend/services"
	"fitclub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionController struct {
	scheduler *services.SchedulerService
}

func NewSessionController(scheduler *services.SchedulerService) *SessionController {
	return &SessionController{scheduler: scheduler}
}

// ScheduleSessionInput defines the expected JSON structure for a booking
type ScheduleSessionInput struct {
	MemberID    uuid.UUID  `json:"memberId" binding:"required"`
	TrainerID   uuid.UUID  `json:"trainerId" binding:"required"`
	RoomID      *uuid.UUID `json:"roomId"`
	StartTime   time.Time  `json:"startTime" binding:"required"`
	EndTime     time.Time  `json:"endTime" binding:"required"`
	SessionType string     `json:"sessionType" binding:"omitempty,oneof='Personal Training' 'Group Class'"`
	MaxCapacity *int       `json:"maxCapacity"`
	Notes       string     `json:"notes"`
}

// RescheduleSessionInput is the new window for an existing session
type RescheduleSessionInput struct {
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

// AssignRoomInput names the room to book for a session
type AssignRoomInput struct {
	RoomID uuid.UUID `json:"roomId" binding:"required"`
}

func (sc *SessionController) Schedule(c *gin.Context) {
	var input ScheduleSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	session, err := sc.scheduler.ScheduleSession(services.ScheduleRequest{
		MemberID:    input.MemberID,
		TrainerID:   input.TrainerID,
		RoomID:      input.RoomID,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		SessionType: input.SessionType,
		MaxCapacity: input.MaxCapacity,
		Notes:       input.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (sc *SessionController) Reschedule(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input RescheduleSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	session, err := sc.scheduler.RescheduleSession(sessionID, input.StartTime, input.EndTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (sc *SessionController) AssignRoom(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input AssignRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	session, err := sc.scheduler.AssignRoom(sessionID, input.RoomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (sc *SessionController) Cancel(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := sc.scheduler.CancelSession(sessionID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session cancelled"})
}
