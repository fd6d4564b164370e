// controllers/trainer.go
package controllers

import (
	"net/http"
	"time"

	"fitclub-backend/services"
	"fitclub-backend/utils"

	"github.com/gin-gonic/gin"
)

type TrainerController struct {
	trainers *services.TrainerService
}

func NewTrainerController(trainers *services.TrainerService) *TrainerController {
	return &TrainerController{trainers: trainers}
}

type CreateTrainerInput struct {
	FirstName string     `json:"firstName" binding:"required"`
	LastName  string     `json:"lastName" binding:"required"`
	Email     string     `json:"email" binding:"required,email"`
	Phone     string     `json:"phone"`
	Specialty string     `json:"specialty"`
	HireDate  *time.Time `json:"hireDate"`
}

func (tc *TrainerController) Create(c *gin.Context) {
	var input CreateTrainerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	trainer, err := tc.trainers.CreateTrainer(services.CreateTrainerInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Specialty: input.Specialty,
		HireDate:  input.HireDate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trainer)
}

func (tc *TrainerController) List(c *gin.Context) {
	trainers, err := tc.trainers.ListTrainers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainers)
}

func (tc *TrainerController) Get(c *gin.Context) {
	trainerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	trainer, err := tc.trainers.GetTrainer(trainerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// SetAvailabilityInput is a proposed availability window
type SetAvailabilityInput struct {
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

func (tc *TrainerController) SetAvailability(c *gin.Context) {
	trainerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input SetAvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	slot, err := tc.trainers.SetAvailability(trainerID, input.StartTime, input.EndTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

func (tc *TrainerController) GetAvailability(c *gin.Context) {
	trainerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	slots, err := tc.trainers.GetAvailability(trainerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GetSchedule handles GET /trainers/:id/schedule?from=...&to=... with RFC 3339
// bounds; from defaults to now.
func (tc *TrainerController) GetSchedule(c *gin.Context) {
	trainerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	from := time.Now()
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid 'from' timestamp")
			return
		}
		from = parsed
	}
	var to time.Time
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid 'to' timestamp")
			return
		}
		to = parsed
	}

	sessions, err := tc.trainers.GetSchedule(trainerID, from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}
