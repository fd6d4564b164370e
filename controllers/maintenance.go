// controllers/maintenance.go
package controllers

import (
	"net/http"

	"fitclub-backend/services"
	"fitclub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaintenanceController struct {
	maintenance *services.MaintenanceService
}

func NewMaintenanceController(maintenance *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{maintenance: maintenance}
}

type ReportIssueInput struct {
	RoomID        uuid.UUID `json:"roomId" binding:"required"`
	ReportedByID  uuid.UUID `json:"reportedById" binding:"required"`
	EquipmentName string    `json:"equipmentName"`
	Description   string    `json:"description" binding:"required"`
	Priority      string    `json:"priority" binding:"omitempty,oneof=Low Medium High Critical"`
}

type UpdateIssueStatusInput struct {
	Status          string `json:"status" binding:"required,oneof=reported in_progress resolved"`
	ResolutionNotes string `json:"resolutionNotes"`
}

func (mc *MaintenanceController) Report(c *gin.Context) {
	var input ReportIssueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	issue, err := mc.maintenance.ReportIssue(services.ReportIssueInput{
		RoomID:        input.RoomID,
		ReportedByID:  input.ReportedByID,
		EquipmentName: input.EquipmentName,
		Description:   input.Description,
		Priority:      input.Priority,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, issue)
}

func (mc *MaintenanceController) UpdateStatus(c *gin.Context) {
	issueID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateIssueStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	issue, err := mc.maintenance.UpdateStatus(issueID, input.Status, input.ResolutionNotes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

// List handles GET /maintenance?roomId=...&status=...
func (mc *MaintenanceController) List(c *gin.Context) {
	var roomID *uuid.UUID
	if v := c.Query("roomId"); v != "" {
		parsed, err := uuid.Parse(v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid roomId format")
			return
		}
		roomID = &parsed
	}

	issues, err := mc.maintenance.ListIssues(roomID, c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, issues)
}
