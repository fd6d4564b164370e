// controllers/dashboard.go
package controllers

import (
	"net/http"

	"fitclub-backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	facility *services.FacilityService
}

func NewDashboardController(facility *services.FacilityService) *DashboardController {
	return &DashboardController{facility: facility}
}

func (dc *DashboardController) Overview(c *gin.Context) {
	overview, err := dc.facility.DashboardOverview()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// MemberSummary renders one member's rollup: latest metric, current goal and
// session counts, all from the dashboard view.
func (dc *DashboardController) MemberSummary(c *gin.Context) {
	memberID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	row, err := dc.facility.GetMemberDashboard(memberID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// TrainerSchedule renders one trainer's upcoming sessions from the
// denormalized schedule view, with member and room names already joined.
func (dc *DashboardController) TrainerSchedule(c *gin.Context) {
	trainerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	rows, err := dc.facility.GetTrainerScheduleView(trainerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": rows, "count": len(rows)})
}
