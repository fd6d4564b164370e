// controllers/staff.go
package controllers

import (
	"net/http"

	"fitclub-backend/services"
	"fitclub-backend/utils"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	facility *services.FacilityService
}

func NewStaffController(facility *services.FacilityService) *StaffController {
	return &StaffController{facility: facility}
}

type CreateStaffInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"required"`
}

func (sc *StaffController) Create(c *gin.Context) {
	var input CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	staff, err := sc.facility.CreateStaff(services.CreateStaffInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      input.Role,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, staff)
}

func (sc *StaffController) List(c *gin.Context) {
	staff, err := sc.facility.ListStaff()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}
