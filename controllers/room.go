// controllers/room.go
package controllers

import (
	"net/http"

	"fitclub-backend/services"
	"fitclub-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	facility *services.FacilityService
}

func NewRoomController(facility *services.FacilityService) *RoomController {
	return &RoomController{facility: facility}
}

type CreateRoomInput struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
	Capacity   int    `json:"capacity" binding:"min=0"`
	RoomType   string `json:"roomType"`
}

func (rc *RoomController) Create(c *gin.Context) {
	var input CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	room, err := rc.facility.CreateRoom(services.CreateRoomInput{
		RoomNumber: input.RoomNumber,
		Capacity:   input.Capacity,
		RoomType:   input.RoomType,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (rc *RoomController) List(c *gin.Context) {
	rooms, err := rc.facility.ListRooms()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (rc *RoomController) Delete(c *gin.Context) {
	roomID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := rc.facility.DeleteRoom(roomID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
}

func (rc *RoomController) Occupancy(c *gin.Context) {
	report, err := rc.facility.RoomOccupancyReport()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
