package controllers

import (
	"net/http"

	"wastetrack-be/services"

	"github.com/gin-gonic/gin"
)

type VehicleController struct {
	Service *services.ComplaintService
}

// ListVehicles returns the whole fleet
func (ctl *VehicleController) ListVehicles(c *gin.Context) {
	vehicles, err := ctl.Service.Vehicles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// ListAssignableVehicles returns vehicles that are not under maintenance
func (ctl *VehicleController) ListAssignableVehicles(c *gin.Context) {
	vehicles, err := ctl.Service.AssignableVehicles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}
