package controllers

import (
	"context"
	"net/http"

	"wastetrack-be/models"
	"wastetrack-be/services"
	"wastetrack-be/views"

	"github.com/gin-gonic/gin"
)

// ViewController exposes the portal projections as JSON.
type ViewController struct {
	Service *services.ComplaintService
}

// snapshot reads both stores; every projection is rebuilt from it per request.
func snapshot(ctx context.Context, svc *services.ComplaintService) ([]models.Complaint, []models.Vehicle, error) {
	complaints, err := svc.Complaints(ctx)
	if err != nil {
		return nil, nil, err
	}
	vehicles, err := svc.Vehicles(ctx)
	if err != nil {
		return nil, nil, err
	}
	return complaints, vehicles, nil
}

func (ctl *ViewController) CitizenView(c *gin.Context) {
	complaints, vehicles, err := snapshot(c.Request.Context(), ctl.Service)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views.BuildCitizenView(complaints, vehicles))
}

func (ctl *ViewController) AdminView(c *gin.Context) {
	complaints, vehicles, err := snapshot(c.Request.Context(), ctl.Service)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views.BuildAdminView(complaints, vehicles))
}

// VehicleView accepts an optional ?vehicle= filter.
func (ctl *ViewController) VehicleView(c *gin.Context) {
	complaints, vehicles, err := snapshot(c.Request.Context(), ctl.Service)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views.BuildVehicleView(complaints, vehicles, c.Query("vehicle")))
}

func (ctl *ViewController) MapView(c *gin.Context) {
	complaints, vehicles, err := snapshot(c.Request.Context(), ctl.Service)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views.BuildMap(complaints, vehicles))
}
