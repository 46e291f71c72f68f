package routes

import (
	"wastetrack-be/controllers"
	"wastetrack-be/services"

	"github.com/gin-gonic/gin"
)

// VehicleRoutes sets up the read-only fleet API
func VehicleRoutes(r *gin.Engine, svc *services.ComplaintService) {
	ctl := &controllers.VehicleController{Service: svc}

	vehicle := r.Group("/api/vehicles")
	{
		vehicle.GET("", ctl.ListVehicles)
		vehicle.GET("/assignable", ctl.ListAssignableVehicles)
	}
}
