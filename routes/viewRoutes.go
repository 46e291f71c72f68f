package routes

import (
	"wastetrack-be/controllers"
	"wastetrack-be/services"

	"github.com/gin-gonic/gin"
)

// ViewRoutes exposes the portal and map projections as JSON
func ViewRoutes(r *gin.Engine, svc *services.ComplaintService) {
	ctl := &controllers.ViewController{Service: svc}

	view := r.Group("/api/views")
	{
		view.GET("/citizen", ctl.CitizenView)
		view.GET("/admin", ctl.AdminView)
		view.GET("/vehicle", ctl.VehicleView)
	}
	r.GET("/api/map", ctl.MapView)
}
