package routes

import (
	"wastetrack-be/controllers"
	"wastetrack-be/services"

	"github.com/gin-gonic/gin"
)

// ComplaintRoutes sets up the complaint JSON API
func ComplaintRoutes(r *gin.Engine, svc *services.ComplaintService, submitLimiter gin.HandlerFunc) {
	ctl := &controllers.ComplaintController{Service: svc}

	complaint := r.Group("/api/complaints")
	{
		complaint.GET("", ctl.ListComplaints)
		complaint.POST("", submitLimiter, ctl.CreateComplaint)
		complaint.GET("/:id", ctl.GetComplaint)
		complaint.POST("/:id/assign", ctl.AssignComplaint)
		complaint.POST("/:id/resolve", ctl.ResolveComplaint)
	}
}
