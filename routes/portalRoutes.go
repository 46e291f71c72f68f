package routes

import (
	"wastetrack-be/controllers"
	"wastetrack-be/services"
	"wastetrack-be/views"

	"github.com/gin-gonic/gin"
)

// PortalRoutes loads the page templates and sets up the HTML portals
func PortalRoutes(r *gin.Engine, svc *services.ComplaintService, submitLimiter gin.HandlerFunc) error {
	tmpl, err := views.LoadTemplates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	ctl := &controllers.PortalController{Service: svc}

	r.GET("/", ctl.Index)
	r.GET("/map", ctl.MapPage)

	r.GET("/citizen", ctl.CitizenPage)
	r.POST("/citizen/complaints", submitLimiter, ctl.SubmitComplaint)

	r.GET("/admin", ctl.AdminPage)
	r.POST("/admin/complaints/:id/assign", ctl.AssignComplaint)

	r.GET("/vehicle", ctl.VehiclePage)
	r.POST("/vehicle/complaints/:id/resolve", ctl.ResolveComplaint)
	return nil
}
