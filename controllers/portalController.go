package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"wastetrack-be/services"
	"wastetrack-be/views"

	"github.com/gin-gonic/gin"
)

// PortalController renders the citizen, admin and vehicle pages and handles
// their form posts with post/redirect/get.
type PortalController struct {
	Service *services.ComplaintService
}

func page(c *gin.Context, title, portal string, view interface{}) views.Page {
	return views.Page{
		Title:   title,
		Portal:  portal,
		Notice:  c.Query("notice"),
		IsError: c.Query("error") == "1",
		View:    view,
	}
}

// redirectWithNotice sends the browser back to a portal with a toast message.
func redirectWithNotice(c *gin.Context, path string, query url.Values, notice string, isError bool) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("notice", notice)
	if isError {
		query.Set("error", "1")
	}
	c.Redirect(http.StatusSeeOther, path+"?"+query.Encode())
}

// noticeFor turns a lifecycle error into toast text, logging internal failures.
func noticeFor(c *gin.Context, err error) string {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("portal action failed", "path", c.FullPath(), "request_id", c.GetString("request_id"), "error", err)
	}
	return userMessage(err, status)
}

// PortalLimitExceeded sends a rate-limited citizen back to the portal with an
// error toast instead of a JSON body.
func PortalLimitExceeded(c *gin.Context, retryAfter time.Duration) {
	notice := "Too many complaints submitted today, please try again later"
	if retryAfter > 0 {
		notice = fmt.Sprintf("Too many complaints submitted today, please try again in %s", retryAfter.Round(time.Minute))
	}
	redirectWithNotice(c, "/citizen", nil, notice, true)
	c.Abort()
}

func (ctl *PortalController) renderError(c *gin.Context, err error) {
	c.String(statusFor(err), noticeFor(c, err))
}

func (ctl *PortalController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", page(c, "Home", "home", nil))
}

func (ctl *PortalController) CitizenPage(c *gin.Context) {
	complaints, vehicles, err := snapshot(c.Request.Context(), ctl.Service)
	if err != nil {
		ctl.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "citizen.html", page(c, "Citizen", "citizen-portal", views.BuildCitizenView(complaints, vehicles)))
}

func (ctl *PortalController) AdminPage(c *gin.Context) {
	complaints, vehicles, err := snapshot(c.Request.Context(), ctl.Service)
	if err != nil {
		ctl.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "admin.html", page(c, "Admin", "admin-portal", views.BuildAdminView(complaints, vehicles)))
}

func (ctl *PortalController) VehiclePage(c *gin.Context) {
	complaints, vehicles, err := snapshot(c.Request.Context(), ctl.Service)
	if err != nil {
		ctl.renderError(c, err)
		return
	}
	view := views.BuildVehicleView(complaints, vehicles, c.Query("vehicle"))
	c.HTML(http.StatusOK, "vehicle.html", page(c, "Vehicle", "vehicle-portal", view))
}

func (ctl *PortalController) MapPage(c *gin.Context) {
	c.HTML(http.StatusOK, "map.html", page(c, "Map", "map-portal", nil))
}

// SubmitComplaint handles the citizen complaint form
func (ctl *PortalController) SubmitComplaint(c *gin.Context) {
	var input struct {
		Description string `form:"description"`
		Latitude    string `form:"latitude"`
		Longitude   string `form:"longitude"`
	}
	if err := c.ShouldBind(&input); err != nil {
		redirectWithNotice(c, "/citizen", nil, "Could not read the complaint form", true)
		return
	}

	complaint, err := ctl.Service.Submit(c.Request.Context(), services.SubmitInput{
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
	})
	if err != nil {
		redirectWithNotice(c, "/citizen", nil, noticeFor(c, err), true)
		return
	}

	redirectWithNotice(c, "/citizen", nil, fmt.Sprintf("Complaint #%d submitted successfully", complaint.ID), false)
}

// AssignComplaint handles the admin assign form
func (ctl *PortalController) AssignComplaint(c *gin.Context) {
	id, ok := parseComplaintID(c)
	if !ok {
		redirectWithNotice(c, "/admin", nil, "Invalid complaint ID", true)
		return
	}

	vehicleID := c.PostForm("vehicle")
	if _, err := ctl.Service.Assign(c.Request.Context(), id, vehicleID); err != nil {
		redirectWithNotice(c, "/admin", nil, noticeFor(c, err), true)
		return
	}

	redirectWithNotice(c, "/admin", nil, fmt.Sprintf("Complaint #%d assigned to %s", id, vehicleID), false)
}

// ResolveComplaint handles the vehicle operator resolve button
func (ctl *PortalController) ResolveComplaint(c *gin.Context) {
	query := url.Values{}
	if v := c.Query("vehicle"); v != "" {
		query.Set("vehicle", v)
	}

	id, ok := parseComplaintID(c)
	if !ok {
		redirectWithNotice(c, "/vehicle", query, "Invalid complaint ID", true)
		return
	}

	if _, err := ctl.Service.Resolve(c.Request.Context(), id); err != nil {
		redirectWithNotice(c, "/vehicle", query, noticeFor(c, err), true)
		return
	}

	redirectWithNotice(c, "/vehicle", query, fmt.Sprintf("Complaint #%d marked as resolved", id), false)
}
