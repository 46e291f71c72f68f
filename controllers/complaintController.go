package controllers

import (
	"net/http"

	"wastetrack-be/services"

	"github.com/gin-gonic/gin"
)

// ComplaintController serves the complaint JSON API.
type ComplaintController struct {
	Service *services.ComplaintService
}

// ListComplaints returns every complaint, newest first
func (ctl *ComplaintController) ListComplaints(c *gin.Context) {
	complaints, err := ctl.Service.Complaints(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// GetComplaint retrieves a complaint by its ID
func (ctl *ComplaintController) GetComplaint(c *gin.Context) {
	id, ok := parseComplaintID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	complaint, err := ctl.Service.Complaint(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// CreateComplaint handles citizen submission of a new complaint
func (ctl *ComplaintController) CreateComplaint(c *gin.Context) {
	var input struct {
		Description string     `json:"description" binding:"required,max=1000"`
		Latitude    coordinate `json:"latitude" binding:"required,lat"`
		Longitude   coordinate `json:"longitude" binding:"required,lng"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := ctl.Service.Submit(c.Request.Context(), services.SubmitInput{
		Description: input.Description,
		Latitude:    string(input.Latitude),
		Longitude:   string(input.Longitude),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, complaint)
}

// AssignComplaint binds a pending complaint to a vehicle
func (ctl *ComplaintController) AssignComplaint(c *gin.Context) {
	id, ok := parseComplaintID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	var input struct {
		VehicleID string `json:"vehicleId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := ctl.Service.Assign(c.Request.Context(), id, input.VehicleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// ResolveComplaint marks an assigned complaint as resolved
func (ctl *ComplaintController) ResolveComplaint(c *gin.Context) {
	id, ok := parseComplaintID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	complaint, err := ctl.Service.Resolve(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}
