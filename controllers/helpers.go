package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"wastetrack-be/services"

	"github.com/gin-gonic/gin"
)

// statusFor maps lifecycle errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrComplaintNotFound), errors.Is(err, services.ErrVehicleNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrIllegalTransition), errors.Is(err, services.ErrVehicleUnavailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// userMessage hides internal failures from clients.
func userMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "Something went wrong"
	}
	return err.Error()
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "path", c.FullPath(), "request_id", c.GetString("request_id"), "error", err)
	}
	c.JSON(status, gin.H{"error": userMessage(err, status)})
}

func parseComplaintID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// coordinate accepts a JSON number or string and keeps its raw text, so the
// lifecycle layer sees exactly what the client sent.
type coordinate string

func (c *coordinate) UnmarshalJSON(b []byte) error {
	*c = coordinate(strings.Trim(string(b), `"`))
	if *c == "null" {
		*c = ""
	}
	return nil
}
