package services

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrComplaintNotFound  = errors.New("complaint not found")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrVehicleUnavailable = errors.New("vehicle unavailable")
	ErrIllegalTransition  = errors.New("illegal status transition")
)
