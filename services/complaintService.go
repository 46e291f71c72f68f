package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"wastetrack-be/models"
	"wastetrack-be/store"
)

// Clock returns the current time; tests pin it.
type Clock func() time.Time

// SubmitInput is the raw citizen form. Coordinates stay strings until
// validated here so malformed numbers are rejected rather than stored.
type SubmitInput struct {
	Description string
	Latitude    string
	Longitude   string
}

// ComplaintService owns the complaint lifecycle: pending -> assigned -> resolved.
type ComplaintService struct {
	complaints store.ComplaintRepository
	vehicles   store.VehicleRepository
	now        Clock
	log        *slog.Logger
}

func NewComplaintService(complaints store.ComplaintRepository, vehicles store.VehicleRepository, now Clock) *ComplaintService {
	if now == nil {
		now = time.Now
	}
	return &ComplaintService{
		complaints: complaints,
		vehicles:   vehicles,
		now:        now,
		log:        slog.Default().With("component", "complaints"),
	}
}

func (s *ComplaintService) today() string {
	return s.now().Format(models.DateLayout)
}

// Submit records a new pending complaint at the front of the store.
func (s *ComplaintService) Submit(ctx context.Context, in SubmitInput) (models.Complaint, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return models.Complaint{}, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	lat, err := ParseLatitude(in.Latitude)
	if err != nil {
		return models.Complaint{}, err
	}
	lng, err := ParseLongitude(in.Longitude)
	if err != nil {
		return models.Complaint{}, err
	}

	created, err := s.complaints.InsertFront(ctx, models.Complaint{
		Description: description,
		Location:    models.Location{Lat: lat, Lng: lng},
		Status:      models.Pending,
		Photo:       models.NewComplaintPhoto,
		Date:        s.today(),
	})
	if err != nil {
		return models.Complaint{}, fmt.Errorf("submit complaint: %w", err)
	}

	s.log.Info("complaint submitted", "complaint_id", created.ID)
	return created, nil
}

// decimalPattern accepts plain decimal degrees only: no exponents, NaN or Inf.
var decimalPattern = regexp.MustCompile(`^[-+]?(\d+(\.\d*)?|\.\d+)$`)

// ParseLatitude is the single rule for latitude input, shared with request binding.
func ParseLatitude(raw string) (float64, error) {
	return parseCoordinate("latitude", raw, 90)
}

// ParseLongitude is the single rule for longitude input, shared with request binding.
func ParseLongitude(raw string) (float64, error) {
	return parseCoordinate("longitude", raw, 180)
}

func parseCoordinate(name, raw string, limit float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
	}
	if !decimalPattern.MatchString(raw) {
		return 0, fmt.Errorf("%w: %s must be a decimal number", ErrInvalidInput, name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a decimal number", ErrInvalidInput, name)
	}
	if v < -limit || v > limit {
		return 0, fmt.Errorf("%w: %s must be within ±%g", ErrInvalidInput, name, limit)
	}
	return v, nil
}

// Assign moves a pending complaint to assigned on an existing, non-maintenance vehicle.
func (s *ComplaintService) Assign(ctx context.Context, complaintID int, vehicleID string) (models.Complaint, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return models.Complaint{}, fmt.Errorf("%w: vehicle is required", ErrInvalidInput)
	}

	// look the complaint up first so an unknown id reports not-found
	// regardless of the vehicle
	if _, err := s.Complaint(ctx, complaintID); err != nil {
		return models.Complaint{}, err
	}

	vehicle, err := s.Vehicle(ctx, vehicleID)
	if err != nil {
		return models.Complaint{}, err
	}
	if !vehicle.Assignable() {
		return models.Complaint{}, fmt.Errorf("%w: %s is under %s", ErrVehicleUnavailable, vehicle.ID, vehicle.Status)
	}

	updated, err := s.transition(ctx, complaintID, models.Pending, func(c *models.Complaint) {
		c.Status = models.Assigned
		c.AssignedTo = &vehicle.ID
	})
	if err != nil {
		return models.Complaint{}, err
	}

	s.log.Info("complaint assigned", "complaint_id", complaintID, "vehicle_id", vehicle.ID)
	return updated, nil
}

// Resolve closes an assigned complaint. Resolved is terminal.
func (s *ComplaintService) Resolve(ctx context.Context, complaintID int) (models.Complaint, error) {
	resolvedDate := s.today()
	updated, err := s.transition(ctx, complaintID, models.Assigned, func(c *models.Complaint) {
		photo := models.ResolvedPhoto
		c.Status = models.Resolved
		c.ResolvedDate = &resolvedDate
		c.ResolvedPhoto = &photo
	})
	if err != nil {
		return models.Complaint{}, err
	}

	s.log.Info("complaint resolved", "complaint_id", complaintID)
	return updated, nil
}

func (s *ComplaintService) transition(ctx context.Context, id int, from models.ComplaintStatus, apply func(*models.Complaint)) (models.Complaint, error) {
	updated, err := s.complaints.UpdateStatus(ctx, id, func(c *models.Complaint) error {
		if c.Status != from {
			return fmt.Errorf("%w: complaint %d is %s", ErrIllegalTransition, id, c.Status)
		}
		apply(c)
		return nil
	})
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, store.ErrNotFound):
		return models.Complaint{}, fmt.Errorf("%w: %d", ErrComplaintNotFound, id)
	case errors.Is(err, store.ErrConflict):
		return models.Complaint{}, fmt.Errorf("%w: complaint %d changed concurrently", ErrIllegalTransition, id)
	case errors.Is(err, ErrIllegalTransition):
		return models.Complaint{}, err
	default:
		return models.Complaint{}, fmt.Errorf("update complaint %d: %w", id, err)
	}
}

func (s *ComplaintService) Complaint(ctx context.Context, id int) (models.Complaint, error) {
	c, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Complaint{}, fmt.Errorf("%w: %d", ErrComplaintNotFound, id)
		}
		return models.Complaint{}, err
	}
	return c, nil
}

func (s *ComplaintService) Complaints(ctx context.Context) ([]models.Complaint, error) {
	return s.complaints.List(ctx)
}

func (s *ComplaintService) Vehicle(ctx context.Context, id string) (models.Vehicle, error) {
	v, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Vehicle{}, fmt.Errorf("%w: %s", ErrVehicleNotFound, id)
		}
		return models.Vehicle{}, err
	}
	return v, nil
}

func (s *ComplaintService) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	return s.vehicles.List(ctx)
}

// AssignableVehicles is the fleet minus vehicles under maintenance.
func (s *ComplaintService) AssignableVehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Assignable() {
			out = append(out, v)
		}
	}
	return out, nil
}
