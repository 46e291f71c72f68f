package store

import (
	"context"
	"errors"

	"wastetrack-be/models"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a record changed between read and write.
	ErrConflict = errors.New("record modified concurrently")
)

// ComplaintRepository owns the ordered complaint sequence, newest first.
type ComplaintRepository interface {
	List(ctx context.Context) ([]models.Complaint, error)
	FindByID(ctx context.Context, id int) (models.Complaint, error)
	// InsertFront assigns the next id (count+1) and places c at the head of
	// the sequence.
	InsertFront(ctx context.Context, c models.Complaint) (models.Complaint, error)
	// UpdateStatus applies mutate to the stored record atomically. An error
	// returned by mutate aborts the update and is passed back unchanged.
	UpdateStatus(ctx context.Context, id int, mutate func(*models.Complaint) error) (models.Complaint, error)
}

// VehicleRepository is the read-only fleet.
type VehicleRepository interface {
	List(ctx context.Context) ([]models.Vehicle, error)
	FindByID(ctx context.Context, id string) (models.Vehicle, error)
}

// frontSeq orders a new complaint ahead of every older one. Seed records use
// non-negative sequence numbers, inserted records use -id.
func frontSeq(id int) int {
	return -id
}
