package store

import (
	"context"
	"fmt"
	"sync"

	"wastetrack-be/models"
)

// MemoryComplaintRepository keeps complaints in a slice ordered newest first.
type MemoryComplaintRepository struct {
	mu         sync.RWMutex
	complaints []models.Complaint
}

// NewMemoryComplaintRepository returns a repository holding a copy of seed in
// the given order.
func NewMemoryComplaintRepository(seed []models.Complaint) *MemoryComplaintRepository {
	complaints := make([]models.Complaint, 0, len(seed))
	for _, c := range seed {
		complaints = append(complaints, c.Clone())
	}
	return &MemoryComplaintRepository{complaints: complaints}
}

func (r *MemoryComplaintRepository) List(ctx context.Context) ([]models.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Complaint, 0, len(r.complaints))
	for _, c := range r.complaints {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (r *MemoryComplaintRepository) FindByID(ctx context.Context, id int) (models.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Complaint{}, fmt.Errorf("complaint %d: %w", id, ErrNotFound)
	}
	return r.complaints[i].Clone(), nil
}

func (r *MemoryComplaintRepository) InsertFront(ctx context.Context, c models.Complaint) (models.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c = c.Clone()
	c.ID = len(r.complaints) + 1
	c.Seq = frontSeq(c.ID)

	r.complaints = append([]models.Complaint{c}, r.complaints...)
	return c.Clone(), nil
}

func (r *MemoryComplaintRepository) UpdateStatus(ctx context.Context, id int, mutate func(*models.Complaint) error) (models.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Complaint{}, fmt.Errorf("complaint %d: %w", id, ErrNotFound)
	}

	updated := r.complaints[i].Clone()
	if err := mutate(&updated); err != nil {
		return models.Complaint{}, err
	}
	// identity and ordering are not the caller's to change
	updated.ID = r.complaints[i].ID
	updated.Seq = r.complaints[i].Seq

	r.complaints[i] = updated
	return updated.Clone(), nil
}

// indexOf is a linear scan; callers hold the lock.
func (r *MemoryComplaintRepository) indexOf(id int) int {
	for i := range r.complaints {
		if r.complaints[i].ID == id {
			return i
		}
	}
	return -1
}

// MemoryVehicleRepository serves a fixed fleet.
type MemoryVehicleRepository struct {
	vehicles []models.Vehicle
}

func NewMemoryVehicleRepository(vehicles []models.Vehicle) *MemoryVehicleRepository {
	return &MemoryVehicleRepository{vehicles: append([]models.Vehicle(nil), vehicles...)}
}

func (r *MemoryVehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	return append([]models.Vehicle(nil), r.vehicles...), nil
}

func (r *MemoryVehicleRepository) FindByID(ctx context.Context, id string) (models.Vehicle, error) {
	for _, v := range r.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Vehicle{}, fmt.Errorf("vehicle %q: %w", id, ErrNotFound)
}
