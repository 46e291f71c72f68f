package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"wastetrack-be/models"
	"wastetrack-be/store"
)

var fixedNow = time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)

func newTestService() (*ComplaintService, *store.MemoryComplaintRepository) {
	complaints := store.NewMemoryComplaintRepository(models.SeedComplaints())
	vehicles := store.NewMemoryVehicleRepository(models.SeedVehicles())
	svc := NewComplaintService(complaints, vehicles, func() time.Time { return fixedNow })
	return svc, complaints
}

func TestSubmitCreatesPendingComplaintAtFront(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	before, _ := repo.List(ctx)
	created, err := svc.Submit(ctx, SubmitInput{Description: "D", Latitude: "10.0", Longitude: "20.0"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if created.ID != len(before)+1 {
		t.Errorf("expected id %d, got %d", len(before)+1, created.ID)
	}
	if created.Status != models.Pending {
		t.Errorf("expected pending, got %s", created.Status)
	}
	if created.Date != "2024-03-09" {
		t.Errorf("expected today's date, got %s", created.Date)
	}
	if created.Photo != models.NewComplaintPhoto {
		t.Errorf("unexpected photo %s", created.Photo)
	}
	if created.Location != (models.Location{Lat: 10, Lng: 20}) {
		t.Errorf("unexpected location %+v", created.Location)
	}

	after, _ := repo.List(ctx)
	if after[0].ID != created.ID {
		t.Errorf("new complaint is not first: %d", after[0].ID)
	}
}

func TestSubmitRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   SubmitInput
	}{
		{"empty description", SubmitInput{Description: "  ", Latitude: "1", Longitude: "2"}},
		{"non-numeric latitude", SubmitInput{Description: "D", Latitude: "abc", Longitude: "2"}},
		{"NaN longitude", SubmitInput{Description: "D", Latitude: "1", Longitude: "NaN"}},
		{"missing longitude", SubmitInput{Description: "D", Latitude: "1"}},
		{"latitude out of range", SubmitInput{Description: "D", Latitude: "91", Longitude: "2"}},
		{"longitude out of range", SubmitInput{Description: "D", Latitude: "1", Longitude: "-180.5"}},
		{"infinite latitude", SubmitInput{Description: "D", Latitude: "+Inf", Longitude: "2"}},
		{"exponent latitude", SubmitInput{Description: "D", Latitude: "1e1", Longitude: "2"}},
		{"hex longitude", SubmitInput{Description: "D", Latitude: "1", Longitude: "0x1p-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			ctx := context.Background()

			_, err := svc.Submit(ctx, tt.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			list, _ := repo.List(ctx)
			if len(list) != 3 {
				t.Errorf("store changed: %d complaints", len(list))
			}
		})
	}
}

func TestAssignPendingComplaint(t *testing.T) {
	svc, _ := newTestService()

	got, err := svc.Assign(context.Background(), 1, "Vehicle-102")
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if got.Status != models.Assigned {
		t.Errorf("expected assigned, got %s", got.Status)
	}
	if got.AssignedTo == nil || *got.AssignedTo != "Vehicle-102" {
		t.Errorf("expected assignee Vehicle-102, got %v", got.AssignedTo)
	}
}

func TestAssignUnknownComplaintLeavesStoreUnchanged(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	before, _ := repo.List(ctx)
	_, err := svc.Assign(ctx, 999, "Vehicle-102")
	if !errors.Is(err, ErrComplaintNotFound) {
		t.Fatalf("expected ErrComplaintNotFound, got %v", err)
	}
	after, _ := repo.List(ctx)
	if len(after) != len(before) {
		t.Fatalf("store length changed")
	}
	for i := range before {
		if before[i].Status != after[i].Status {
			t.Errorf("complaint %d status changed", before[i].ID)
		}
	}
}

func TestAssignGuards(t *testing.T) {
	tests := []struct {
		name        string
		complaintID int
		vehicleID   string
		want        error
	}{
		{"maintenance vehicle", 1, "Vehicle-104", ErrVehicleUnavailable},
		{"unknown vehicle", 1, "Vehicle-999", ErrVehicleNotFound},
		{"empty vehicle", 1, "", ErrInvalidInput},
		{"already assigned", 2, "Vehicle-101", ErrIllegalTransition},
		{"already resolved", 3, "Vehicle-101", ErrIllegalTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			ctx := context.Background()
			before, _ := repo.FindByID(ctx, tt.complaintID)

			_, err := svc.Assign(ctx, tt.complaintID, tt.vehicleID)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}

			after, _ := repo.FindByID(ctx, tt.complaintID)
			if after.Status != before.Status {
				t.Errorf("status changed from %s to %s", before.Status, after.Status)
			}
		})
	}
}

func TestResolveAssignedComplaint(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	before, _ := repo.FindByID(ctx, 2)

	got, err := svc.Resolve(ctx, 2)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Status != models.Resolved {
		t.Errorf("expected resolved, got %s", got.Status)
	}
	if got.ResolvedDate == nil || *got.ResolvedDate != "2024-03-09" {
		t.Errorf("unexpected resolved date %v", got.ResolvedDate)
	}
	if got.ResolvedPhoto == nil || *got.ResolvedPhoto != models.ResolvedPhoto {
		t.Errorf("unexpected resolved photo %v", got.ResolvedPhoto)
	}
	if got.Description != before.Description || got.Location != before.Location || got.Date != before.Date {
		t.Errorf("resolve changed immutable fields: %+v", got)
	}
	if got.AssignedTo == nil || *got.AssignedTo != "Vehicle-103" {
		t.Errorf("assignee cleared on resolve")
	}
}

func TestResolveGuards(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Resolve(ctx, 1); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("resolving pending: expected ErrIllegalTransition, got %v", err)
	}
	if _, err := svc.Resolve(ctx, 3); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("resolving resolved: expected ErrIllegalTransition, got %v", err)
	}
	if _, err := svc.Resolve(ctx, 999); !errors.Is(err, ErrComplaintNotFound) {
		t.Errorf("resolving unknown: expected ErrComplaintNotFound, got %v", err)
	}
}

func TestResolvedIsTerminal(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if _, err := svc.Assign(ctx, 1, "Vehicle-101"); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if _, err := svc.Resolve(ctx, 1); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	_, _ = svc.Assign(ctx, 1, "Vehicle-102")
	_, _ = svc.Resolve(ctx, 1)

	got, _ := repo.FindByID(ctx, 1)
	if got.Status != models.Resolved {
		t.Errorf("expected resolved, got %s", got.Status)
	}
	if *got.AssignedTo != "Vehicle-101" {
		t.Errorf("assignee overwritten after resolve: %s", *got.AssignedTo)
	}

	list, _ := repo.List(ctx)
	for _, c := range list {
		if !c.Status.Valid() {
			t.Errorf("complaint %d has invalid status %q", c.ID, c.Status)
		}
	}
}

func TestAssignableVehiclesExcludeMaintenance(t *testing.T) {
	svc, _ := newTestService()

	vehicles, err := svc.AssignableVehicles(context.Background())
	if err != nil {
		t.Fatalf("AssignableVehicles: %v", err)
	}
	if len(vehicles) != 3 {
		t.Fatalf("expected 3 vehicles, got %d", len(vehicles))
	}
	for _, v := range vehicles {
		if v.Status == models.Maintenance {
			t.Errorf("maintenance vehicle %s offered", v.ID)
		}
	}
}

func TestCoordinateRule(t *testing.T) {
	valid := map[string]float64{
		"10":       10,
		"10.0":     10,
		"-33.8688": -33.8688,
		"+45.5":    45.5,
		".5":       0.5,
		" 28.6139": 28.6139,
		"90":       90,
	}
	for raw, want := range valid {
		got, err := ParseLatitude(raw)
		if err != nil {
			t.Errorf("ParseLatitude(%q): unexpected error %v", raw, err)
			continue
		}
		if got != want {
			t.Errorf("ParseLatitude(%q) = %v, want %v", raw, got, want)
		}
	}

	for _, raw := range []string{"1e1", "1E-3", "NaN", "Inf", "abc", "1,5", "90.0001", ""} {
		if _, err := ParseLatitude(raw); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseLatitude(%q): expected ErrInvalidInput, got %v", raw, err)
		}
	}
	if _, err := ParseLongitude("-180"); err != nil {
		t.Errorf("ParseLongitude(-180): %v", err)
	}
	if _, err := ParseLongitude("180.5"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseLongitude(180.5): expected ErrInvalidInput, got %v", err)
	}
}

// racingRepository behaves as if another writer changed the record first.
type racingRepository struct {
	*store.MemoryComplaintRepository
}

func (r racingRepository) UpdateStatus(ctx context.Context, id int, mutate func(*models.Complaint) error) (models.Complaint, error) {
	return models.Complaint{}, fmt.Errorf("complaint %d: %w", id, store.ErrConflict)
}

func TestLostRaceReportsIllegalTransition(t *testing.T) {
	complaints := racingRepository{store.NewMemoryComplaintRepository(models.SeedComplaints())}
	vehicles := store.NewMemoryVehicleRepository(models.SeedVehicles())
	svc := NewComplaintService(complaints, vehicles, func() time.Time { return fixedNow })

	if _, err := svc.Assign(context.Background(), 1, "Vehicle-101"); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("assign: expected ErrIllegalTransition, got %v", err)
	}
	if _, err := svc.Resolve(context.Background(), 2); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("resolve: expected ErrIllegalTransition, got %v", err)
	}
}
