package views

import (
	"fmt"

	"wastetrack-be/models"
)

// NoAssignedMessage is shown on the operator page when nothing is assigned.
const NoAssignedMessage = "No complaints assigned currently."

// ComplaintCard is the display form of one complaint, shared by all portals.
type ComplaintCard struct {
	ID           int    `json:"id"`
	Status       string `json:"status"`
	Photo        string `json:"photo"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	Location     string `json:"location"`
	AssignedTo   string `json:"assignedTo,omitempty"`
	ResolvedDate string `json:"resolvedDate,omitempty"`
}

type VehicleOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// AdminRow carries vehicle options only while the complaint is pending.
type AdminRow struct {
	ComplaintCard
	VehicleOptions []VehicleOption `json:"vehicleOptions,omitempty"`
}

type CitizenView struct {
	Complaints []ComplaintCard `json:"complaints"`
}

type AdminView struct {
	Rows []AdminRow `json:"rows"`
}

type VehicleView struct {
	VehicleID    string          `json:"vehicleId,omitempty"`
	Cards        []ComplaintCard `json:"cards"`
	EmptyMessage string          `json:"emptyMessage,omitempty"`
}

type fleet map[string]models.Vehicle

func indexFleet(vehicles []models.Vehicle) fleet {
	f := make(fleet, len(vehicles))
	for _, v := range vehicles {
		f[v.ID] = v
	}
	return f
}

// assignee resolves the weak vehicle reference at read time.
func (f fleet) assignee(id *string) string {
	if id == nil {
		return ""
	}
	if _, ok := f[*id]; !ok {
		return *id + " (unknown vehicle)"
	}
	return *id
}

func formatLocation(l models.Location) string {
	return fmt.Sprintf("%.4f, %.4f", l.Lat, l.Lng)
}

func newCard(c models.Complaint, f fleet) ComplaintCard {
	card := ComplaintCard{
		ID:          c.ID,
		Status:      string(c.Status),
		Photo:       c.Photo,
		Description: c.Description,
		Date:        c.Date,
		Location:    formatLocation(c.Location),
		AssignedTo:  f.assignee(c.AssignedTo),
	}
	if c.ResolvedDate != nil {
		card.ResolvedDate = *c.ResolvedDate
	}
	return card
}

// BuildCitizenView lists every complaint in store order.
func BuildCitizenView(complaints []models.Complaint, vehicles []models.Vehicle) CitizenView {
	f := indexFleet(vehicles)
	cards := make([]ComplaintCard, 0, len(complaints))
	for _, c := range complaints {
		cards = append(cards, newCard(c, f))
	}
	return CitizenView{Complaints: cards}
}

// BuildAdminView lists every complaint; pending rows get the assignable fleet.
func BuildAdminView(complaints []models.Complaint, vehicles []models.Vehicle) AdminView {
	f := indexFleet(vehicles)

	var options []VehicleOption
	for _, v := range vehicles {
		if !v.Assignable() {
			continue
		}
		options = append(options, VehicleOption{
			Value: v.ID,
			Label: fmt.Sprintf("%s (%s)", v.ID, v.Status),
		})
	}

	rows := make([]AdminRow, 0, len(complaints))
	for _, c := range complaints {
		row := AdminRow{ComplaintCard: newCard(c, f)}
		if c.Status == models.Pending {
			row.VehicleOptions = options
		}
		rows = append(rows, row)
	}
	return AdminView{Rows: rows}
}

// BuildVehicleView lists assigned complaints. An empty vehicleID shows every
// assigned complaint; otherwise only those assigned to that vehicle.
func BuildVehicleView(complaints []models.Complaint, vehicles []models.Vehicle, vehicleID string) VehicleView {
	f := indexFleet(vehicles)
	view := VehicleView{VehicleID: vehicleID, Cards: []ComplaintCard{}}

	for _, c := range complaints {
		if c.Status != models.Assigned {
			continue
		}
		if vehicleID != "" && (c.AssignedTo == nil || *c.AssignedTo != vehicleID) {
			continue
		}
		view.Cards = append(view.Cards, newCard(c, f))
	}
	if len(view.Cards) == 0 {
		view.EmptyMessage = NoAssignedMessage
	}
	return view
}
