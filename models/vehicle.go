package models

// VehicleStatus enum
type VehicleStatus string

const (
	Available   VehicleStatus = "available"
	Busy        VehicleStatus = "busy"
	Maintenance VehicleStatus = "maintenance"
)

// Vehicle represents a collection truck. Vehicles are never transitioned here.
type Vehicle struct {
	ID       string        `bson:"_id" json:"id"`
	Driver   string        `bson:"driver,omitempty" json:"driver,omitempty"`
	Phone    string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Location Location      `bson:"location" json:"location"`
	Status   VehicleStatus `bson:"status" json:"status"`
}

// Assignable reports whether complaints may be assigned to the vehicle.
func (v Vehicle) Assignable() bool {
	return v.Status != Maintenance
}
