package models

// ComplaintStatus enum
type ComplaintStatus string

const (
	Pending  ComplaintStatus = "pending"
	Assigned ComplaintStatus = "assigned"
	Resolved ComplaintStatus = "resolved"
)

// Valid reports whether s is one of the known lifecycle states.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case Pending, Assigned, Resolved:
		return true
	}
	return false
}

// DateLayout is the date-only format used for complaint and resolution dates.
const DateLayout = "2006-01-02"

const (
	NewComplaintPhoto = "images/new-complaint.jpg"
	ResolvedPhoto     = "images/resolved1.jpg"
)

// Location is a point in decimal degrees.
type Location struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Complaint represents a garbage-collection complaint reported by a citizen
type Complaint struct {
	ID            int             `bson:"_id" json:"id"`
	Description   string          `bson:"description" json:"description"`
	Location      Location        `bson:"location" json:"location"`
	Status        ComplaintStatus `bson:"status" json:"status"`
	Photo         string          `bson:"photo" json:"photo"`
	Date          string          `bson:"date" json:"date"`
	AssignedTo    *string         `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	ResolvedDate  *string         `bson:"resolvedDate,omitempty" json:"resolvedDate,omitempty"`
	ResolvedPhoto *string         `bson:"resolvedPhoto,omitempty" json:"resolvedPhoto,omitempty"`

	// Seq orders the sequence: lower values come first.
	Seq int `bson:"seq" json:"-"`
}

// Clone returns a copy that shares no pointers with c.
func (c Complaint) Clone() Complaint {
	out := c
	out.AssignedTo = cloneString(c.AssignedTo)
	out.ResolvedDate = cloneString(c.ResolvedDate)
	out.ResolvedPhoto = cloneString(c.ResolvedPhoto)
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
