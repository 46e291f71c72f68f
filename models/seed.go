package models

func strPtr(s string) *string { return &s }

// SeedComplaints returns the sample complaints every fresh store starts with.
// Complaint 3 is resolved without an assignee; it is loaded as-is.
func SeedComplaints() []Complaint {
	return []Complaint{
		{
			ID:          1,
			Description: "Garbage not collected for 3 days",
			Location:    Location{Lat: 28.6139, Lng: 77.2090},
			Status:      Pending,
			Photo:       "images/garbage1.jpg",
			Date:        "2023-07-15",
			Seq:         0,
		},
		{
			ID:          2,
			Description: "Overflowing dumpster near market",
			Location:    Location{Lat: 28.6229, Lng: 77.2100},
			Status:      Assigned,
			Photo:       "images/garbage2.jpg",
			AssignedTo:  strPtr("Vehicle-103"),
			Date:        "2023-07-14",
			Seq:         1,
		},
		{
			ID:            3,
			Description:   "Waste scattered on street corner",
			Location:      Location{Lat: 28.6339, Lng: 77.2200},
			Status:        Resolved,
			Photo:         "images/garbage3.jpg",
			ResolvedPhoto: strPtr(ResolvedPhoto),
			Date:          "2023-07-10",
			ResolvedDate:  strPtr("2023-07-12"),
			Seq:           2,
		},
	}
}

// SeedVehicles returns the sample fleet.
func SeedVehicles() []Vehicle {
	return []Vehicle{
		{ID: "Vehicle-101", Driver: "Ramesh Singh", Phone: "+91 9876500001", Location: Location{Lat: 28.6159, Lng: 77.2110}, Status: Available},
		{ID: "Vehicle-102", Driver: "Priya Sharma", Phone: "+91 9876500002", Location: Location{Lat: 28.6259, Lng: 77.2150}, Status: Busy},
		{ID: "Vehicle-103", Driver: "John Doe", Phone: "+91 9876543210", Location: Location{Lat: 28.6200, Lng: 77.2180}, Status: Busy},
		{ID: "Vehicle-104", Driver: "Anjali Verma", Phone: "+91 9876500004", Location: Location{Lat: 28.6300, Lng: 77.2220}, Status: Maintenance},
	}
}
