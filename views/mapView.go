package views

import (
	"fmt"

	"wastetrack-be/models"
)

const (
	MapCenterLat = 28.6139
	MapCenterLng = 77.2090
	MapZoom      = 13

	TileURL         = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	TileAttribution = "&copy; OpenStreetMap contributors"
)

var complaintColors = map[models.ComplaintStatus]string{
	models.Pending:  "red",
	models.Assigned: "orange",
	models.Resolved: "green",
}

var vehicleColors = map[models.VehicleStatus]string{
	models.Available:   "#16A34A",
	models.Busy:        "#E67E22",
	models.Maintenance: "#E74C3C",
}

type Marker struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Kind      string  `json:"kind"`
	ClassName string  `json:"className"`
	Icon      string  `json:"icon"`
	Color     string  `json:"color"`
	Popup     string  `json:"popup"`
}

type MapView struct {
	Center          models.Location `json:"center"`
	Zoom            int             `json:"zoom"`
	TileURL         string          `json:"tileUrl"`
	TileAttribution string          `json:"tileAttribution"`
	Markers         []Marker        `json:"markers"`
}

// BuildMap places one marker per complaint and one per vehicle.
// Popups are plain text lines; the page escapes them before display.
func BuildMap(complaints []models.Complaint, vehicles []models.Vehicle) MapView {
	view := MapView{
		Center:          models.Location{Lat: MapCenterLat, Lng: MapCenterLng},
		Zoom:            MapZoom,
		TileURL:         TileURL,
		TileAttribution: TileAttribution,
		Markers:         make([]Marker, 0, len(complaints)+len(vehicles)),
	}

	for _, c := range complaints {
		view.Markers = append(view.Markers, Marker{
			Lat:       c.Location.Lat,
			Lng:       c.Location.Lng,
			Kind:      "complaint",
			ClassName: "complaint-marker",
			Icon:      "fa-trash",
			Color:     complaintColors[c.Status],
			Popup:     fmt.Sprintf("Complaint #%d\n%s\nStatus: %s", c.ID, c.Description, c.Status),
		})
	}
	for _, v := range vehicles {
		color, ok := vehicleColors[v.Status]
		if !ok {
			color = vehicleColors[models.Maintenance]
		}
		view.Markers = append(view.Markers, Marker{
			Lat:       v.Location.Lat,
			Lng:       v.Location.Lng,
			Kind:      "vehicle",
			ClassName: "vehicle-marker",
			Icon:      "fa-truck",
			Color:     color,
			Popup:     fmt.Sprintf("%s\nDriver: %s\nStatus: %s", v.ID, v.Driver, v.Status),
		})
	}
	return view
}
