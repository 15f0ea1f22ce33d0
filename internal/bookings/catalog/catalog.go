// Package catalog holds the fixed areas and time slots offered by the
// booking widget.
package catalog

import "cemdon/pkg/model"

var areas = []model.Area{
	{ID: "nutricion", Name: "Nutrición"},
	{ID: "mindfulness", Name: "Mindfulness"},
	{ID: "cardiologia", Name: "Cardiología"},
	{ID: "medicina", Name: "Medicina General"},
}

var timeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
}

// Areas returns the bookable areas in display order.
func Areas() []model.Area {
	return append([]model.Area(nil), areas...)
}

// TimeSlots returns the daily slots in display order.
func TimeSlots() []string {
	return append([]string(nil), timeSlots...)
}

func FindArea(id string) (model.Area, bool) {
	for _, a := range areas {
		if a.ID == id {
			return a, true
		}
	}
	return model.Area{}, false
}

// AreaName returns the display name for id, or "" when id is unknown.
func AreaName(id string) string {
	a, _ := FindArea(id)
	return a.Name
}

func AreaIDs() []string {
	ids := make([]string, len(areas))
	for i, a := range areas {
		ids[i] = a.ID
	}
	return ids
}

func IsTimeSlot(s string) bool {
	for _, slot := range timeSlots {
		if slot == s {
			return true
		}
	}
	return false
}
