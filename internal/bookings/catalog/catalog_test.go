package catalog

import (
	"testing"

	"cemdon/pkg/model"

	"github.com/google/go-cmp/cmp"
)

func TestAreas(t *testing.T) {
	want := []model.Area{
		{ID: "nutricion", Name: "Nutrición"},
		{ID: "mindfulness", Name: "Mindfulness"},
		{ID: "cardiologia", Name: "Cardiología"},
		{ID: "medicina", Name: "Medicina General"},
	}
	if diff := cmp.Diff(want, Areas()); diff != "" {
		t.Errorf("Areas() mismatch (-want +got):\n%s", diff)
	}
}

func TestAreas_ReturnsCopy(t *testing.T) {
	got := Areas()
	got[0].Name = "changed"
	if Areas()[0].Name != "Nutrición" {
		t.Error("mutating the returned slice must not change the catalog")
	}

	slots := TimeSlots()
	slots[0] = "00:00"
	if TimeSlots()[0] != "09:00" {
		t.Error("mutating the returned slots must not change the catalog")
	}
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	if len(slots) != 12 {
		t.Fatalf("expected 12 slots, got %d", len(slots))
	}
	if slots[0] != "09:00" || slots[5] != "11:30" || slots[6] != "14:00" || slots[11] != "16:30" {
		t.Errorf("unexpected slot layout: %v", slots)
	}
}

func TestFindArea(t *testing.T) {
	tests := []struct {
		id       string
		wantName string
		wantOK   bool
	}{
		{"nutricion", "Nutrición", true},
		{"medicina", "Medicina General", true},
		{"fitness", "", false},
		{"", "", false},
		{"Nutricion", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			a, ok := FindArea(tt.id)
			if ok != tt.wantOK || a.Name != tt.wantName {
				t.Errorf("FindArea(%q) = %v, %v; want %q, %v", tt.id, a, ok, tt.wantName, tt.wantOK)
			}
			if AreaName(tt.id) != tt.wantName {
				t.Errorf("AreaName(%q) = %q", tt.id, AreaName(tt.id))
			}
		})
	}
}

func TestIsTimeSlot(t *testing.T) {
	tests := []struct {
		slot string
		want bool
	}{
		{"09:00", true},
		{"16:30", true},
		{"12:00", false},
		{"9:00", false},
		{"17:00", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsTimeSlot(tt.slot); got != tt.want {
			t.Errorf("IsTimeSlot(%q) = %v, want %v", tt.slot, got, tt.want)
		}
	}
}

func TestAreaIDs(t *testing.T) {
	want := []string{"nutricion", "mindfulness", "cardiologia", "medicina"}
	if diff := cmp.Diff(want, AreaIDs()); diff != "" {
		t.Errorf("AreaIDs() mismatch (-want +got):\n%s", diff)
	}
}
