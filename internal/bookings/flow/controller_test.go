package flow

import (
	"errors"
	"testing"
	"time"

	"cemdon/internal/bookings/calendar"
	bookingerrors "cemdon/internal/bookings/errors"
	"cemdon/pkg/model"

	"github.com/google/go-cmp/cmp"
)

// Monday 2026-10-19; tomorrow is Tuesday 2026-10-20.
var now = time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)

func window() []model.DateOption {
	return calendar.Window(now, calendar.DefaultDays)
}

func ptr(s string) *string { return &s }

func TestNew(t *testing.T) {
	c := New()
	if c.Step() != model.StepArea {
		t.Errorf("initial step = %d, want %d", c.Step(), model.StepArea)
	}
	if diff := cmp.Diff(model.BookingDraft{}, c.Draft()); diff != "" {
		t.Errorf("initial draft not empty (-want +got):\n%s", diff)
	}
	if c.CanProceed() {
		t.Error("empty draft must not be able to proceed")
	}
}

func TestRestore(t *testing.T) {
	draft := model.BookingDraft{Area: "nutricion", Date: "2026-10-20"}
	c, err := Restore(model.StepSchedule, draft)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if c.Step() != model.StepSchedule || c.Draft() != draft {
		t.Errorf("Restore() = %d %+v", c.Step(), c.Draft())
	}

	for _, step := range []model.Step{0, 4, -1} {
		if _, err := Restore(step, draft); !errors.Is(err, bookingerrors.ErrInvalidState) {
			t.Errorf("Restore(%d) error = %v, want ErrInvalidState", step, err)
		}
	}
}

func TestSelectAreaThenAdvance(t *testing.T) {
	c := New()
	if err := c.SelectArea("nutricion"); err != nil {
		t.Fatalf("SelectArea() error = %v", err)
	}
	if !c.CanProceed() {
		t.Fatal("step 1 with an area should be able to proceed")
	}
	if err := c.Advance(); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if c.Step() != model.StepSchedule {
		t.Errorf("step = %d, want %d", c.Step(), model.StepSchedule)
	}
	if c.Draft().Area != "nutricion" {
		t.Errorf("area = %q, want nutricion", c.Draft().Area)
	}
}

func TestSelectArea_Unknown(t *testing.T) {
	c := New()
	_ = c.SelectArea("mindfulness")

	err := c.SelectArea("fitness")
	if !errors.Is(err, bookingerrors.ErrUnknownArea) {
		t.Errorf("error = %v, want ErrUnknownArea", err)
	}
	if c.Draft().Area != "mindfulness" {
		t.Errorf("area changed to %q after a rejected selection", c.Draft().Area)
	}
}

func TestAdvance_BlockedWithoutDateAndTime(t *testing.T) {
	c, _ := Restore(model.StepSchedule, model.BookingDraft{Area: "nutricion"})

	if err := c.Advance(); !errors.Is(err, bookingerrors.ErrStepIncomplete) {
		t.Fatalf("Advance() error = %v, want ErrStepIncomplete", err)
	}
	if c.Step() != model.StepSchedule {
		t.Errorf("step moved to %d on a blocked advance", c.Step())
	}

	if err := c.SelectDate("2026-10-20", window()); err != nil {
		t.Fatalf("SelectDate() error = %v", err)
	}
	if err := c.Advance(); !errors.Is(err, bookingerrors.ErrStepIncomplete) {
		t.Fatalf("Advance() with date only error = %v, want ErrStepIncomplete", err)
	}

	if diff := cmp.Diff([]string{"time"}, MissingFields(c.Step(), c.Draft())); diff != "" {
		t.Errorf("MissingFields mismatch (-want +got):\n%s", diff)
	}
}

func TestTomorrowAndNineReachContactStep(t *testing.T) {
	c := New()
	_ = c.SelectArea("cardiologia")
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}
	if err := c.SelectDate("2026-10-20", window()); err != nil {
		t.Fatalf("SelectDate(tomorrow) error = %v", err)
	}
	if err := c.SelectTime("09:00"); err != nil {
		t.Fatalf("SelectTime() error = %v", err)
	}
	if err := c.Advance(); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if c.Step() != model.StepContact {
		t.Errorf("step = %d, want %d", c.Step(), model.StepContact)
	}
}

func TestSelectDate_WeekendHasNoEffect(t *testing.T) {
	c, _ := Restore(model.StepSchedule, model.BookingDraft{Area: "nutricion", Date: "2026-10-20"})

	// 2026-10-24 is a Saturday.
	err := c.SelectDate("2026-10-24", window())
	if !errors.Is(err, bookingerrors.ErrDateNotSelectable) {
		t.Errorf("error = %v, want ErrDateNotSelectable", err)
	}
	if c.Draft().Date != "2026-10-20" {
		t.Errorf("date = %q, want it unchanged", c.Draft().Date)
	}
}

func TestSelectDate_OutsideWindow(t *testing.T) {
	c := New()
	for _, d := range []string{"2026-10-19", "2026-11-03", "2026-13-01", "mañana"} {
		if err := c.SelectDate(d, window()); !errors.Is(err, bookingerrors.ErrDateNotSelectable) {
			t.Errorf("SelectDate(%q) error = %v, want ErrDateNotSelectable", d, err)
		}
	}
	if c.Draft().Date != "" {
		t.Errorf("date = %q, want empty", c.Draft().Date)
	}
}

func TestSelectTime_Unknown(t *testing.T) {
	c := New()
	if err := c.SelectTime("12:00"); !errors.Is(err, bookingerrors.ErrUnknownTimeSlot) {
		t.Errorf("error = %v, want ErrUnknownTimeSlot", err)
	}
	if c.Draft().Time != "" {
		t.Errorf("time = %q, want empty", c.Draft().Time)
	}
}

func TestSelectionsAreNotStepGated(t *testing.T) {
	c, _ := Restore(model.StepContact, model.BookingDraft{Area: "nutricion", Date: "2026-10-20", Time: "09:00"})
	if err := c.SelectArea("medicina"); err != nil {
		t.Fatalf("SelectArea() at step 3 error = %v", err)
	}
	if c.Draft().Area != "medicina" || c.Step() != model.StepContact {
		t.Errorf("got step %d draft %+v", c.Step(), c.Draft())
	}
}

func TestSubmit_EmptyNameBlocked(t *testing.T) {
	c, _ := Restore(model.StepContact, model.BookingDraft{Area: "nutricion", Date: "2026-10-20", Time: "09:00"})
	c.UpdateContact(ptr("   "), ptr("3564 123456"), ptr("ana@example.com"))

	_, err := c.Submit()
	if !errors.Is(err, bookingerrors.ErrStepIncomplete) {
		t.Fatalf("Submit() error = %v, want ErrStepIncomplete", err)
	}
	if c.Step() != model.StepContact {
		t.Errorf("step = %d after blocked submit", c.Step())
	}
	if diff := cmp.Diff([]string{"contact_name"}, MissingFields(c.Step(), c.Draft())); diff != "" {
		t.Errorf("MissingFields mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmit_ReturnsSnapshotAndResets(t *testing.T) {
	want := model.BookingDraft{
		Area:         "nutricion",
		Date:         "2026-10-20",
		Time:         "09:00",
		ContactName:  "Ana Pérez",
		ContactPhone: "3564 123456",
		ContactEmail: "ana@example.com",
	}
	c, _ := Restore(model.StepContact, model.BookingDraft{Area: want.Area, Date: want.Date, Time: want.Time})
	c.UpdateContact(ptr(want.ContactName), ptr(want.ContactPhone), ptr(want.ContactEmail))

	got, err := c.Submit()
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if c.Step() != model.StepArea {
		t.Errorf("step after submit = %d, want %d", c.Step(), model.StepArea)
	}
	if diff := cmp.Diff(model.BookingDraft{}, c.Draft()); diff != "" {
		t.Errorf("draft after submit not empty (-want +got):\n%s", diff)
	}
}

func TestSubmit_NotAtFinalStep(t *testing.T) {
	c, _ := Restore(model.StepSchedule, model.BookingDraft{Area: "nutricion", Date: "2026-10-20", Time: "09:00"})
	if _, err := c.Submit(); !errors.Is(err, bookingerrors.ErrNotAtFinalStep) {
		t.Errorf("Submit() error = %v, want ErrNotAtFinalStep", err)
	}
	if c.Step() != model.StepSchedule {
		t.Errorf("step = %d", c.Step())
	}
}

func TestAdvance_NoOpAtContactStep(t *testing.T) {
	c, _ := Restore(model.StepContact, model.BookingDraft{
		Area: "nutricion", Date: "2026-10-20", Time: "09:00",
		ContactName: "Ana", ContactPhone: "1", ContactEmail: "a@b.c",
	})
	if err := c.Advance(); err != nil {
		t.Errorf("Advance() at step 3 error = %v", err)
	}
	if c.Step() != model.StepContact {
		t.Errorf("step = %d, want %d", c.Step(), model.StepContact)
	}
}

func TestRetreat(t *testing.T) {
	draft := model.BookingDraft{Area: "nutricion", Date: "2026-10-20", Time: "09:00"}
	c, _ := Restore(model.StepContact, draft)

	if !c.Retreat() || c.Step() != model.StepSchedule {
		t.Fatalf("first Retreat() left step at %d", c.Step())
	}
	if !c.Retreat() || c.Step() != model.StepArea {
		t.Fatalf("second Retreat() left step at %d", c.Step())
	}
	if c.Retreat() {
		t.Error("Retreat() at step 1 should report false")
	}
	if c.Step() != model.StepArea {
		t.Errorf("step = %d, want %d", c.Step(), model.StepArea)
	}
	if c.Draft() != draft {
		t.Errorf("retreat must keep selections, got %+v", c.Draft())
	}
}

func TestUpdateContact_Partial(t *testing.T) {
	c := New()
	c.UpdateContact(ptr("Ana"), nil, nil)
	c.UpdateContact(nil, ptr("3564 123456"), nil)
	c.UpdateContact(nil, nil, ptr("ana@example.com"))
	c.UpdateContact(nil, nil, nil)

	d := c.Draft()
	if d.ContactName != "Ana" || d.ContactPhone != "3564 123456" || d.ContactEmail != "ana@example.com" {
		t.Errorf("draft = %+v", d)
	}

	c.UpdateContact(ptr(""), nil, nil)
	if c.Draft().ContactName != "" {
		t.Error("an explicit empty string should clear the field")
	}
}

func TestStepNeverLeavesRange(t *testing.T) {
	c := New()
	ops := []func(){
		func() { _ = c.Advance() },
		func() { c.Retreat() },
		func() { _ = c.SelectArea("nutricion") },
		func() { _ = c.Advance() },
		func() { _ = c.Advance() },
		func() { _ = c.SelectDate("2026-10-21", window()) },
		func() { _ = c.SelectTime("16:30") },
		func() { _ = c.Advance() },
		func() { _ = c.Advance() },
		func() { _ = c.Advance() },
		func() { c.Retreat() },
		func() { c.Retreat() },
		func() { c.Retreat() },
		func() { c.Retreat() },
	}
	prev := c.Step()
	for i, op := range ops {
		op()
		s := c.Step()
		if !s.Valid() {
			t.Fatalf("op %d: step %d out of range", i, s)
		}
		if d := int(s) - int(prev); d > 1 || d < -1 {
			t.Fatalf("op %d: step jumped from %d to %d", i, prev, s)
		}
		prev = s
	}
}
