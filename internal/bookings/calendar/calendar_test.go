package calendar

import (
	"testing"
	"time"

	"cemdon/pkg/locale"
)

func cordoba(t *testing.T) *time.Location {
	t.Helper()
	return locale.LoadLocation("America/Argentina/Cordoba")
}

func TestWindow_Length(t *testing.T) {
	now := time.Date(2026, time.October, 19, 10, 0, 0, 0, cordoba(t))

	tests := []struct {
		days int
		want int
	}{
		{DefaultDays, 14},
		{1, 1},
		{0, 0},
		{-3, 0},
	}

	for _, tt := range tests {
		got := Window(now, tt.days)
		if len(got) != tt.want {
			t.Errorf("Window(now, %d) has %d entries, want %d", tt.days, len(got), tt.want)
		}
		if got == nil {
			t.Errorf("Window(now, %d) returned nil", tt.days)
		}
	}
}

func TestWindow_StartsTomorrow(t *testing.T) {
	// 2026-10-19 is a Monday.
	now := time.Date(2026, time.October, 19, 23, 59, 0, 0, cordoba(t))
	w := Window(now, DefaultDays)

	if w[0].Date != "2026-10-20" {
		t.Fatalf("first date = %s, want 2026-10-20", w[0].Date)
	}
	if w[0].Weekday != "mar" || w[0].Day != 20 {
		t.Errorf("first option labels = %s %d, want mar 20", w[0].Weekday, w[0].Day)
	}
	if w[13].Date != "2026-11-02" {
		t.Errorf("last date = %s, want 2026-11-02", w[13].Date)
	}
}

func TestWindow_Weekends(t *testing.T) {
	now := time.Date(2026, time.October, 19, 8, 0, 0, 0, cordoba(t))
	w := Window(now, DefaultDays)

	for _, opt := range w {
		day, err := time.Parse("2006-01-02", opt.Date)
		if err != nil {
			t.Fatalf("bad date %q: %v", opt.Date, err)
		}
		weekend := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
		if opt.Weekend != weekend {
			t.Errorf("%s: Weekend = %v, want %v", opt.Date, opt.Weekend, weekend)
		}
		if opt.Selectable == opt.Weekend {
			t.Errorf("%s: Selectable must be the negation of Weekend", opt.Date)
		}
	}

	if !IsSelectable(w, "2026-10-23") {
		t.Error("Friday 2026-10-23 should be selectable")
	}
	if IsSelectable(w, "2026-10-24") {
		t.Error("Saturday 2026-10-24 should not be selectable")
	}
	if !Contains(w, "2026-10-25") {
		t.Error("Sunday 2026-10-25 is in the window even if not selectable")
	}
}

func TestWindow_UsesNowLocation(t *testing.T) {
	// 01:30 UTC on the 20th is still the 19th in Córdoba (UTC-3).
	utc := time.Date(2026, time.October, 20, 1, 30, 0, 0, time.UTC)

	if got := Window(utc, 1)[0].Date; got != "2026-10-21" {
		t.Errorf("UTC window starts %s, want 2026-10-21", got)
	}
	if got := Window(utc.In(cordoba(t)), 1)[0].Date; got != "2026-10-20" {
		t.Errorf("Córdoba window starts %s, want 2026-10-20", got)
	}
}

func TestWindow_CrossesMonthAndYear(t *testing.T) {
	now := time.Date(2026, time.December, 30, 12, 0, 0, 0, cordoba(t))
	w := Window(now, 3)

	want := []string{"2026-12-31", "2027-01-01", "2027-01-02"}
	for i, d := range want {
		if w[i].Date != d {
			t.Errorf("w[%d] = %s, want %s", i, w[i].Date, d)
		}
	}
}

func TestWindow_Deterministic(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, cordoba(t))
	a, b := Window(now, DefaultDays), Window(now, DefaultDays)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("window differs at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestContains_OutsideAndMalformed(t *testing.T) {
	now := time.Date(2026, time.October, 19, 8, 0, 0, 0, cordoba(t))
	w := Window(now, DefaultDays)

	for _, d := range []string{"2026-10-19", "2026-11-03", "2026-02-30", "20/10/2026", ""} {
		if Contains(w, d) {
			t.Errorf("Contains(%q) = true, want false", d)
		}
		if IsSelectable(w, d) {
			t.Errorf("IsSelectable(%q) = true, want false", d)
		}
	}
}

func TestClockFunc(t *testing.T) {
	fixed := time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)
	var c Clock = ClockFunc(func() time.Time { return fixed })
	if !c.Now().Equal(fixed) {
		t.Errorf("ClockFunc.Now() = %v, want %v", c.Now(), fixed)
	}

	sys := SystemClock{Location: cordoba(t)}
	if sys.Now().Location().String() != "America/Argentina/Cordoba" {
		t.Errorf("SystemClock location = %s", sys.Now().Location())
	}
}
