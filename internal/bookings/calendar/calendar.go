// Package calendar produces the window of dates a visitor can pick from.
package calendar

import (
	"time"

	"cemdon/pkg/locale"
	"cemdon/pkg/model"
)

const DefaultDays = 14

type Clock interface {
	Now() time.Time
}

// SystemClock reports the wall clock in a fixed location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// Window returns the `days` calendar dates following now's date, in now's
// location. Saturdays and Sundays are included but not selectable.
func Window(now time.Time, days int) []model.DateOption {
	if days <= 0 {
		return []model.DateOption{}
	}

	y, m, d := now.Date()
	loc := now.Location()
	out := make([]model.DateOption, 0, days)
	for i := 1; i <= days; i++ {
		day := time.Date(y, m, d+i, 0, 0, 0, 0, loc)
		weekend := locale.IsWeekend(day)
		out = append(out, model.DateOption{
			Date:       day.Format(model.DateLayout),
			Weekday:    locale.WeekdayShort(day),
			Day:        day.Day(),
			Weekend:    weekend,
			Selectable: !weekend,
		})
	}
	return out
}

// Find looks date up in window by calendar day. Dates that do not parse
// are never found.
func Find(window []model.DateOption, date string) (model.DateOption, bool) {
	canonical, ok := Canonical(date)
	if !ok {
		return model.DateOption{}, false
	}
	for _, opt := range window {
		if opt.Date == canonical {
			return opt, true
		}
	}
	return model.DateOption{}, false
}

func Contains(window []model.DateOption, date string) bool {
	_, ok := Find(window, date)
	return ok
}

func IsSelectable(window []model.DateOption, date string) bool {
	opt, ok := Find(window, date)
	return ok && opt.Selectable
}

// Canonical normalizes a YYYY-MM-DD date, rejecting impossible dates such
// as 2025-02-30.
func Canonical(date string) (string, bool) {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return "", false
	}
	return t.Format(model.DateLayout), true
}
