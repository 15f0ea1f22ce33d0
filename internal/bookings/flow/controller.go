// Package flow implements the three-step booking widget state machine.
//
// A Controller is not safe for concurrent use. The booking service loads
// one per request from the draft store and serialises access per session.
package flow

import (
	"strings"

	"cemdon/internal/bookings/calendar"
	"cemdon/internal/bookings/catalog"
	bookingerrors "cemdon/internal/bookings/errors"
	"cemdon/pkg/model"
)

type Controller struct {
	step  model.Step
	draft model.BookingDraft
}

// New returns a controller at the area step with an empty draft.
func New() *Controller {
	return &Controller{step: model.StepArea}
}

// Restore rebuilds a controller from stored state.
func Restore(step model.Step, draft model.BookingDraft) (*Controller, error) {
	if !step.Valid() {
		return nil, bookingerrors.ErrInvalidState
	}
	return &Controller{step: step, draft: draft}, nil
}

func (c *Controller) Step() model.Step {
	return c.step
}

func (c *Controller) Draft() model.BookingDraft {
	return c.draft
}

func (c *Controller) SelectArea(id string) error {
	if _, ok := catalog.FindArea(id); !ok {
		return bookingerrors.ErrUnknownArea
	}
	c.draft.Area = id
	return nil
}

// SelectDate records date if it is a selectable day of window.
func (c *Controller) SelectDate(date string, window []model.DateOption) error {
	opt, ok := calendar.Find(window, date)
	if !ok || !opt.Selectable {
		return bookingerrors.ErrDateNotSelectable
	}
	c.draft.Date = opt.Date
	return nil
}

func (c *Controller) SelectTime(slot string) error {
	if !catalog.IsTimeSlot(slot) {
		return bookingerrors.ErrUnknownTimeSlot
	}
	c.draft.Time = slot
	return nil
}

// UpdateContact overwrites the non-nil fields.
func (c *Controller) UpdateContact(name, phone, email *string) {
	if name != nil {
		c.draft.ContactName = *name
	}
	if phone != nil {
		c.draft.ContactPhone = *phone
	}
	if email != nil {
		c.draft.ContactEmail = *email
	}
}

func (c *Controller) CanProceed() bool {
	return len(MissingFields(c.step, c.draft)) == 0
}

// Advance moves to the next step. At the contact step it does nothing.
func (c *Controller) Advance() error {
	if !c.CanProceed() {
		return bookingerrors.ErrStepIncomplete
	}
	if c.step < model.StepContact {
		c.step++
	}
	return nil
}

// Retreat moves to the previous step and reports whether it moved.
func (c *Controller) Retreat() bool {
	if c.step <= model.StepArea {
		return false
	}
	c.step--
	return true
}

// Submit returns the completed draft and resets the controller.
func (c *Controller) Submit() (model.BookingDraft, error) {
	if c.step != model.StepContact {
		return model.BookingDraft{}, bookingerrors.ErrNotAtFinalStep
	}
	if !c.CanProceed() {
		return model.BookingDraft{}, bookingerrors.ErrStepIncomplete
	}
	snapshot := c.draft
	c.Reset()
	return snapshot, nil
}

func (c *Controller) Reset() {
	c.step = model.StepArea
	c.draft = model.BookingDraft{}
}

// MissingFields lists the draft fields that keep step from being complete,
// by their JSON names.
func MissingFields(step model.Step, draft model.BookingDraft) []string {
	var missing []string
	switch step {
	case model.StepArea:
		if draft.Area == "" {
			missing = append(missing, "area")
		}
	case model.StepSchedule:
		if draft.Date == "" {
			missing = append(missing, "date")
		}
		if draft.Time == "" {
			missing = append(missing, "time")
		}
	case model.StepContact:
		if strings.TrimSpace(draft.ContactName) == "" {
			missing = append(missing, "contact_name")
		}
		if strings.TrimSpace(draft.ContactPhone) == "" {
			missing = append(missing, "contact_phone")
		}
		if strings.TrimSpace(draft.ContactEmail) == "" {
			missing = append(missing, "contact_email")
		}
	default:
		missing = append(missing, "step")
	}
	return missing
}
