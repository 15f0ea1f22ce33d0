// Package confirmation turns a submitted draft into the message shown to
// the visitor and the event handed to the clinic.
package confirmation

import (
	"context"
	"fmt"
	"time"

	"cemdon/internal/bookings/catalog"
	"cemdon/pkg/events"
	"cemdon/pkg/locale"
	"cemdon/pkg/model"
)

const Title = "¡Turno confirmado!"

// Build always succeeds. Dates that do not parse are echoed verbatim.
func Build(id string, draft model.BookingDraft, confirmedAt time.Time) model.Confirmation {
	return model.Confirmation{
		ID:          id,
		Title:       Title,
		Description: fmt.Sprintf("Te esperamos el %s a las %shs", shortDate(draft.Date), draft.Time),
		AreaName:    catalog.AreaName(draft.Area),
		Summary:     Summary(draft),
		Draft:       draft,
		ConfirmedAt: confirmedAt,
	}
}

// Summary renders the schedule line of the contact step, e.g.
// "martes, 20 de octubre a las 09:00hs". It is empty until both date and
// time are chosen.
func Summary(draft model.BookingDraft) string {
	if draft.Date == "" || draft.Time == "" {
		return ""
	}
	day, err := time.Parse(model.DateLayout, draft.Date)
	if err != nil {
		return fmt.Sprintf("%s a las %shs", draft.Date, draft.Time)
	}
	return fmt.Sprintf("%s a las %shs", locale.LongDate(day), draft.Time)
}

func shortDate(date string) string {
	day, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return locale.ShortDate(day)
}

// Payload is the body of a booking.confirmed event.
type Payload struct {
	ConfirmationID string             `json:"confirmation_id"`
	SessionID      string             `json:"session_id"`
	AreaName       string             `json:"area_name"`
	Draft          model.BookingDraft `json:"draft"`
	ConfirmedAt    time.Time          `json:"confirmed_at"`
}

// Publish emits a booking.confirmed event keyed by the confirmation id.
func Publish(ctx context.Context, publisher events.Publisher, sessionID string, conf model.Confirmation) error {
	return publisher.Publish(ctx, events.Event{
		Type:          events.TypeBookingConfirmed,
		Key:           conf.ID,
		CorrelationID: sessionID,
		OccurredAt:    conf.ConfirmedAt,
		Payload: Payload{
			ConfirmationID: conf.ID,
			SessionID:      sessionID,
			AreaName:       conf.AreaName,
			Draft:          conf.Draft,
			ConfirmedAt:    conf.ConfirmedAt,
		},
	})
}
