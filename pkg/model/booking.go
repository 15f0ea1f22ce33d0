package model

import "time"

// Step is a screen of the booking widget.
type Step int

const (
	StepArea     Step = 1
	StepSchedule Step = 2
	StepContact  Step = 3
)

func (s Step) Valid() bool {
	return s >= StepArea && s <= StepContact
}

// DateLayout is the wire format of a draft date.
const DateLayout = "2006-01-02"

type Area struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BookingDraft is the in-progress selection. Unset fields hold the empty
// string.
type BookingDraft struct {
	Area         string `json:"area" bson:"area"`
	Date         string `json:"date" bson:"date"`
	Time         string `json:"time" bson:"time"`
	ContactName  string `json:"contact_name" bson:"contact_name"`
	ContactPhone string `json:"contact_phone" bson:"contact_phone"`
	ContactEmail string `json:"contact_email" bson:"contact_email"`
}

// BookingState is what a draft store keeps per session.
type BookingState struct {
	SessionID string       `json:"session_id" bson:"_id"`
	Step      Step         `json:"step" bson:"step"`
	Draft     BookingDraft `json:"draft" bson:"draft"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
}

type DateOption struct {
	Date       string `json:"date"`
	Weekday    string `json:"weekday"`
	Day        int    `json:"day"`
	Weekend    bool   `json:"weekend"`
	Selectable bool   `json:"selectable"`
}

type Confirmation struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	AreaName    string       `json:"area_name"`
	Summary     string       `json:"summary"`
	Draft       BookingDraft `json:"draft"`
	ConfirmedAt time.Time    `json:"confirmed_at"`
}

// SessionView is the client-facing snapshot of a booking session.
type SessionView struct {
	Token        string        `json:"token"`
	Step         Step          `json:"step"`
	Draft        BookingDraft  `json:"draft"`
	AreaName     string        `json:"area_name,omitempty"`
	CanProceed   bool          `json:"can_proceed"`
	Summary      string        `json:"summary,omitempty"`
	PhoneDisplay string        `json:"phone_display,omitempty"`
	ExpiresAt    time.Time     `json:"expires_at"`
	Confirmation *Confirmation `json:"confirmation,omitempty"`
}

type SelectAreaRequest struct {
	Area string `json:"area" validate:"required,max=50"`
}

type SelectDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type SelectTimeRequest struct {
	Time string `json:"time" validate:"required,datetime=15:04"`
}

// ContactUpdate is a partial edit; nil fields are left untouched.
type ContactUpdate struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email *string `json:"email,omitempty" validate:"omitempty,max=254"`
}
