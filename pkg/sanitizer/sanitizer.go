package sanitizer

import (
	"strings"

	"cemdon/pkg/model"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

// SanitizeContactMessage normalizes a contact form submission in place.
func SanitizeContactMessage(msg *model.ContactMessage) {
	msg.Name = NormalizeName(msg.Name)
	msg.Email = NormalizeEmail(msg.Email)
	msg.Phone = NormalizePhone(msg.Phone)
	msg.Message = NormalizeMessage(msg.Message)
}

// SanitizeDraftContact trims booking contact fields. Phone formatting is
// left to FormatPhoneDisplay so the visitor's input is kept as typed.
func SanitizeDraftContact(draft *model.BookingDraft) {
	draft.ContactName = NormalizeName(draft.ContactName)
	draft.ContactPhone = strings.TrimSpace(draft.ContactPhone)
	draft.ContactEmail = strings.TrimSpace(draft.ContactEmail)
}
