package testutil

import "cemdon/pkg/model"

type ContactMessageBuilder struct {
	msg model.ContactMessage
}

func NewContactMessageBuilder() *ContactMessageBuilder {
	return &ContactMessageBuilder{
		msg: model.ContactMessage{
			Name:    "María González",
			Email:   "maria@example.com",
			Phone:   "+54 351 555-1234",
			Message: "Quisiera consultar por un turno de nutrición.",
		},
	}
}

func (b *ContactMessageBuilder) WithName(name string) *ContactMessageBuilder {
	b.msg.Name = name
	return b
}

func (b *ContactMessageBuilder) WithEmail(email string) *ContactMessageBuilder {
	b.msg.Email = email
	return b
}

func (b *ContactMessageBuilder) WithPhone(phone string) *ContactMessageBuilder {
	b.msg.Phone = phone
	return b
}

func (b *ContactMessageBuilder) WithMessage(message string) *ContactMessageBuilder {
	b.msg.Message = message
	return b
}

func (b *ContactMessageBuilder) Build() model.ContactMessage {
	return b.msg
}

// Ptr returns a pointer to s, for partial contact updates.
func Ptr(s string) *string {
	return &s
}
