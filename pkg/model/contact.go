package model

import "time"

type ContactMessage struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

type ContactReceipt struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ReceivedAt  time.Time `json:"received_at"`
}
