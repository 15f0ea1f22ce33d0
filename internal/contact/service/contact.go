package service

import (
	"context"
	"errors"
	"net/http"

	contacterrors "cemdon/internal/contact/errors"
	"cemdon/internal/contact/submitter"
	"cemdon/internal/contact/validator"
	"cemdon/pkg/config"
	apperrors "cemdon/pkg/errors"
	"cemdon/pkg/events"
	"cemdon/pkg/metrics"
	"cemdon/pkg/middleware"
	"cemdon/pkg/model"
	"cemdon/pkg/sanitizer"
)

const (
	StatusSent      = "sent"
	StatusInvalid   = "invalid"
	StatusAbandoned = "abandoned"
)

type ContactService interface {
	Submit(ctx context.Context, msg *model.ContactMessage) (*model.ContactReceipt, error)
}

type contactService struct {
	submitter *submitter.Submitter
	validator *validator.ContactValidator
	publisher events.Publisher
	metrics   *metrics.ContactMetrics
	cfg       *config.Config
}

func NewContactService(
	submitter *submitter.Submitter,
	validator *validator.ContactValidator,
	publisher events.Publisher,
	metrics *metrics.ContactMetrics,
	cfg *config.Config,
) ContactService {
	return &contactService{
		submitter: submitter,
		validator: validator,
		publisher: publisher,
		metrics:   metrics,
		cfg:       cfg,
	}
}

// ReceivedPayload is the body of a contact.received event.
type ReceivedPayload struct {
	ReceiptID string               `json:"receipt_id"`
	Message   model.ContactMessage `json:"message"`
}

// Submit waits for the submission to resolve. If ctx ends first the
// message counts as abandoned and no event is published.
func (s *contactService) Submit(ctx context.Context, msg *model.ContactMessage) (*model.ContactReceipt, error) {
	sanitizer.SanitizeContactMessage(msg)
	if err := s.validator.Validate(msg); err != nil {
		s.metrics.Submission(StatusInvalid)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, apperrors.Validation("Invalid contact message", verrs.Details())
		}
		return nil, apperrors.InvalidInput(err.Error())
	}

	future, err := s.submitter.Submit(*msg)
	if err != nil {
		if errors.Is(err, contacterrors.ErrSubmitterStopped) {
			return nil, apperrors.Unavailable("Contact form")
		}
		return nil, apperrors.Internal("Failed to submit contact message", err)
	}

	var receipt model.ContactReceipt
	select {
	case receipt = <-future:
	case <-ctx.Done():
		s.metrics.Submission(StatusAbandoned)
		s.cfg.Log.Warn("Contact message abandoned before it resolved", "error", ctx.Err())
		return nil, apperrors.Wrap(contacterrors.ErrAbandoned, apperrors.CodeTimeout, "Contact message was not sent", http.StatusGatewayTimeout)
	}

	if err := s.publisher.Publish(context.WithoutCancel(ctx), events.Event{
		Type:          events.TypeContactReceived,
		Key:           receipt.ID,
		CorrelationID: middleware.RequestIDFromContext(ctx),
		OccurredAt:    receipt.ReceivedAt,
		Payload: ReceivedPayload{
			ReceiptID: receipt.ID,
			Message:   *msg,
		},
	}); err != nil {
		s.cfg.Log.Error("Failed to publish contact message", "receipt_id", receipt.ID, "error", err)
	}

	s.metrics.Submission(StatusSent)
	s.cfg.Log.Info("Contact message received", "receipt_id", receipt.ID)
	return &receipt, nil
}
