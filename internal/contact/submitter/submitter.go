// Package submitter resolves contact form submissions after a fixed delay,
// the way the site acknowledges a message once it has been "sent".
package submitter

import (
	"sync"
	"time"

	contacterrors "cemdon/internal/contact/errors"
	"cemdon/pkg/model"

	"github.com/google/uuid"
)

const (
	DefaultDelay = 1500 * time.Millisecond

	ReceiptTitle       = "¡Mensaje enviado!"
	ReceiptDescription = "Nos pondremos en contacto contigo pronto."
)

type Submitter struct {
	delay time.Duration
	now   func() time.Time
	newID func() string

	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

func New(delay time.Duration) *Submitter {
	if delay < 0 {
		delay = 0
	}
	return &Submitter{
		delay: delay,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Submit returns a channel that receives exactly one receipt after the
// delay and is then closed. The submission always succeeds and keeps
// running if the caller stops listening.
func (s *Submitter) Submit(msg model.ContactMessage) (<-chan model.ContactReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return nil, contacterrors.ErrSubmitterStopped
	}

	out := make(chan model.ContactReceipt, 1)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(out)

		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		<-timer.C

		out <- model.ContactReceipt{
			ID:          s.newID(),
			Title:       ReceiptTitle,
			Description: ReceiptDescription,
			ReceivedAt:  s.now().UTC(),
		}
	}()
	return out, nil
}

// Stop refuses new submissions and waits for pending ones to resolve.
func (s *Submitter) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
	s.wg.Wait()
}
