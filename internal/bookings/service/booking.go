package service

import (
	"context"
	"errors"
	"fmt"

	"cemdon/internal/bookings/calendar"
	"cemdon/internal/bookings/catalog"
	"cemdon/internal/bookings/confirmation"
	bookingserrors "cemdon/internal/bookings/errors"
	"cemdon/internal/bookings/flow"
	"cemdon/internal/bookings/repository"
	"cemdon/internal/bookings/validator"
	"cemdon/pkg/config"
	apperrors "cemdon/pkg/errors"
	"cemdon/pkg/events"
	"cemdon/pkg/metrics"
	"cemdon/pkg/model"
	"cemdon/pkg/sanitizer"
	"cemdon/pkg/sealer"

	"github.com/google/uuid"
)

const sessionResource = "Booking session"

type BookingService interface {
	Areas() []model.Area
	TimeSlots() []string
	DateWindow() []model.DateOption

	StartSession(ctx context.Context) (*model.SessionView, error)
	GetSession(ctx context.Context, token string) (*model.SessionView, error)
	SelectArea(ctx context.Context, token string, req *model.SelectAreaRequest) (*model.SessionView, error)
	SelectDate(ctx context.Context, token string, req *model.SelectDateRequest) (*model.SessionView, error)
	SelectTime(ctx context.Context, token string, req *model.SelectTimeRequest) (*model.SessionView, error)
	UpdateContact(ctx context.Context, token string, update *model.ContactUpdate) (*model.SessionView, error)
	Advance(ctx context.Context, token string) (*model.SessionView, error)
	Retreat(ctx context.Context, token string) (*model.SessionView, error)
	Submit(ctx context.Context, token string) (*model.SessionView, error)
}

type Option func(*bookingService)

// WithClock replaces the clinic wall clock.
func WithClock(clock calendar.Clock) Option {
	return func(s *bookingService) {
		s.clock = clock
	}
}

// WithIDGenerator replaces uuid generation for session and confirmation ids.
func WithIDGenerator(next func() string) Option {
	return func(s *bookingService) {
		s.newID = next
	}
}

type bookingService struct {
	repo      repository.DraftRepository
	validator *validator.BookingValidator
	sealer    *sealer.Sealer
	publisher events.Publisher
	metrics   *metrics.BookingMetrics
	cfg       *config.Config

	clock calendar.Clock
	newID func() string
	locks *sessionLocks
}

func NewBookingService(
	repo repository.DraftRepository,
	validator *validator.BookingValidator,
	sealer *sealer.Sealer,
	publisher events.Publisher,
	metrics *metrics.BookingMetrics,
	cfg *config.Config,
	opts ...Option,
) BookingService {
	s := &bookingService{
		repo:      repo,
		validator: validator,
		sealer:    sealer,
		publisher: publisher,
		metrics:   metrics,
		cfg:       cfg,
		clock:     calendar.SystemClock{Location: cfg.ClinicLocation},
		newID:     uuid.NewString,
		locks:     newSessionLocks(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *bookingService) Areas() []model.Area {
	return catalog.Areas()
}

func (s *bookingService) TimeSlots() []string {
	return catalog.TimeSlots()
}

func (s *bookingService) DateWindow() []model.DateOption {
	return calendar.Window(s.clock.Now(), s.cfg.DateWindowDays)
}

func (s *bookingService) StartSession(ctx context.Context) (*model.SessionView, error) {
	now := s.clock.Now().UTC()
	state := &model.BookingState{
		SessionID: s.newID(),
		Step:      model.StepArea,
		CreatedAt: now,
		UpdatedAt: now,
	}

	token, err := s.sealer.Seal(state.SessionID, now)
	if err != nil {
		return nil, apperrors.Internal("Failed to issue session token", err)
	}
	if err := s.repo.Save(ctx, state); err != nil {
		s.cfg.Log.Error("Failed to save new booking session", "error", err)
		return nil, apperrors.Internal("Failed to start booking session", err)
	}

	s.metrics.SessionStarted()
	s.cfg.Log.Info("Booking session started", "session_id", state.SessionID)
	return s.view(token, state, nil), nil
}

func (s *bookingService) GetSession(ctx context.Context, token string) (*model.SessionView, error) {
	sessionID, err := s.open(token)
	if err != nil {
		return nil, err
	}

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(token, state, nil), nil
}

func (s *bookingService) SelectArea(ctx context.Context, token string, req *model.SelectAreaRequest) (*model.SessionView, error) {
	if err := s.validator.ValidateArea(req); err != nil {
		return nil, translateValidation(err)
	}
	return s.mutate(ctx, token, func(c *flow.Controller) error {
		return c.SelectArea(req.Area)
	})
}

func (s *bookingService) SelectDate(ctx context.Context, token string, req *model.SelectDateRequest) (*model.SessionView, error) {
	if err := s.validator.ValidateDate(req); err != nil {
		return nil, translateValidation(err)
	}
	return s.mutate(ctx, token, func(c *flow.Controller) error {
		return c.SelectDate(req.Date, s.DateWindow())
	})
}

func (s *bookingService) SelectTime(ctx context.Context, token string, req *model.SelectTimeRequest) (*model.SessionView, error) {
	if err := s.validator.ValidateTime(req); err != nil {
		return nil, translateValidation(err)
	}
	return s.mutate(ctx, token, func(c *flow.Controller) error {
		return c.SelectTime(req.Time)
	})
}

func (s *bookingService) UpdateContact(ctx context.Context, token string, update *model.ContactUpdate) (*model.SessionView, error) {
	if err := s.validator.ValidateContact(update); err != nil {
		return nil, translateValidation(err)
	}
	return s.mutate(ctx, token, func(c *flow.Controller) error {
		c.UpdateContact(update.Name, update.Phone, update.Email)

		draft := c.Draft()
		sanitizer.SanitizeDraftContact(&draft)
		c.UpdateContact(&draft.ContactName, &draft.ContactPhone, &draft.ContactEmail)
		return nil
	})
}

func (s *bookingService) Advance(ctx context.Context, token string) (*model.SessionView, error) {
	return s.mutate(ctx, token, func(c *flow.Controller) error {
		from := c.Step()
		if err := c.Advance(); err != nil {
			s.metrics.Blocked(int(from))
			return err
		}
		if c.Step() != from {
			s.metrics.Transition(int(from), int(c.Step()))
		}
		return nil
	})
}

func (s *bookingService) Retreat(ctx context.Context, token string) (*model.SessionView, error) {
	return s.mutate(ctx, token, func(c *flow.Controller) error {
		from := c.Step()
		if c.Retreat() {
			s.metrics.Transition(int(from), int(c.Step()))
		}
		return nil
	})
}

// Submit confirms the booking, resets the session so the page can book
// again, and publishes booking.confirmed. A publish failure is logged only.
func (s *bookingService) Submit(ctx context.Context, token string) (*model.SessionView, error) {
	sessionID, err := s.open(token)
	if err != nil {
		return nil, err
	}
	unlock := s.locks.lock(sessionID)
	defer unlock()

	state, c, err := s.restore(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	from := c.Step()
	draft, err := c.Submit()
	if err != nil {
		if errors.Is(err, bookingserrors.ErrStepIncomplete) {
			s.metrics.Blocked(int(from))
		}
		return nil, s.translate(err, c)
	}

	now := s.clock.Now()
	conf := confirmation.Build(s.newID(), draft, now)

	if err := s.save(ctx, state, c); err != nil {
		return nil, err
	}

	if err := confirmation.Publish(ctx, s.publisher, sessionID, conf); err != nil {
		s.cfg.Log.Error("Failed to publish booking confirmation",
			"session_id", sessionID,
			"confirmation_id", conf.ID,
			"error", err,
		)
	}

	s.metrics.Confirmed(draft.Area)
	s.cfg.Log.Info("Booking confirmed",
		"session_id", sessionID,
		"confirmation_id", conf.ID,
		"area", draft.Area,
		"date", draft.Date,
		"time", draft.Time,
	)
	return s.view(token, state, &conf), nil
}

// mutate runs op on the session's controller and stores the result. Failed
// operations leave the stored state untouched.
func (s *bookingService) mutate(ctx context.Context, token string, op func(c *flow.Controller) error) (*model.SessionView, error) {
	sessionID, err := s.open(token)
	if err != nil {
		return nil, err
	}
	unlock := s.locks.lock(sessionID)
	defer unlock()

	state, c, err := s.restore(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := op(c); err != nil {
		return nil, s.translate(err, c)
	}

	if err := s.save(ctx, state, c); err != nil {
		return nil, err
	}
	return s.view(token, state, nil), nil
}

func (s *bookingService) open(token string) (string, error) {
	if token == "" {
		return "", apperrors.InvalidInput("Session token cannot be empty")
	}
	sessionID, _, err := s.sealer.Open(token)
	if err != nil {
		return "", apperrors.NotFound(sessionResource)
	}
	return sessionID, nil
}

func (s *bookingService) load(ctx context.Context, sessionID string) (*model.BookingState, error) {
	state, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrSessionNotFound) {
			return nil, apperrors.NotFound(sessionResource)
		}
		s.cfg.Log.Error("Failed to load booking session", "session_id", sessionID, "error", err)
		return nil, apperrors.Internal("Failed to load booking session", err)
	}
	return state, nil
}

func (s *bookingService) restore(ctx context.Context, sessionID string) (*model.BookingState, *flow.Controller, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	c, err := flow.Restore(state.Step, state.Draft)
	if err != nil {
		s.cfg.Log.Error("Stored booking session is corrupt", "session_id", sessionID, "step", state.Step)
		return nil, nil, apperrors.Internal("Booking session is corrupt", err)
	}
	return state, c, nil
}

func (s *bookingService) save(ctx context.Context, state *model.BookingState, c *flow.Controller) error {
	state.Step = c.Step()
	state.Draft = c.Draft()
	state.UpdatedAt = s.clock.Now().UTC()

	if err := s.repo.Save(ctx, state); err != nil {
		s.cfg.Log.Error("Failed to save booking session", "session_id", state.SessionID, "error", err)
		return apperrors.Internal("Failed to save booking session", err)
	}
	return nil
}

func (s *bookingService) view(token string, state *model.BookingState, conf *model.Confirmation) *model.SessionView {
	v := &model.SessionView{
		Token:        token,
		Step:         state.Step,
		Draft:        state.Draft,
		AreaName:     catalog.AreaName(state.Draft.Area),
		CanProceed:   len(flow.MissingFields(state.Step, state.Draft)) == 0,
		ExpiresAt:    state.UpdatedAt.Add(s.cfg.SessionTTL),
		Confirmation: conf,
	}
	if state.Step == model.StepContact {
		v.Summary = confirmation.Summary(state.Draft)
	}
	if state.Draft.ContactPhone != "" {
		v.PhoneDisplay = sanitizer.FormatPhoneDisplay(state.Draft.ContactPhone)
	}
	return v
}

func (s *bookingService) translate(err error, c *flow.Controller) error {
	switch {
	case errors.Is(err, bookingserrors.ErrUnknownArea):
		return apperrors.Validation("Unknown area", map[string]any{
			"area": "must be one of the offered areas",
		})
	case errors.Is(err, bookingserrors.ErrDateNotSelectable):
		return apperrors.Validation("Date is not selectable", map[string]any{
			"date": fmt.Sprintf("must be a weekday within the next %d days", s.cfg.DateWindowDays),
		})
	case errors.Is(err, bookingserrors.ErrUnknownTimeSlot):
		return apperrors.Validation("Unknown time slot", map[string]any{
			"time": "must be one of the offered time slots",
		})
	case errors.Is(err, bookingserrors.ErrStepIncomplete):
		return apperrors.StepIncomplete("Complete the current step before continuing", map[string]any{
			"step":    int(c.Step()),
			"missing": flow.MissingFields(c.Step(), c.Draft()),
		})
	case errors.Is(err, bookingserrors.ErrNotAtFinalStep):
		return apperrors.Conflict("Booking can only be submitted from the contact step").WithDetails(map[string]any{
			"step": int(c.Step()),
		})
	}
	if apperrors.IsAppError(err) {
		return err
	}
	return apperrors.Internal("Booking operation failed", err)
}

func translateValidation(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validation("Invalid request", verrs.Details())
	}
	return apperrors.InvalidInput(err.Error())
}
