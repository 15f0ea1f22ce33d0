package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"cemdon/internal/contact/submitter"
	"cemdon/internal/contact/validator"
	"cemdon/pkg/config"
	apperrors "cemdon/pkg/errors"
	"cemdon/pkg/events"
	"cemdon/pkg/logger"
	"cemdon/pkg/metrics"
	"cemdon/pkg/middleware"
	"cemdon/pkg/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixture struct {
	svc       ContactService
	sub       *submitter.Submitter
	publisher *events.MemoryPublisher
	registry  *prometheus.Registry
}

func newFixture(t *testing.T, delay time.Duration) *fixture {
	t.Helper()
	cfg := &config.Config{Log: logger.Discard()}
	sub := submitter.New(delay)
	t.Cleanup(sub.Stop)

	reg := prometheus.NewRegistry()
	pub := events.NewMemoryPublisher()
	svc := NewContactService(sub, validator.NewContactValidator(cfg.Log), pub, metrics.NewContactMetrics(reg), cfg)
	return &fixture{svc: svc, sub: sub, publisher: pub, registry: reg}
}

func validMessage() *model.ContactMessage {
	return &model.ContactMessage{
		Name:    "  Carolina   M. ",
		Email:   " Carolina@Example.com ",
		Phone:   "3564 123456",
		Message: "Quisiera un turno para nutrición.",
	}
}

func submissions(status string) string {
	return `
# HELP cemdon_contact_submissions_total Contact form submissions by outcome
# TYPE cemdon_contact_submissions_total counter
cemdon_contact_submissions_total{status="` + status + `"} 1
`
}

func TestSubmit(t *testing.T) {
	f := newFixture(t, 20*time.Millisecond)
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")

	start := time.Now()
	receipt, err := f.svc.Submit(ctx, validMessage())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	assert.Equal(t, "¡Mensaje enviado!", receipt.Title)
	assert.Equal(t, "Nos pondremos en contacto contigo pronto.", receipt.Description)
	assert.NotEmpty(t, receipt.ID)

	published := f.publisher.Events()
	require.Len(t, published, 1)
	assert.Equal(t, events.TypeContactReceived, published[0].Type)
	assert.Equal(t, receipt.ID, published[0].Key)
	assert.Equal(t, "req-1", published[0].CorrelationID)

	payload := published[0].Payload.(ReceivedPayload)
	assert.Equal(t, "Carolina M.", payload.Message.Name)
	assert.Equal(t, "carolina@example.com", payload.Message.Email)
	assert.Equal(t, "+543564123456", payload.Message.Phone)

	assert.NoError(t, testutil.GatherAndCompare(f.registry,
		strings.NewReader(submissions(StatusSent)), "cemdon_contact_submissions_total"))
}

func TestSubmit_Invalid(t *testing.T) {
	f := newFixture(t, 0)

	msg := validMessage()
	msg.Email = "not-an-email"

	_, err := f.svc.Submit(context.Background(), msg)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Details, "email")
	assert.Empty(t, f.publisher.Events())

	assert.NoError(t, testutil.GatherAndCompare(f.registry,
		strings.NewReader(submissions(StatusInvalid)), "cemdon_contact_submissions_total"))
}

func TestSubmit_Abandoned(t *testing.T) {
	f := newFixture(t, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.svc.Submit(ctx, validMessage())
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusGatewayTimeout, appErr.StatusCode())
	assert.Empty(t, f.publisher.Events())
}

func TestSubmit_PublishFailureStillSucceeds(t *testing.T) {
	f := newFixture(t, 0)
	f.publisher.FailWith(errors.New("broker down"))

	receipt, err := f.svc.Submit(context.Background(), validMessage())
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ID)
}

func TestSubmit_Stopped(t *testing.T) {
	f := newFixture(t, 0)
	f.sub.Stop()

	_, err := f.svc.Submit(context.Background(), validMessage())
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeUnavailable, appErr.Code)
}
