package client

import (
	"context"

	"cemdon/pkg/model"
)

type ContactClient struct {
	httpClient *HttpClient
}

func NewContactClient(baseURL string) *ContactClient {
	return &ContactClient{
		httpClient: NewHttpClient(baseURL),
	}
}

// Submit posts a contact message. An idempotency key is attached when non-empty.
func (c *ContactClient) Submit(ctx context.Context, msg model.ContactMessage, idempotencyKey string) (*Response, error) {
	if idempotencyKey == "" {
		return c.httpClient.POST(ctx, "/api/v1/contact", msg)
	}
	return c.httpClient.POSTWithHeaders(ctx, "/api/v1/contact", msg, map[string]string{
		"Idempotency-Key": idempotencyKey,
	})
}
