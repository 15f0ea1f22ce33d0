package client

import (
	"context"
	"net/url"

	"cemdon/pkg/model"
)

const bookingBasePath = "/api/v1/booking"

type BookingClient struct {
	httpClient *HttpClient
}

func NewBookingClient(baseURL string) *BookingClient {
	return &BookingClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *BookingClient) HTTP() *HttpClient {
	return c.httpClient
}

func (c *BookingClient) Areas(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, bookingBasePath+"/areas")
}

func (c *BookingClient) TimeSlots(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, bookingBasePath+"/time-slots")
}

func (c *BookingClient) Dates(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, bookingBasePath+"/dates")
}

func (c *BookingClient) StartSession(ctx context.Context) (*Response, error) {
	return c.httpClient.POST(ctx, bookingBasePath+"/sessions", nil)
}

func (c *BookingClient) GetSession(ctx context.Context, token string) (*Response, error) {
	return c.httpClient.GET(ctx, sessionPath(token, ""))
}

func (c *BookingClient) SelectArea(ctx context.Context, token, area string) (*Response, error) {
	return c.httpClient.PUT(ctx, sessionPath(token, "/area"), model.SelectAreaRequest{Area: area})
}

func (c *BookingClient) SelectDate(ctx context.Context, token, date string) (*Response, error) {
	return c.httpClient.PUT(ctx, sessionPath(token, "/date"), model.SelectDateRequest{Date: date})
}

func (c *BookingClient) SelectTime(ctx context.Context, token, slot string) (*Response, error) {
	return c.httpClient.PUT(ctx, sessionPath(token, "/time"), model.SelectTimeRequest{Time: slot})
}

func (c *BookingClient) UpdateContact(ctx context.Context, token string, update model.ContactUpdate) (*Response, error) {
	return c.httpClient.PATCH(ctx, sessionPath(token, "/contact"), update)
}

func (c *BookingClient) Advance(ctx context.Context, token string) (*Response, error) {
	return c.httpClient.POST(ctx, sessionPath(token, "/advance"), nil)
}

func (c *BookingClient) Retreat(ctx context.Context, token string) (*Response, error) {
	return c.httpClient.POST(ctx, sessionPath(token, "/retreat"), nil)
}

func (c *BookingClient) Submit(ctx context.Context, token string) (*Response, error) {
	return c.httpClient.POST(ctx, sessionPath(token, "/submit"), nil)
}

func sessionPath(token, suffix string) string {
	return bookingBasePath + "/sessions/" + url.PathEscape(token) + suffix
}
