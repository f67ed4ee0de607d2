package remote

import (
	"context"
	"fmt"
	"strings"

	"reservation-service/internal/pkg/config"
	"reservation-service/internal/usecase/shared"
)

// guestPayload mirrors the guest service's wire format. Every descriptive
// field is optional on the remote side; a missing field must not fail the
// whole lookup, so they decode into pointers.
type guestPayload struct {
	ID       int64   `json:"id"`
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

type GuestClient struct {
	*httpClient
}

type GuestClientFactory struct {
	cfg config.RemoteServiceConfig
}

func NewGuestClientFactory(cfg config.Config) *GuestClientFactory {
	return &GuestClientFactory{cfg: cfg.GuestService}
}

func (f *GuestClientFactory) Acquire() shared.GuestGateway {
	return &GuestClient{
		httpClient: newHTTPClient(strings.TrimRight(f.cfg.BaseURL, "/"), f.cfg.Timeout),
	}
}

func (c *GuestClient) GetGuest(ctx context.Context, id int64) (*shared.GuestSnapshot, error) {
	var payload guestPayload
	found, err := c.getJSON(ctx, fmt.Sprintf("/guests/%d", id), &payload)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return &shared.GuestSnapshot{
		ID:       payload.ID,
		FullName: payload.FullName,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Address:  payload.Address,
	}, nil
}
