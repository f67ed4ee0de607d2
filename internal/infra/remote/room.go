package remote

import (
	"context"
	"fmt"
	"strings"

	"reservation-service/internal/pkg/config"
	"reservation-service/internal/usecase/shared"
)

// roomPayload carries the room service's wire format. Field names follow the
// remote camelCase convention; mapping to local names happens here and
// nowhere else.
type roomPayload struct {
	ID            int64   `json:"id"`
	RoomNumber    string  `json:"roomNumber"`
	RoomType      string  `json:"roomType"`
	PricePerNight float64 `json:"pricePerNight"`
	Status        string  `json:"status"`
}

type roomStatusPayload struct {
	Status string `json:"status"`
}

type RoomClient struct {
	*httpClient
}

type RoomClientFactory struct {
	cfg config.RemoteServiceConfig
}

func NewRoomClientFactory(cfg config.Config) *RoomClientFactory {
	return &RoomClientFactory{cfg: cfg.RoomService}
}

func (f *RoomClientFactory) Acquire() shared.RoomGateway {
	return &RoomClient{
		httpClient: newHTTPClient(strings.TrimRight(f.cfg.BaseURL, "/"), f.cfg.Timeout),
	}
}

func (c *RoomClient) GetRoom(ctx context.Context, id int64) (*shared.RoomSnapshot, error) {
	var payload roomPayload
	found, err := c.getJSON(ctx, fmt.Sprintf("/rooms/%d", id), &payload)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return &shared.RoomSnapshot{
		ID:            payload.ID,
		RoomNumber:    payload.RoomNumber,
		RoomType:      payload.RoomType,
		PricePerNight: payload.PricePerNight,
		Status:        payload.Status,
	}, nil
}

func (c *RoomClient) UpdateStatus(ctx context.Context, id int64, status string) error {
	return c.putJSON(ctx, fmt.Sprintf("/rooms/%d/status", id), roomStatusPayload{Status: status})
}
