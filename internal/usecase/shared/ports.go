package shared

import (
	"context"
)

// Room-side status vocabulary. These belong to the room service but overlap
// with reservation statuses on the wire, so they are plain strings here.
const (
	RoomStatusAvailable = "available"
	RoomStatusReserved  = "reserved"
)

// RoomSnapshot is a request-scoped projection of a remote room record. It is
// never persisted locally; every read re-fetches live state.
type RoomSnapshot struct {
	ID            int64
	RoomNumber    string
	RoomType      string
	PricePerNight float64
	Status        string
}

// GuestSnapshot mirrors the guest service record. All descriptive fields are
// individually optional on the remote side.
type GuestSnapshot struct {
	ID       int64
	FullName *string
	Email    *string
	Phone    *string
	Address  *string
}

// RoomGateway is a call-scoped connection to the room service. Callers must
// Close it on every exit path. GetRoom returns (nil, nil) when the room does
// not exist. Each call is a single attempt; there is no retry.
type RoomGateway interface {
	GetRoom(ctx context.Context, id int64) (*RoomSnapshot, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Close()
}

// GuestGateway is a call-scoped connection to the guest service.
type GuestGateway interface {
	GetGuest(ctx context.Context, id int64) (*GuestSnapshot, error)
	Close()
}

type RoomGatewayFactory interface {
	Acquire() RoomGateway
}

type GuestGatewayFactory interface {
	Acquire() GuestGateway
}
