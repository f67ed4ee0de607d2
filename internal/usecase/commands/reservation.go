package commands

import (
	"context"
	"log/slog"
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/infra"
	"reservation-service/internal/pkg/config"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/usecase/queries"
	"reservation-service/internal/usecase/shared"
)

var (
	ErrRoomNotAvailable        = errs.New("room not available")
	ErrRoomLookupFailed        = errs.New("room lookup failed")
	ErrRoomSyncFailed          = errs.New("room status sync failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateReservationInput struct {
	GuestID      int64
	RoomID       int64
	CheckInDate  time.Time
	CheckOutDate time.Time
	Status       reservation.Status // empty means confirmed
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (int64, error)
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	Update(ctx context.Context, res *reservation.Reservation) error
	Delete(ctx context.Context, id int64) error
}

type ReservationCommands interface {
	Create(ctx context.Context, input CreateReservationInput) (*queries.ReservationView, error)
	// Update returns (nil, nil) when the reservation does not exist.
	Update(ctx context.Context, id int64, patch reservation.Patch) (*queries.ReservationView, error)
	// Delete returns false when the reservation does not exist; no remote
	// call is issued in that case.
	Delete(ctx context.Context, id int64) (bool, error)
}

// reservationCommandsImpl orchestrates the local store and the two remote
// services. There is no transaction spanning them: the local write commits
// first and the room-status notification follows as a best-effort second
// step. See syncRoomStatus for the failure semantics.
type reservationCommandsImpl struct {
	repo           ReservationRepository
	rooms          shared.RoomGatewayFactory
	guests         shared.GuestGatewayFactory
	strictRoomSync bool
}

func NewReservationCommands(
	repo ReservationRepository,
	rooms shared.RoomGatewayFactory,
	guests shared.GuestGatewayFactory,
	cfg config.OrchestrationConfig,
) ReservationCommands {
	return &reservationCommandsImpl{
		repo:           repo,
		rooms:          rooms,
		guests:         guests,
		strictRoomSync: cfg.StrictRoomSync,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, input CreateReservationInput) (*queries.ReservationView, error) {
	rooms := c.rooms.Acquire()
	defer rooms.Close()

	room, err := rooms.GetRoom(ctx, input.RoomID)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomLookupFailed)
	}
	if room == nil || room.Status != shared.RoomStatusAvailable {
		return nil, errs.Mark(errs.Newf("room %d is not available", input.RoomID), ErrRoomNotAvailable)
	}

	entity := reservation.New(input.GuestID, input.RoomID, input.CheckInDate, input.CheckOutDate, input.Status)
	id, err := c.repo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	created := reservation.Reconstruct(id, entity.GuestID(), entity.RoomID(),
		entity.CheckInDate(), entity.CheckOutDate(), entity.Status())

	if err := c.syncRoomStatus(ctx, rooms, input.RoomID, shared.RoomStatusReserved); err != nil {
		return nil, err
	}

	view := queries.NewReservationView(created)
	// The room projection reuses the snapshot fetched for the availability
	// check, so it still shows the pre-reservation status.
	view.Room = queries.RoomViewFromSnapshot(room)

	guests := c.guests.Acquire()
	defer guests.Close()
	if guest, guestErr := guests.GetGuest(ctx, input.GuestID); guestErr != nil {
		slog.Warn("guest lookup failed; serving reservation without guest projection",
			"reservation_id", id, "guest_id", input.GuestID, "error", guestErr)
	} else {
		view.Guest = queries.GuestViewFromSnapshot(guest)
	}

	return view, nil
}

func (c *reservationCommandsImpl) Update(ctx context.Context, id int64, patch reservation.Patch) (*queries.ReservationView, error) {
	res, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Acquired lazily: only updates that touch room state need the client.
	var rooms shared.RoomGateway
	defer func() {
		if rooms != nil {
			rooms.Close()
		}
	}()

	roomCallIssued := false
	if patch.RoomChange(res.RoomID()) {
		rooms = c.rooms.Acquire()

		newRoom, roomErr := rooms.GetRoom(ctx, *patch.RoomID)
		if roomErr != nil {
			return nil, errs.Mark(roomErr, ErrRoomLookupFailed)
		}
		if newRoom == nil || newRoom.Status != shared.RoomStatusAvailable {
			return nil, errs.Mark(errs.Newf("room %d is not available", *patch.RoomID), ErrRoomNotAvailable)
		}

		// Free the old room first, then claim the new one.
		if err := c.syncRoomStatus(ctx, rooms, res.RoomID(), shared.RoomStatusAvailable); err != nil {
			return nil, err
		}
		if err := c.syncRoomStatus(ctx, rooms, *patch.RoomID, shared.RoomStatusReserved); err != nil {
			return nil, err
		}
		roomCallIssued = true
	}

	res.Apply(patch)

	// Checking out frees the room, but only on this explicit status
	// transition and only when the update has not already touched room
	// state. There is no state machine behind this.
	if patch.ChecksOut() && !roomCallIssued {
		if rooms == nil {
			rooms = c.rooms.Acquire()
		}
		if err := c.syncRoomStatus(ctx, rooms, res.RoomID(), shared.RoomStatusAvailable); err != nil {
			return nil, err
		}
	}

	if err := c.repo.Update(ctx, res); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.composeView(ctx, res), nil
}

func (c *reservationCommandsImpl) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rooms := c.rooms.Acquire()
	defer rooms.Close()

	// The room is freed before the local delete; its outcome does not gate
	// the delete.
	if err := c.syncRoomStatus(ctx, rooms, res.RoomID(), shared.RoomStatusAvailable); err != nil {
		return false, err
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return true, nil
}

// syncRoomStatus pushes a room-status change to the room service. In the
// default mode a failure is logged and the mutation proceeds as if it had
// succeeded, leaving local and remote state divergent until reconciled out
// of band. StrictRoomSync turns the failure into a mutation error instead.
func (c *reservationCommandsImpl) syncRoomStatus(ctx context.Context, gw shared.RoomGateway, roomID int64, status string) error {
	err := gw.UpdateStatus(ctx, roomID, status)
	if err == nil {
		return nil
	}
	if c.strictRoomSync {
		return errs.Mark(err, ErrRoomSyncFailed)
	}
	slog.Warn("room status update failed; proceeding without it",
		"room_id", roomID, "status", status, "error", err)
	return nil
}

// composeView re-fetches room and guest with fresh clients for the response
// projection. Either lookup may fail without failing the mutation.
func (c *reservationCommandsImpl) composeView(ctx context.Context, res *reservation.Reservation) *queries.ReservationView {
	view := queries.NewReservationView(res)

	rooms := c.rooms.Acquire()
	defer rooms.Close()
	if room, err := rooms.GetRoom(ctx, res.RoomID()); err != nil {
		slog.Warn("room lookup failed; serving reservation without room projection",
			"reservation_id", res.ID(), "room_id", res.RoomID(), "error", err)
	} else {
		view.Room = queries.RoomViewFromSnapshot(room)
	}

	guests := c.guests.Acquire()
	defer guests.Close()
	if guest, err := guests.GetGuest(ctx, res.GuestID()); err != nil {
		slog.Warn("guest lookup failed; serving reservation without guest projection",
			"reservation_id", res.ID(), "guest_id", res.GuestID(), "error", err)
	} else {
		view.Guest = queries.GuestViewFromSnapshot(guest)
	}

	return view
}
