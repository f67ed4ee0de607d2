package queries

import (
	"context"
	"log/slog"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/infra"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/usecase/shared"
)

var ErrDatabaseOperationFailed = errs.New("database operation failed")

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	FindAll(ctx context.Context) ([]*reservation.Reservation, error)
	FindByGuestID(ctx context.Context, guestID int64) ([]*reservation.Reservation, error)
	FindByRoomID(ctx context.Context, roomID int64) ([]*reservation.Reservation, error)
}

type ReservationQueries interface {
	// GetByID returns (nil, nil) when the reservation does not exist.
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	List(ctx context.Context) ([]*ReservationView, error)
	ListByGuest(ctx context.Context, guestID int64) ([]*ReservationView, error)
	ListByRoom(ctx context.Context, roomID int64) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store  ReservationReadStore
	rooms  shared.RoomGatewayFactory
	guests shared.GuestGatewayFactory
}

func NewReservationQueries(
	store ReservationReadStore,
	rooms shared.RoomGatewayFactory,
	guests shared.GuestGatewayFactory,
) ReservationQueries {
	return &reservationQueriesImpl{
		store:  store,
		rooms:  rooms,
		guests: guests,
	}
}

// GetByID composes the local record with live room and guest lookups. Either
// lookup may fail or come back empty without failing the call: the matching
// projection stays nil and the base reservation is returned regardless.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	res, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view := NewReservationView(res)

	rooms := q.rooms.Acquire()
	defer rooms.Close()
	guests := q.guests.Acquire()
	defer guests.Close()

	if room, roomErr := rooms.GetRoom(ctx, res.RoomID()); roomErr != nil {
		slog.Warn("room lookup failed; serving reservation without room projection",
			"reservation_id", id, "room_id", res.RoomID(), "error", roomErr)
	} else {
		view.Room = RoomViewFromSnapshot(room)
	}

	if guest, guestErr := guests.GetGuest(ctx, res.GuestID()); guestErr != nil {
		slog.Warn("guest lookup failed; serving reservation without guest projection",
			"reservation_id", id, "guest_id", res.GuestID(), "error", guestErr)
	} else {
		view.Guest = GuestViewFromSnapshot(guest)
	}

	return view, nil
}

// List-style queries return local records only. Room/guest projections are
// deliberately left empty here, unlike the single-item read.
func (q *reservationQueriesImpl) List(ctx context.Context) ([]*ReservationView, error) {
	rows, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return toViews(rows), nil
}

func (q *reservationQueriesImpl) ListByGuest(ctx context.Context, guestID int64) ([]*ReservationView, error) {
	rows, err := q.store.FindByGuestID(ctx, guestID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return toViews(rows), nil
}

func (q *reservationQueriesImpl) ListByRoom(ctx context.Context, roomID int64) ([]*ReservationView, error) {
	rows, err := q.store.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return toViews(rows), nil
}

func toViews(rows []*reservation.Reservation) []*ReservationView {
	views := make([]*ReservationView, len(rows))
	for i, res := range rows {
		views[i] = NewReservationView(res)
	}
	return views
}
