package graph

import (
	"errors"
	"fmt"
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/pkg/patch"
	"reservation-service/internal/usecase/commands"
	"reservation-service/internal/usecase/queries"

	"github.com/graphql-go/graphql"
)

type Resolver struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewResolver(cmds commands.ReservationCommands, qrys queries.ReservationQueries) *Resolver {
	return &Resolver{
		commands: cmds,
		queries:  qrys,
	}
}

func (r *Resolver) Reservation(p graphql.ResolveParams) (any, error) {
	id, err := int64Arg(p, "id")
	if err != nil {
		return nil, err
	}

	view, err := r.queries.GetByID(p.Context, id)
	if err != nil {
		return nil, errInternal
	}
	if view == nil {
		return nil, nil
	}
	return view, nil
}

func (r *Resolver) Reservations(p graphql.ResolveParams) (any, error) {
	views, err := r.queries.List(p.Context)
	if err != nil {
		return nil, errInternal
	}
	return views, nil
}

func (r *Resolver) ReservationsByGuest(p graphql.ResolveParams) (any, error) {
	guestID, err := int64Arg(p, "guestId")
	if err != nil {
		return nil, err
	}

	views, err := r.queries.ListByGuest(p.Context, guestID)
	if err != nil {
		return nil, errInternal
	}
	return views, nil
}

func (r *Resolver) ReservationsByRoom(p graphql.ResolveParams) (any, error) {
	roomID, err := int64Arg(p, "roomId")
	if err != nil {
		return nil, err
	}

	views, err := r.queries.ListByRoom(p.Context, roomID)
	if err != nil {
		return nil, errInternal
	}
	return views, nil
}

func (r *Resolver) CreateReservation(p graphql.ResolveParams) (any, error) {
	guestID, err := int64Arg(p, "guestId")
	if err != nil {
		return nil, err
	}
	roomID, err := int64Arg(p, "roomId")
	if err != nil {
		return nil, err
	}
	checkIn, err := dateArg(p, "checkInDate")
	if err != nil {
		return nil, err
	}
	checkOut, err := dateArg(p, "checkOutDate")
	if err != nil {
		return nil, err
	}

	status := reservation.Status(patch.Coalesce(stringArgPtr(p, "status"), reservation.StatusConfirmed.String()))

	view, err := r.commands.Create(p.Context, commands.CreateReservationInput{
		GuestID:      guestID,
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       status,
	})
	if err != nil {
		return nil, mutationError(err, roomID)
	}
	return view, nil
}

func (r *Resolver) UpdateReservation(p graphql.ResolveParams) (any, error) {
	id, err := int64Arg(p, "id")
	if err != nil {
		return nil, err
	}

	var upd reservation.Patch
	if v := int64ArgPtr(p, "guestId"); v != nil {
		upd.GuestID = v
	}
	if v := int64ArgPtr(p, "roomId"); v != nil {
		upd.RoomID = v
	}
	if v := dateArgPtr(p, "checkInDate"); v != nil {
		upd.CheckInDate = v
	}
	if v := dateArgPtr(p, "checkOutDate"); v != nil {
		upd.CheckOutDate = v
	}
	if v := stringArgPtr(p, "status"); v != nil {
		s := reservation.Status(*v)
		upd.Status = &s
	}

	view, err := r.commands.Update(p.Context, id, upd)
	if err != nil {
		roomID := id
		if upd.RoomID != nil {
			roomID = *upd.RoomID
		}
		return nil, mutationError(err, roomID)
	}
	if view == nil {
		return nil, nil
	}
	return view, nil
}

func (r *Resolver) DeleteReservation(p graphql.ResolveParams) (any, error) {
	id, err := int64Arg(p, "id")
	if err != nil {
		return nil, err
	}

	deleted, err := r.commands.Delete(p.Context, id)
	if err != nil {
		return nil, mutationError(err, id)
	}
	return deleted, nil
}

var errInternal = errors.New("internal server error")

// mutationError translates orchestration errors into client-facing messages.
// The room-unavailable wording matches what API consumers already parse.
func mutationError(err error, roomID int64) error {
	switch {
	case errors.Is(err, commands.ErrRoomNotAvailable):
		return fmt.Errorf("Room %d is not available", roomID)
	case errors.Is(err, commands.ErrRoomLookupFailed):
		return errors.New("room service is unavailable")
	case errors.Is(err, commands.ErrRoomSyncFailed):
		return errors.New("room status update failed")
	default:
		return errInternal
	}
}

func int64Arg(p graphql.ResolveParams, name string) (int64, error) {
	v, ok := p.Args[name].(int)
	if !ok {
		return 0, fmt.Errorf("argument %q must be an integer", name)
	}
	return int64(v), nil
}

func int64ArgPtr(p graphql.ResolveParams, name string) *int64 {
	v, ok := p.Args[name].(int)
	if !ok {
		return nil
	}
	id := int64(v)
	return &id
}

func dateArg(p graphql.ResolveParams, name string) (time.Time, error) {
	v, ok := p.Args[name].(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("argument %q must be a YYYY-MM-DD date", name)
	}
	return v, nil
}

func dateArgPtr(p graphql.ResolveParams, name string) *time.Time {
	v, ok := p.Args[name].(time.Time)
	if !ok {
		return nil
	}
	return &v
}

func stringArgPtr(p graphql.ResolveParams, name string) *string {
	v, ok := p.Args[name].(string)
	if !ok {
		return nil
	}
	return &v
}
