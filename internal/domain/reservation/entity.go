package reservation

import (
	"time"
)

// Reservation links a guest and a room over a date range. GuestID and RoomID
// reference the external guest/room services; there is no local referential
// integrity, they are checked against the remote service only at mutation
// time. Dates are calendar dates held at UTC midnight. CheckOutDate before
// CheckInDate is accepted as-is (open product question, not enforced here).
type Reservation struct {
	id           int64
	guestID      int64
	roomID       int64
	checkInDate  time.Time
	checkOutDate time.Time
	status       Status
}

// Patch carries a partial update. Nil fields keep the current value.
type Patch struct {
	GuestID      *int64
	RoomID       *int64
	CheckInDate  *time.Time
	CheckOutDate *time.Time
	Status       *Status
}

func New(guestID, roomID int64, checkIn, checkOut time.Time, status Status) *Reservation {
	if status == "" {
		status = StatusConfirmed
	}
	return &Reservation{
		guestID:      guestID,
		roomID:       roomID,
		checkInDate:  checkIn,
		checkOutDate: checkOut,
		status:       status,
	}
}

// Reconstruct rebuilds an entity from persisted state.
func Reconstruct(id, guestID, roomID int64, checkIn, checkOut time.Time, status Status) *Reservation {
	return &Reservation{
		id:           id,
		guestID:      guestID,
		roomID:       roomID,
		checkInDate:  checkIn,
		checkOutDate: checkOut,
		status:       status,
	}
}

func (r *Reservation) ID() int64               { return r.id }
func (r *Reservation) GuestID() int64          { return r.guestID }
func (r *Reservation) RoomID() int64           { return r.roomID }
func (r *Reservation) CheckInDate() time.Time  { return r.checkInDate }
func (r *Reservation) CheckOutDate() time.Time { return r.checkOutDate }
func (r *Reservation) Status() Status          { return r.status }

// Apply overwrites each field present in the patch, field by field. No
// transition or date-order validation takes place.
func (r *Reservation) Apply(p Patch) {
	if p.GuestID != nil {
		r.guestID = *p.GuestID
	}
	if p.RoomID != nil {
		r.roomID = *p.RoomID
	}
	if p.CheckInDate != nil {
		r.checkInDate = *p.CheckInDate
	}
	if p.CheckOutDate != nil {
		r.checkOutDate = *p.CheckOutDate
	}
	if p.Status != nil {
		r.status = *p.Status
	}
}

// RoomChange reports whether the patch moves the reservation to a different
// room. Re-submitting the current room does not count as a change.
func (p Patch) RoomChange(current int64) bool {
	return p.RoomID != nil && *p.RoomID != current
}

// ChecksOut reports whether the patch sets the checked-out status.
func (p Patch) ChecksOut() bool {
	return p.Status != nil && *p.Status == StatusCheckedOut
}
