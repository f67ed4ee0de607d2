package queries

import (
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

// Read models (DTO for read side). Room and Guest are ephemeral projections
// composed from live remote lookups; they are never persisted and stay nil
// when the lookup fails or the query skips remote composition.
type ReservationView struct {
	ID           int64      `json:"id"`
	GuestID      int64      `json:"guestId"`
	RoomID       int64      `json:"roomId"`
	CheckInDate  time.Time  `json:"checkInDate"`
	CheckOutDate time.Time  `json:"checkOutDate"`
	Status       string     `json:"status"`
	Room         *RoomView  `json:"room,omitempty"`
	Guest        *GuestView `json:"guest,omitempty"`
}

type RoomView struct {
	ID            int64   `json:"id"`
	RoomNumber    string  `json:"roomNumber"`
	RoomType      string  `json:"roomType"`
	PricePerNight float64 `json:"pricePerNight"`
	Status        string  `json:"status"`
}

type GuestView struct {
	ID       int64   `json:"id"`
	FullName *string `json:"fullName,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

func NewReservationView(res *reservation.Reservation) *ReservationView {
	return &ReservationView{
		ID:           res.ID(),
		GuestID:      res.GuestID(),
		RoomID:       res.RoomID(),
		CheckInDate:  res.CheckInDate(),
		CheckOutDate: res.CheckOutDate(),
		Status:       res.Status().String(),
	}
}

func RoomViewFromSnapshot(snap *shared.RoomSnapshot) *RoomView {
	if snap == nil {
		return nil
	}
	var view RoomView
	_ = copier.Copy(&view, snap)
	return &view
}

func GuestViewFromSnapshot(snap *shared.GuestSnapshot) *GuestView {
	if snap == nil {
		return nil
	}
	var view GuestView
	_ = copier.Copy(&view, snap)
	return &view
}
