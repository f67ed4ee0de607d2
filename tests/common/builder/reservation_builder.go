//go:build unit || e2e

package builder

import (
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/usecase/commands"
	"reservation-service/internal/usecase/queries"
	"reservation-service/internal/usecase/shared"
)

type ReservationBuilder struct {
	ID           int64
	GuestID      int64
	RoomID       int64
	CheckInDate  time.Time
	CheckOutDate time.Time
	Status       reservation.Status
}

func NewReservationBuilder() *ReservationBuilder {
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:           1,
		GuestID:      10,
		RoomID:       100,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDate(0, 0, 3),
		Status:       reservation.StatusConfirmed,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.Reconstruct(b.ID, b.GuestID, b.RoomID, b.CheckInDate, b.CheckOutDate, b.Status)
}

func (b *ReservationBuilder) BuildCreateInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		GuestID:      b.GuestID,
		RoomID:       b.RoomID,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		Status:       b.Status,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           b.ID,
		GuestID:      b.GuestID,
		RoomID:       b.RoomID,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		Status:       b.Status.String(),
	}
}

func (b *ReservationBuilder) BuildRoomSnapshot(status string) *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:            b.RoomID,
		RoomNumber:    "101",
		RoomType:      "double",
		PricePerNight: 150,
		Status:        status,
	}
}

func (b *ReservationBuilder) BuildGuestSnapshot() *shared.GuestSnapshot {
	fullName := "Alice Smith"
	email := "alice@example.com"
	return &shared.GuestSnapshot{
		ID:       b.GuestID,
		FullName: &fullName,
		Email:    &email,
	}
}
