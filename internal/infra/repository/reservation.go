package repository

import (
	"context"
	"errors"
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReservationRepository owns the reservations table. It serves both the
// write side (commands) and the read side (queries) through narrow
// per-package interfaces.
type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	const query = `
		INSERT INTO reservations (guest_id, room_id, check_in_date, check_out_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		res.GuestID(),
		res.RoomID(),
		res.CheckInDate(),
		res.CheckOutDate(),
		res.Status().String(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	const query = `
		SELECT id, guest_id, room_id, check_in_date, check_out_date, status
		FROM reservations
		WHERE id = $1
	`

	res, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return res, nil
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]*reservation.Reservation, error) {
	const query = `
		SELECT id, guest_id, room_id, check_in_date, check_out_date, status
		FROM reservations
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) FindByGuestID(ctx context.Context, guestID int64) ([]*reservation.Reservation, error) {
	const query = `
		SELECT id, guest_id, room_id, check_in_date, check_out_date, status
		FROM reservations
		WHERE guest_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, guestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by guest", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) FindByRoomID(ctx context.Context, roomID int64) ([]*reservation.Reservation, error) {
	const query = `
		SELECT id, guest_id, room_id, check_in_date, check_out_date, status
		FROM reservations
		WHERE room_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by room", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	const query = `
		UPDATE reservations
		SET guest_id = $2, room_id = $3, check_in_date = $4, check_out_date = $5, status = $6
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		res.ID(),
		res.GuestID(),
		res.RoomID(),
		res.CheckInDate(),
		res.CheckOutDate(),
		res.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM reservations WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReservationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return count, nil
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, guestID, roomID int64
		checkIn, checkOut   time.Time
		status              string
	)
	if err := row.Scan(&id, &guestID, &roomID, &checkIn, &checkOut, &status); err != nil {
		return nil, err
	}
	return reservation.Reconstruct(id, guestID, roomID, checkIn, checkOut, reservation.Status(status)), nil
}

func collectReservations(rows pgx.Rows) ([]*reservation.Reservation, error) {
	result := make([]*reservation.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}
