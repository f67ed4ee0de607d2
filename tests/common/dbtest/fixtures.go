//go:build e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ResetDB wipes the reservations table and restarts the id sequence, so each
// subtest sees deterministic ids.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), "TRUNCATE reservations RESTART IDENTITY")
	return err
}

func CreateTestReservation(t *testing.T, pool *pgxpool.Pool, guestID, roomID int64, checkIn, checkOut time.Time, status string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO reservations (guest_id, room_id, check_in_date, check_out_date, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		guestID, roomID, checkIn, checkOut, status).Scan(&id)
	require.NoError(t, err, "failed to insert test reservation")

	return id
}
