package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"reservation-service/internal/pkg/clock"
	"reservation-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS reservations (
	id BIGSERIAL PRIMARY KEY,
	guest_id BIGINT NOT NULL,
	room_id BIGINT NOT NULL,
	check_in_date DATE NOT NULL,
	check_out_date DATE NOT NULL,
	status TEXT NOT NULL DEFAULT 'confirmed'
)`

var SeedModule = fx.Module("seed",
	fx.Provide(
		clock.NewRealClock,
	),
	fx.Invoke(RegisterSeed),
)

func RegisterSeed(lc fx.Lifecycle, pool *pgxpool.Pool, clk clock.Clock, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return Seed(ctx, pool, clk, logger)
		},
	})
}

// EnsureSchema creates the reservations table when it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return errs.Wrap(err, "failed to ensure reservations table")
	}
	return nil
}

// Seed ensures the reservations table exists and, when it is empty, inserts
// two sample reservations. One-time process bootstrap, not recurring logic.
func Seed(ctx context.Context, pool *pgxpool.Pool, clk clock.Clock, logger *slog.Logger) error {
	if err := EnsureSchema(ctx, pool); err != nil {
		return err
	}

	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&count); err != nil {
		return errs.Wrap(err, "failed to count reservations")
	}
	if count > 0 {
		return nil
	}

	today := clk.Now().UTC().Truncate(24 * time.Hour)
	samples := []struct {
		guestID, roomID   int64
		checkIn, checkOut time.Time
	}{
		{guestID: 1, roomID: 1, checkIn: today, checkOut: today.AddDate(0, 0, 3)},
		{guestID: 2, roomID: 2, checkIn: today.AddDate(0, 0, 1), checkOut: today.AddDate(0, 0, 5)},
	}

	const insert = `
		INSERT INTO reservations (guest_id, room_id, check_in_date, check_out_date, status)
		VALUES ($1, $2, $3, $4, 'confirmed')
	`
	for _, s := range samples {
		if _, err := pool.Exec(ctx, insert, s.guestID, s.roomID, s.checkIn, s.checkOut); err != nil {
			return errs.Wrap(err, "failed to insert sample reservation")
		}
	}

	logger.Info("sample reservations seeded", "count", len(samples))
	return nil
}
