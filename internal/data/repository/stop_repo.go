package repository

import (
	"context"
	"fmt"

	"limo-booking/internal/data/entity"
	"limo-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StopRepository interface {
	CreateBatch(ctx context.Context, stops []*entity.Stop) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Stop, error)
	DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error
}

type stopRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStopRepository(db database.PgxIface, log *zap.Logger) StopRepository {
	return &stopRepository{
		db:  db,
		log: log.With(zap.String("repository", "stop")),
	}
}

func (r *stopRepository) CreateBatch(ctx context.Context, stops []*entity.Stop) error {
	query := `
		INSERT INTO booking_stops (id, booking_id, location, stop_order, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, stop := range stops {
		_, err := r.db.Exec(ctx, query,
			stop.ID,
			stop.BookingID,
			stop.Location,
			stop.StopOrder,
			stop.Price,
			stop.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create booking stop",
				zap.Error(err),
				zap.String("booking_id", stop.BookingID.String()),
				zap.Int("stop_order", stop.StopOrder),
			)
			return fmt.Errorf("create stop %d for booking %s: %w", stop.StopOrder, stop.BookingID.String(), err)
		}
	}

	return nil
}

func (r *stopRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Stop, error) {
	query := `
		SELECT id, booking_id, location, stop_order, price, created_at
		FROM booking_stops
		WHERE booking_id = $1
		ORDER BY stop_order
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find stops by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find stops for booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var stops []*entity.Stop
	for rows.Next() {
		var stop entity.Stop
		err := rows.Scan(
			&stop.ID,
			&stop.BookingID,
			&stop.Location,
			&stop.StopOrder,
			&stop.Price,
			&stop.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan stop row", zap.Error(err))
			return nil, fmt.Errorf("scan stop row: %w", err)
		}
		stops = append(stops, &stop)
	}

	return stops, nil
}

func (r *stopRepository) DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	query := `DELETE FROM booking_stops WHERE booking_id = $1`

	_, err := r.db.Exec(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to delete stops by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("delete stops for booking %s: %w", bookingID.String(), err)
	}

	return nil
}
