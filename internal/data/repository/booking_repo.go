package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"limo-booking/internal/data/entity"
	"limo-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingFilter narrows admin listings; zero values mean "no filter".
type BookingFilter struct {
	Email    string
	DriverID *uuid.UUID
	Date     *time.Time
	Status   entity.BookingStatus
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error)
	List(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context, filter BookingFilter) (int64, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	UpdateGratuity(ctx context.Context, bookingID uuid.UUID, gratuity entity.Gratuity) error
	UpdateAssignments(ctx context.Context, bookingID uuid.UUID, driverID, vehicleID *uuid.UUID) error
	EarningsByDriver(ctx context.Context, driverID uuid.UUID) (float64, int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, order_id, customer_id, guest_name, guest_email, guest_phone,
		vehicle_id, vehicle_name, package_name, pickup_address, dropoff_address, pickup_at,
		duration_hours, passengers, car_seats, booster_seats, distance_miles,
		base_price, total_price, gratuity_type, gratuity_percentage, gratuity_amount,
		status, payment_status, transaction_id, driver_id, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.OrderID,
		&b.CustomerID,
		&b.GuestName,
		&b.GuestEmail,
		&b.GuestPhone,
		&b.VehicleID,
		&b.VehicleName,
		&b.PackageName,
		&b.PickupAddress,
		&b.DropoffAddress,
		&b.PickupAt,
		&b.DurationHours,
		&b.Passengers,
		&b.CarSeats,
		&b.BoosterSeats,
		&b.DistanceMiles,
		&b.BasePrice,
		&b.TotalPrice,
		&b.Gratuity.Type,
		&b.Gratuity.Percentage,
		&b.Gratuity.Amount,
		&b.Status,
		&b.PaymentStatus,
		&b.TransactionID,
		&b.DriverID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.OrderID,
		booking.CustomerID,
		booking.GuestName,
		booking.GuestEmail,
		booking.GuestPhone,
		booking.VehicleID,
		booking.VehicleName,
		booking.PackageName,
		booking.PickupAddress,
		booking.DropoffAddress,
		booking.PickupAt,
		booking.DurationHours,
		booking.Passengers,
		booking.CarSeats,
		booking.BoosterSeats,
		booking.DistanceMiles,
		booking.BasePrice,
		booking.TotalPrice,
		booking.Gratuity.Type,
		booking.Gratuity.Percentage,
		booking.Gratuity.Amount,
		booking.Status,
		booking.PaymentStatus,
		booking.TransactionID,
		booking.DriverID,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
		)
		return fmt.Errorf("create booking %s: %w", booking.OrderID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE order_id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, orderID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by order ID",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return nil, fmt.Errorf("find booking by order ID %s: %w", orderID, err)
	}

	return booking, nil
}

// filterWhere builds the WHERE clause for admin listings.
func filterWhere(filter BookingFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Email != "" {
		args = append(args, filter.Email)
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(guest_email = $%d OR customer_id IN (SELECT id FROM users WHERE email = $%d))", n, n))
	}
	if filter.DriverID != nil {
		args = append(args, *filter.DriverID)
		conditions = append(conditions, fmt.Sprintf("driver_id = $%d", len(args)))
	}
	if filter.Date != nil {
		args = append(args, filter.Date.Format("2006-01-02"))
		conditions = append(conditions, fmt.Sprintf("pickup_at::date = $%d::date", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *bookingRepository) List(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	where, args := filterWhere(filter)
	query := fmt.Sprintf(`SELECT `+bookingColumns+` FROM bookings%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *bookingRepository) Count(ctx context.Context, filter BookingFilter) (int64, error) {
	where, args := filterWhere(filter)
	query := `SELECT COUNT(*) FROM bookings` + where

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE customer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, customerID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by customer ID",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find bookings by customer ID %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *bookingRepository) CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE customer_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, customerID).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by customer ID",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return 0, fmt.Errorf("count bookings by customer ID %s: %w", customerID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) scanRows(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET pickup_address = $2, dropoff_address = $3, pickup_at = $4, duration_hours = $5,
		    passengers = $6, car_seats = $7, booster_seats = $8, distance_miles = $9,
		    base_price = $10, total_price = $11, status = $12, payment_status = $13,
		    driver_id = $14, vehicle_id = $15, updated_at = $16
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.PickupAddress,
		booking.DropoffAddress,
		booking.PickupAt,
		booking.DurationHours,
		booking.Passengers,
		booking.CarSeats,
		booking.BoosterSeats,
		booking.DistanceMiles,
		booking.BasePrice,
		booking.TotalPrice,
		booking.Status,
		booking.PaymentStatus,
		booking.DriverID,
		booking.VehicleID,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) UpdateGratuity(ctx context.Context, bookingID uuid.UUID, gratuity entity.Gratuity) error {
	query := `UPDATE bookings SET gratuity_type = $2, gratuity_percentage = $3, gratuity_amount = $4, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, gratuity.Type, gratuity.Percentage, gratuity.Amount)
	if err != nil {
		r.log.Error("Failed to update booking gratuity",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("update booking %s gratuity: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

// UpdateAssignments overwrites only the supplied references; a nil id leaves
// the stored value untouched.
func (r *bookingRepository) UpdateAssignments(ctx context.Context, bookingID uuid.UUID, driverID, vehicleID *uuid.UUID) error {
	query := `
		UPDATE bookings
		SET driver_id = COALESCE($2, driver_id), vehicle_id = COALESCE($3, vehicle_id), updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, bookingID, driverID, vehicleID)
	if err != nil {
		r.log.Error("Failed to update booking assignments",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("update booking %s assignments: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) EarningsByDriver(ctx context.Context, driverID uuid.UUID) (float64, int64, error) {
	query := `
		SELECT COALESCE(SUM(total_price + gratuity_amount), 0), COUNT(*)
		FROM bookings
		WHERE driver_id = $1 AND status = 'completed'
	`

	var total float64
	var rides int64
	if err := r.db.QueryRow(ctx, query, driverID).Scan(&total, &rides); err != nil {
		r.log.Error("Failed to sum driver earnings",
			zap.Error(err),
			zap.String("driver_id", driverID.String()),
		)
		return 0, 0, fmt.Errorf("sum driver %s earnings: %w", driverID.String(), err)
	}

	return total, rides, nil
}
