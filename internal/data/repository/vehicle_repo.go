package repository

import (
	"context"
	"fmt"

	"limo-booking/internal/data/entity"
	"limo-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	FindAll(ctx context.Context) ([]*entity.Vehicle, error)
	FindByStatus(ctx context.Context, status entity.VehicleStatus) ([]*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type vehicleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVehicleRepository(db database.PgxIface, log *zap.Logger) VehicleRepository {
	return &vehicleRepository{
		db:  db,
		log: log.With(zap.String("repository", "vehicle")),
	}
}

const vehicleColumns = `id, name, make, model, year, capacity, price_per_hour, license_plate, vin, status, image_url, created_at, updated_at`

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := row.Scan(
		&vehicle.ID,
		&vehicle.Name,
		&vehicle.Make,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.Capacity,
		&vehicle.PricePerHour,
		&vehicle.LicensePlate,
		&vehicle.VIN,
		&vehicle.Status,
		&vehicle.ImageURL,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, name, make, model, year, capacity, price_per_hour, license_plate, vin, status, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		vehicle.ID,
		vehicle.Name,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.Capacity,
		vehicle.PricePerHour,
		vehicle.LicensePlate,
		vehicle.VIN,
		vehicle.Status,
		vehicle.ImageURL,
		vehicle.CreatedAt,
		vehicle.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create vehicle",
			zap.Error(err),
			zap.String("name", vehicle.Name),
		)
		return fmt.Errorf("create vehicle %s: %w", vehicle.Name, err)
	}

	return nil
}

func (r *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vehicle by ID",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
		)
		return nil, fmt.Errorf("find vehicle by ID %s: %w", id.String(), err)
	}

	return vehicle, nil
}

func (r *vehicleRepository) FindAll(ctx context.Context) ([]*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find vehicles", zap.Error(err))
		return nil, fmt.Errorf("find vehicles: %w", err)
	}
	defer rows.Close()

	return scanVehicleRows(rows, r.log)
}

func (r *vehicleRepository) FindByStatus(ctx context.Context, status entity.VehicleStatus) ([]*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE status = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		r.log.Error("Failed to find vehicles by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find vehicles by status %s: %w", string(status), err)
	}
	defer rows.Close()

	return scanVehicleRows(rows, r.log)
}

func scanVehicleRows(rows pgx.Rows, log *zap.Logger) ([]*entity.Vehicle, error) {
	var vehicles []*entity.Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			log.Error("Failed to scan vehicle row", zap.Error(err))
			return nil, fmt.Errorf("scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}
	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	query := `
		UPDATE vehicles
		SET name = $2, make = $3, model = $4, year = $5, capacity = $6, price_per_hour = $7,
		    license_plate = $8, vin = $9, status = $10, image_url = $11, updated_at = $12
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		vehicle.ID,
		vehicle.Name,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.Capacity,
		vehicle.PricePerHour,
		vehicle.LicensePlate,
		vehicle.VIN,
		vehicle.Status,
		vehicle.ImageURL,
		vehicle.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update vehicle",
			zap.Error(err),
			zap.String("vehicle_id", vehicle.ID.String()),
		)
		return fmt.Errorf("update vehicle %s: %w", vehicle.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", vehicle.ID.String())
	}

	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM vehicles WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete vehicle",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
		)
		return fmt.Errorf("delete vehicle %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", id.String())
	}

	r.log.Info("Vehicle deleted", zap.String("vehicle_id", id.String()))
	return nil
}
