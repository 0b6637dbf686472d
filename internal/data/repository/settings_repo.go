package repository

import (
	"context"
	"fmt"
	"time"

	"limo-booking/internal/data/entity"
	"limo-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SettingsRepository interface {
	// Get returns the singleton pricing settings row, seeding it with
	// defaults on first access.
	Get(ctx context.Context) (*entity.PricingSettings, error)
	Update(ctx context.Context, settings *entity.PricingSettings) error
}

type settingsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSettingsRepository(db database.PgxIface, log *zap.Logger) SettingsRepository {
	return &settingsRepository{
		db:  db,
		log: log.With(zap.String("repository", "settings")),
	}
}

const settingsColumns = `id, distance_fee_enabled, distance_threshold, distance_fee, per_mile_fee_enabled, per_mile_fee, min_fee, max_fee, stop_price, car_seat_price, booster_seat_price, created_at, updated_at`

func scanSettings(row pgx.Row) (*entity.PricingSettings, error) {
	var s entity.PricingSettings
	err := row.Scan(
		&s.ID,
		&s.DistanceFeeEnabled,
		&s.DistanceThreshold,
		&s.DistanceFee,
		&s.PerMileFeeEnabled,
		&s.PerMileFee,
		&s.MinFee,
		&s.MaxFee,
		&s.StopPrice,
		&s.CarSeatPrice,
		&s.BoosterSeatPrice,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.PricingSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM pricing_settings ORDER BY created_at LIMIT 1`

	settings, err := scanSettings(r.db.QueryRow(ctx, query))
	if err == pgx.ErrNoRows {
		return r.seed(ctx)
	}
	if err != nil {
		r.log.Error("Failed to load pricing settings", zap.Error(err))
		return nil, fmt.Errorf("load pricing settings: %w", err)
	}

	return settings, nil
}

func (r *settingsRepository) seed(ctx context.Context) (*entity.PricingSettings, error) {
	now := time.Now()
	settings := entity.DefaultPricingSettings()
	settings.ID = uuid.New()
	settings.CreatedAt = now
	settings.UpdatedAt = now

	query := `
		INSERT INTO pricing_settings (id, distance_fee_enabled, distance_threshold, distance_fee, per_mile_fee_enabled, per_mile_fee, min_fee, max_fee, stop_price, car_seat_price, booster_seat_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		settings.ID,
		settings.DistanceFeeEnabled,
		settings.DistanceThreshold,
		settings.DistanceFee,
		settings.PerMileFeeEnabled,
		settings.PerMileFee,
		settings.MinFee,
		settings.MaxFee,
		settings.StopPrice,
		settings.CarSeatPrice,
		settings.BoosterSeatPrice,
		settings.CreatedAt,
		settings.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to seed pricing settings", zap.Error(err))
		return nil, fmt.Errorf("seed pricing settings: %w", err)
	}

	r.log.Info("Pricing settings seeded with defaults", zap.String("id", settings.ID.String()))
	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *entity.PricingSettings) error {
	query := `
		UPDATE pricing_settings
		SET distance_fee_enabled = $2, distance_threshold = $3, distance_fee = $4,
		    per_mile_fee_enabled = $5, per_mile_fee = $6, min_fee = $7, max_fee = $8,
		    stop_price = $9, car_seat_price = $10, booster_seat_price = $11, updated_at = $12
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		settings.ID,
		settings.DistanceFeeEnabled,
		settings.DistanceThreshold,
		settings.DistanceFee,
		settings.PerMileFeeEnabled,
		settings.PerMileFee,
		settings.MinFee,
		settings.MaxFee,
		settings.StopPrice,
		settings.CarSeatPrice,
		settings.BoosterSeatPrice,
		settings.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update pricing settings", zap.Error(err))
		return fmt.Errorf("update pricing settings: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("pricing settings %s not found", settings.ID.String())
	}

	return nil
}
