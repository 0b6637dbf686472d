package repository

import (
	"limo-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Vehicle  VehicleRepository
	Booking  BookingRepository
	Stop     StopRepository
	Settings SettingsRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Vehicle:  NewVehicleRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Stop:     NewStopRepository(db, log),
		Settings: NewSettingsRepository(db, log),
	}
}
