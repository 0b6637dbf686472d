package usecase

import (
	"limo-booking/internal/data/repository"
	"limo-booking/internal/payment"
	"limo-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Booking  BookingService
	Vehicle  VehicleService
	Driver   DriverService
	Settings SettingsService
}

func NewService(repo *repository.Repository, gateway payment.Gateway, events EventPublisher, cfg *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, cfg.Session, log),
		Booking:  NewBookingService(repo, gateway, events, log),
		Vehicle:  NewVehicleService(repo, log),
		Driver:   NewDriverService(repo, log),
		Settings: NewSettingsService(repo, log),
	}
}
