package adaptor

import (
	"limo-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Booking  *BookingHandler
	Vehicle  *VehicleHandler
	Driver   *DriverHandler
	Settings *SettingsHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Vehicle:  NewVehicleHandler(service.Vehicle, log),
		Driver:   NewDriverHandler(service.Driver, service.Booking, log),
		Settings: NewSettingsHandler(service.Settings, log),
	}
}
