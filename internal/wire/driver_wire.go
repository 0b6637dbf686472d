package wire

import (
	"limo-booking/internal/adaptor"
	"limo-booking/internal/data/repository"
	"limo-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDriver(
	r chi.Router,
	driverHandler *adaptor.DriverHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== DRIVER ROUTES ====================
	r.Route("/api/driver", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole("driver", log))

		r.Get("/bookings", driverHandler.GetAssignedBookings)
		r.Put("/availability", driverHandler.UpdateAvailability)
		r.Get("/earnings", driverHandler.GetEarnings)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/drivers", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole("admin", log))

		r.Get("/", driverHandler.ListDrivers)
	})
}
