package wire

import (
	"limo-booking/internal/adaptor"
	"limo-booking/internal/data/repository"
	"limo-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireVehicle(
	r chi.Router,
	vehicleHandler *adaptor.VehicleHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/vehicles - Browse the bookable fleet
	r.Get("/api/vehicles", vehicleHandler.ListActiveVehicles)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/vehicles", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole("admin", log))

		r.Get("/", vehicleHandler.ListVehicles)
		r.Post("/", vehicleHandler.CreateVehicle)
		r.Get("/{id}", vehicleHandler.GetVehicleByID)
		r.Put("/{id}", vehicleHandler.UpdateVehicle)
		r.Delete("/{id}", vehicleHandler.DeleteVehicle)
	})
}
