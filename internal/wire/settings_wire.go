package wire

import (
	"limo-booking/internal/adaptor"
	"limo-booking/internal/data/repository"
	"limo-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSettings(
	r chi.Router,
	settingsHandler *adaptor.SettingsHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/settings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole("admin", log))

		r.Get("/pricing", settingsHandler.GetPricingSettings)
		r.Put("/pricing", settingsHandler.UpdatePricingSettings)
	})
}
