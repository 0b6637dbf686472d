package wire

import (
	"net/http"

	"limo-booking/internal/adaptor"
	"limo-booking/internal/data/repository"
	"limo-booking/internal/payment"
	"limo-booking/internal/usecase"
	"limo-booking/pkg/middleware"
	"limo-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring assembles services, handlers and routes. The event publisher may be
// nil when the broker is unreachable; notifications are then skipped.
func Wiring(repo *repository.Repository, gateway payment.Gateway, events usecase.EventPublisher, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, gateway, events, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wireVehicle(r, handler.Vehicle, repo, logger)
	wireDriver(r, handler.Driver, repo, logger)
	wireSettings(r, handler.Settings, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
