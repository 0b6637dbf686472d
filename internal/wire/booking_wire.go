package wire

import (
	"limo-booking/internal/adaptor"
	"limo-booking/internal/data/repository"
	"limo-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/quote - Price a ride without creating anything
	r.Post("/api/quote", bookingHandler.Quote)

	// GET /api/bookings/lookup - Guest lookup by order_id + contact email
	r.Get("/api/bookings/lookup", bookingHandler.LookupBooking)

	// POST /api/bookings - Guest checkout works without a token; a valid
	// token attaches the booking to the account instead.
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuthSession(repo.Session, repo.User, log))

		r.Post("/api/bookings", bookingHandler.CreateBooking)
	})

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/user/bookings - View booking history (user's own bookings)
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)

		// PUT /api/bookings/{id}/gratuity - Tip after a completed ride
		r.Put("/api/bookings/{id}/gratuity", bookingHandler.AddGratuity)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole("admin", log))

		r.Get("/", bookingHandler.ListBookings)
		r.Get("/{id}", bookingHandler.GetBookingByID)
		r.Put("/{id}", bookingHandler.UpdateBooking)
		r.Put("/{id}/status", bookingHandler.ChangeStatus)
		r.Put("/{id}/assign-driver", bookingHandler.AssignDriver)
		r.Put("/{id}/update-assignments", bookingHandler.UpdateAssignments)
		r.Put("/{id}/cancel", bookingHandler.CancelBooking)
	})
}
