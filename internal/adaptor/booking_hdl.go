package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"limo-booking/internal/data/entity"
	"limo-booking/internal/data/repository"
	"limo-booking/internal/dto/request"
	"limo-booking/internal/usecase"
	"limo-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Quote handles POST /api/quote (public)
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req request.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	quote, err := h.service.Quote(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "quote booking")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// CreateBooking handles POST /api/bookings (guest or authenticated)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Identity is optional here: OptionalAuthSession sets it when a valid
	// token was presented, guests book without one.
	var customerID *uuid.UUID
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		customerID = &userID
	}

	booking, err := h.service.CreateBooking(r.Context(), customerID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// LookupBooking handles GET /api/bookings/lookup (public)
func (h *BookingHandler) LookupBooking(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	booking, err := h.service.LookupBooking(r.Context(), query.Get("order_id"), query.Get("email"))
	if err != nil {
		handleServiceError(h.log, w, err, "lookup booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetUserBookings handles GET /api/user/bookings (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	page := paginationFromQuery(r)

	bookings, err := h.service.GetCustomerBookings(r.Context(), userID, page)
	if err != nil {
		handleServiceError(h.log, w, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// AddGratuity handles PUT /api/bookings/{id}/gratuity (protected)
func (h *BookingHandler) AddGratuity(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.AddGratuityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.AddGratuity(r.Context(), userID, bookingID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "add gratuity")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ==================== ADMIN METHODS ====================

// ListBookings handles GET /api/admin/bookings (admin only)
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repository.BookingFilter{
		Email:  query.Get("email"),
		Status: entity.BookingStatus(query.Get("status")),
	}
	if raw := query.Get("driver_id"); raw != "" {
		driverID, err := uuid.Parse(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid driver_id filter", nil)
			return
		}
		filter.DriverID = &driverID
	}
	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid date filter, expected YYYY-MM-DD", nil)
			return
		}
		filter.Date = &date
	}

	page := paginationFromQuery(r)

	bookings, err := h.service.ListBookings(r.Context(), filter, page)
	if err != nil {
		handleServiceError(h.log, w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/admin/bookings/{id} (admin only)
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// UpdateBooking handles PUT /api/admin/bookings/{id} (admin only)
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.UpdateBooking(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ChangeStatus handles PUT /api/admin/bookings/{id}/status (admin only)
func (h *BookingHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.ChangeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.ChangeStatus(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "change booking status")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// AssignDriver handles PUT /api/admin/bookings/{id}/assign-driver (admin only)
func (h *BookingHandler) AssignDriver(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.AssignDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.AssignDriver(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "assign driver")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// UpdateAssignments handles PUT /api/admin/bookings/{id}/update-assignments (admin only)
func (h *BookingHandler) UpdateAssignments(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.UpdateAssignmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.UpdateAssignments(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update assignments")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelBooking handles PUT /api/admin/bookings/{id}/cancel (admin only)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), bookingID); err != nil {
		handleServiceError(h.log, w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}
