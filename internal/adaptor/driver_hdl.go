package adaptor

import (
	"encoding/json"
	"net/http"

	"limo-booking/internal/dto/request"
	"limo-booking/internal/usecase"
	"limo-booking/pkg/utils"

	"go.uber.org/zap"
)

type DriverHandler struct {
	driverService  usecase.DriverService
	bookingService usecase.BookingService
	log            *zap.Logger
}

func NewDriverHandler(driverService usecase.DriverService, bookingService usecase.BookingService, log *zap.Logger) *DriverHandler {
	return &DriverHandler{
		driverService:  driverService,
		bookingService: bookingService,
		log:            log.With(zap.String("handler", "driver")),
	}
}

// GetAssignedBookings handles GET /api/driver/bookings (driver only)
func (h *DriverHandler) GetAssignedBookings(w http.ResponseWriter, r *http.Request) {
	driverID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	page := paginationFromQuery(r)

	bookings, err := h.bookingService.GetDriverBookings(r.Context(), driverID, page)
	if err != nil {
		handleServiceError(h.log, w, err, "get assigned bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// UpdateAvailability handles PUT /api/driver/availability (driver only)
func (h *DriverHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	driverID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	driver, err := h.driverService.UpdateAvailability(r.Context(), driverID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update availability")
		return
	}

	utils.ResponseSuccess(w, "success", driver)
}

// GetEarnings handles GET /api/driver/earnings (driver only)
func (h *DriverHandler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	driverID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	earnings, err := h.driverService.GetEarnings(r.Context(), driverID)
	if err != nil {
		handleServiceError(h.log, w, err, "get earnings")
		return
	}

	utils.ResponseSuccess(w, "success", earnings)
}

// ==================== ADMIN METHODS ====================

// ListDrivers handles GET /api/admin/drivers (admin only)
func (h *DriverHandler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.driverService.ListDrivers(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list drivers")
		return
	}

	utils.ResponseSuccess(w, "success", drivers)
}
