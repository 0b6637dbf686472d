package adaptor

import (
	"encoding/json"
	"net/http"

	"limo-booking/internal/data/entity"
	"limo-booking/internal/dto/request"
	"limo-booking/internal/usecase"
	"limo-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VehicleHandler struct {
	service usecase.VehicleService
	log     *zap.Logger
}

func NewVehicleHandler(service usecase.VehicleService, log *zap.Logger) *VehicleHandler {
	return &VehicleHandler{
		service: service,
		log:     log.With(zap.String("handler", "vehicle")),
	}
}

// ListActiveVehicles handles GET /api/vehicles (public). Only the bookable
// fleet is shown here; the admin listing exposes every status.
func (h *VehicleHandler) ListActiveVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.ListVehicles(r.Context(), string(entity.VehicleStatusActive))
	if err != nil {
		handleServiceError(h.log, w, err, "list vehicles")
		return
	}

	utils.ResponseSuccess(w, "success", vehicles)
}

// ==================== ADMIN METHODS ====================

// ListVehicles handles GET /api/admin/vehicles (admin only)
func (h *VehicleHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.ListVehicles(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		handleServiceError(h.log, w, err, "list vehicles")
		return
	}

	utils.ResponseSuccess(w, "success", vehicles)
}

// GetVehicleByID handles GET /api/admin/vehicles/{id} (admin only)
func (h *VehicleHandler) GetVehicleByID(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")
	if vehicleID == "" {
		utils.ResponseBadRequest(w, "Vehicle ID is required", nil)
		return
	}

	vehicle, err := h.service.GetVehicleByID(r.Context(), vehicleID)
	if err != nil {
		handleServiceError(h.log, w, err, "get vehicle by ID")
		return
	}

	utils.ResponseSuccess(w, "success", vehicle)
}

// CreateVehicle handles POST /api/admin/vehicles (admin only)
func (h *VehicleHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req request.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	vehicle, err := h.service.CreateVehicle(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create vehicle")
		return
	}

	utils.ResponseCreated(w, "success", vehicle)
}

// UpdateVehicle handles PUT /api/admin/vehicles/{id} (admin only)
func (h *VehicleHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")
	if vehicleID == "" {
		utils.ResponseBadRequest(w, "Vehicle ID is required", nil)
		return
	}

	var req request.UpdateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	vehicle, err := h.service.UpdateVehicle(r.Context(), vehicleID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update vehicle")
		return
	}

	utils.ResponseSuccess(w, "success", vehicle)
}

// DeleteVehicle handles DELETE /api/admin/vehicles/{id} (admin only)
func (h *VehicleHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")
	if vehicleID == "" {
		utils.ResponseBadRequest(w, "Vehicle ID is required", nil)
		return
	}

	if err := h.service.DeleteVehicle(r.Context(), vehicleID); err != nil {
		handleServiceError(h.log, w, err, "delete vehicle")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
