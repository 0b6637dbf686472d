package adaptor

import (
	"encoding/json"
	"net/http"

	"limo-booking/internal/dto/request"
	"limo-booking/internal/usecase"
	"limo-booking/pkg/utils"

	"go.uber.org/zap"
)

type SettingsHandler struct {
	service usecase.SettingsService
	log     *zap.Logger
}

func NewSettingsHandler(service usecase.SettingsService, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		log:     log.With(zap.String("handler", "settings")),
	}
}

// GetPricingSettings handles GET /api/admin/settings/pricing (admin only)
func (h *SettingsHandler) GetPricingSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetPricingSettings(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get pricing settings")
		return
	}

	utils.ResponseSuccess(w, "success", settings)
}

// UpdatePricingSettings handles PUT /api/admin/settings/pricing (admin only)
func (h *SettingsHandler) UpdatePricingSettings(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePricingSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	settings, err := h.service.UpdatePricingSettings(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update pricing settings")
		return
	}

	utils.ResponseSuccess(w, "success", settings)
}
