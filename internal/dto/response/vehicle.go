package response

import (
	"time"

	"limo-booking/internal/data/entity"
)

type VehicleResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Make         string               `json:"make"`
	Model        string               `json:"model"`
	Year         int                  `json:"year"`
	Capacity     int                  `json:"capacity"`
	PricePerHour float64              `json:"price_per_hour"`
	LicensePlate string               `json:"license_plate"`
	VIN          string               `json:"vin"`
	Status       entity.VehicleStatus `json:"status"`
	ImageURL     *string              `json:"image_url,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

func VehicleToResponse(v *entity.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID.String(),
		Name:         v.Name,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		Capacity:     v.Capacity,
		PricePerHour: v.PricePerHour,
		LicensePlate: v.LicensePlate,
		VIN:          v.VIN,
		Status:       v.Status,
		ImageURL:     v.ImageURL,
		CreatedAt:    v.CreatedAt,
	}
}
