package request

type CreateVehicleRequest struct {
	Name         string  `json:"name" validate:"required"`
	Make         string  `json:"make" validate:"required"`
	Model        string  `json:"model" validate:"required"`
	Year         int     `json:"year" validate:"required,min=1990"`
	Capacity     int     `json:"capacity" validate:"required,min=1"`
	PricePerHour float64 `json:"price_per_hour" validate:"required,gte=0"`
	LicensePlate string  `json:"license_plate" validate:"required"`
	VIN          string  `json:"vin" validate:"required"`
	Status       string  `json:"status" validate:"omitempty,oneof=active maintenance inactive"`
	ImageURL     *string `json:"image_url,omitempty"`
}

type UpdateVehicleRequest struct {
	Name         *string  `json:"name,omitempty"`
	Make         *string  `json:"make,omitempty"`
	Model        *string  `json:"model,omitempty"`
	Year         *int     `json:"year,omitempty" validate:"omitempty,min=1990"`
	Capacity     *int     `json:"capacity,omitempty" validate:"omitempty,min=1"`
	PricePerHour *float64 `json:"price_per_hour,omitempty" validate:"omitempty,gte=0"`
	LicensePlate *string  `json:"license_plate,omitempty"`
	VIN          *string  `json:"vin,omitempty"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,oneof=active maintenance inactive"`
	ImageURL     *string  `json:"image_url,omitempty"`
}
