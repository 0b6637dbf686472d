package request

type StopInput struct {
	Location string  `json:"location" validate:"required"`
	Order    int     `json:"order" validate:"gte=0"`
	Price    float64 `json:"price" validate:"gte=0"`
}

// CreateBookingRequest covers both checkout shapes. Authenticated requests
// carry identity on the context; guest requests must supply the full
// name/email/phone triple. The orchestrator resolves the payload into exactly
// one of the two forms before anything else happens.
type CreateBookingRequest struct {
	GuestName  *string `json:"guest_name,omitempty"`
	GuestEmail *string `json:"guest_email,omitempty" validate:"omitempty,email"`
	GuestPhone *string `json:"guest_phone,omitempty"`

	VehicleID    *string  `json:"vehicle_id,omitempty" validate:"omitempty,uuid4"`
	VehicleName  *string  `json:"vehicle_name,omitempty"`
	PackageName  *string  `json:"package_name,omitempty"`
	PackagePrice *float64 `json:"package_price,omitempty" validate:"omitempty,gte=0"`

	PickupAddress  string      `json:"pickup_address" validate:"required"`
	DropoffAddress string      `json:"dropoff_address" validate:"required"`
	PickupAt       string      `json:"pickup_at" validate:"required"` // RFC 3339
	DurationHours  *float64    `json:"duration_hours,omitempty" validate:"omitempty,gt=0"`
	Passengers     int         `json:"passengers" validate:"omitempty,min=1"`
	CarSeats       int         `json:"car_seats" validate:"gte=0"`
	BoosterSeats   int         `json:"booster_seats" validate:"gte=0"`
	DistanceMiles  float64     `json:"distance_miles" validate:"gte=0"`
	Stops          []StopInput `json:"stops" validate:"dive"`

	PaymentMethod string `json:"payment_method" validate:"required,oneof=card cash"`
	PaymentToken  string `json:"payment_token,omitempty"`
}

type QuoteRequest struct {
	VehicleID     *string     `json:"vehicle_id,omitempty" validate:"omitempty,uuid4"`
	PackagePrice  *float64    `json:"package_price,omitempty" validate:"omitempty,gte=0"`
	DurationHours *float64    `json:"duration_hours,omitempty" validate:"omitempty,gt=0"`
	CarSeats      int         `json:"car_seats" validate:"gte=0"`
	BoosterSeats  int         `json:"booster_seats" validate:"gte=0"`
	DistanceMiles float64     `json:"distance_miles" validate:"gte=0"`
	Stops         []StopInput `json:"stops" validate:"dive"`
}

type UpdateBookingRequest struct {
	PickupAddress  *string  `json:"pickup_address,omitempty"`
	DropoffAddress *string  `json:"dropoff_address,omitempty"`
	PickupAt       *string  `json:"pickup_at,omitempty"`
	Passengers     *int     `json:"passengers,omitempty" validate:"omitempty,min=1"`
	CarSeats       *int     `json:"car_seats,omitempty" validate:"omitempty,gte=0"`
	BoosterSeats   *int     `json:"booster_seats,omitempty" validate:"omitempty,gte=0"`
	DurationHours  *float64 `json:"duration_hours,omitempty" validate:"omitempty,gt=0"`
}

type AssignDriverRequest struct {
	DriverID string `json:"driver_id" validate:"required,uuid4"`
	Notify   bool   `json:"notify"`
}

type UpdateAssignmentsRequest struct {
	DriverID  *string `json:"driver_id,omitempty" validate:"omitempty,uuid4"`
	VehicleID *string `json:"vehicle_id,omitempty" validate:"omitempty,uuid4"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed in_progress completed cancelled"`
}

type AddGratuityRequest struct {
	Type       string  `json:"type" validate:"required,oneof=none percentage custom cash"`
	Percentage float64 `json:"percentage" validate:"gte=0"`
	Amount     float64 `json:"amount" validate:"gte=0"`
}
