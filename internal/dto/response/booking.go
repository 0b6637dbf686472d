package response

import (
	"time"

	"limo-booking/internal/data/entity"
)

type StopResponse struct {
	Location string  `json:"location"`
	Order    int     `json:"order"`
	Price    float64 `json:"price"`
}

type GratuityResponse struct {
	Type       entity.GratuityType `json:"type"`
	Percentage float64             `json:"percentage,omitempty"`
	Amount     float64             `json:"amount"`
}

type BookingResponse struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`

	CustomerID *string `json:"customer_id,omitempty"`
	GuestName  *string `json:"guest_name,omitempty"`
	GuestEmail *string `json:"guest_email,omitempty"`
	GuestPhone *string `json:"guest_phone,omitempty"`

	VehicleID   *string `json:"vehicle_id,omitempty"`
	VehicleName *string `json:"vehicle_name,omitempty"`
	PackageName string  `json:"package_name"`

	PickupAddress  string         `json:"pickup_address"`
	DropoffAddress string         `json:"dropoff_address"`
	PickupAt       time.Time      `json:"pickup_at"`
	DurationHours  *float64       `json:"duration_hours,omitempty"`
	Passengers     int            `json:"passengers"`
	CarSeats       int            `json:"car_seats"`
	BoosterSeats   int            `json:"booster_seats"`
	DistanceMiles  float64        `json:"distance_miles"`
	Stops          []StopResponse `json:"stops"`

	BasePrice  float64          `json:"base_price"`
	TotalPrice float64          `json:"total_price"`
	Gratuity   GratuityResponse `json:"gratuity"`

	Status        entity.BookingStatus `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	TransactionID *string              `json:"transaction_id,omitempty"`
	DriverID      *string              `json:"driver_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type QuoteResponse struct {
	BasePrice  float64 `json:"base_price"`
	TotalPrice float64 `json:"total_price"`
}

// BookingToResponse converts the entity plus its stops to the wire shape.
func BookingToResponse(b *entity.Booking, stops []*entity.Stop) *BookingResponse {
	stopResponses := make([]StopResponse, len(stops))
	for i, stop := range stops {
		stopResponses[i] = StopResponse{
			Location: stop.Location,
			Order:    stop.StopOrder,
			Price:    stop.Price,
		}
	}

	resp := &BookingResponse{
		ID:             b.ID.String(),
		OrderID:        b.OrderID,
		GuestName:      b.GuestName,
		GuestEmail:     b.GuestEmail,
		GuestPhone:     b.GuestPhone,
		VehicleName:    b.VehicleName,
		PackageName:    b.PackageName,
		PickupAddress:  b.PickupAddress,
		DropoffAddress: b.DropoffAddress,
		PickupAt:       b.PickupAt,
		DurationHours:  b.DurationHours,
		Passengers:     b.Passengers,
		CarSeats:       b.CarSeats,
		BoosterSeats:   b.BoosterSeats,
		DistanceMiles:  b.DistanceMiles,
		Stops:          stopResponses,
		BasePrice:      b.BasePrice,
		TotalPrice:     b.TotalPrice,
		Gratuity: GratuityResponse{
			Type:       b.Gratuity.Type,
			Percentage: b.Gratuity.Percentage,
			Amount:     b.Gratuity.Amount,
		},
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		TransactionID: b.TransactionID,
		CreatedAt:     b.CreatedAt,
	}

	if b.CustomerID != nil {
		id := b.CustomerID.String()
		resp.CustomerID = &id
	}
	if b.VehicleID != nil {
		id := b.VehicleID.String()
		resp.VehicleID = &id
	}
	if b.DriverID != nil {
		id := b.DriverID.String()
		resp.DriverID = &id
	}

	return resp
}
