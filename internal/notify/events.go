package notify

import "time"

const (
	ExchangeName = "notifications"
	ExchangeKind = "topic"
	QueueName    = "notifications.dispatch"

	RouteBookingCreated = "booking.created"
	RouteDriverAssigned = "booking.driver_assigned"
)

// BookingCreatedEvent is published after a booking row commits. Consumers send
// the customer confirmation email and SMS from it.
type BookingCreatedEvent struct {
	BookingID      string    `json:"booking_id"`
	OrderID        string    `json:"order_id"`
	CustomerName   string    `json:"customer_name"`
	CustomerEmail  string    `json:"customer_email"`
	CustomerPhone  string    `json:"customer_phone"`
	PickupAddress  string    `json:"pickup_address"`
	DropoffAddress string    `json:"dropoff_address"`
	PickupAt       time.Time `json:"pickup_at"`
	TotalPrice     float64   `json:"total_price"`
}

// DriverAssignedEvent is published when an admin assigns a driver with
// notify=true. It drives one customer email and one driver SMS.
type DriverAssignedEvent struct {
	BookingID     string    `json:"booking_id"`
	OrderID       string    `json:"order_id"`
	CustomerEmail string    `json:"customer_email"`
	DriverName    string    `json:"driver_name"`
	DriverPhone   string    `json:"driver_phone"`
	DriverEmail   string    `json:"driver_email"`
	PickupAddress string    `json:"pickup_address"`
	PickupAt      time.Time `json:"pickup_at"`
}
