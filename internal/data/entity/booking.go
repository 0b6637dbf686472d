package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// IsTerminal reports whether no further status change is allowed.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	// Failed is part of the column's value set but no API path writes it:
	// a declined authorization aborts before the booking row is persisted.
	PaymentStatusFailed PaymentStatus = "failed"
)

type GratuityType string

const (
	GratuityNone       GratuityType = "none"
	GratuityPercentage GratuityType = "percentage"
	GratuityCustom     GratuityType = "custom"
	GratuityCash       GratuityType = "cash"
)

// Gratuity is embedded in Booking. Amount is always derived from Type:
// percentage -> base * pct / 100, custom/cash -> provided value, none -> 0.
type Gratuity struct {
	Type       GratuityType `db:"gratuity_type"`
	Percentage float64      `db:"gratuity_percentage"`
	Amount     float64      `db:"gratuity_amount"`
}

type Stop struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	Location  string    `db:"location"`
	StopOrder int       `db:"stop_order"`
	Price     float64   `db:"price"`
}

// Booking is the central record: one reserved ride. Exactly one customer
// identity form is present: CustomerID for account bookings, or the guest
// name/email/phone triple. Status and PaymentStatus are independent axes.
type Booking struct {
	Base
	OrderID string `db:"order_id"`

	CustomerID *uuid.UUID `db:"customer_id"`
	GuestName  *string    `db:"guest_name"`
	GuestEmail *string    `db:"guest_email"`
	GuestPhone *string    `db:"guest_phone"`

	VehicleID   *uuid.UUID `db:"vehicle_id"`
	VehicleName *string    `db:"vehicle_name"`
	PackageName string     `db:"package_name"`

	PickupAddress  string     `db:"pickup_address"`
	DropoffAddress string     `db:"dropoff_address"`
	PickupAt       time.Time  `db:"pickup_at"`
	DurationHours  *float64   `db:"duration_hours"`
	Passengers     int        `db:"passengers"`
	CarSeats       int        `db:"car_seats"`
	BoosterSeats   int        `db:"booster_seats"`
	DistanceMiles  float64    `db:"distance_miles"`

	BasePrice  float64 `db:"base_price"`
	TotalPrice float64 `db:"total_price"`
	Gratuity

	Status        BookingStatus `db:"status"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	TransactionID *string       `db:"transaction_id"`

	DriverID *uuid.UUID `db:"driver_id"`
}

// ContactEmail returns the address confirmation mail goes to.
func (b *Booking) ContactEmail() string {
	if b.GuestEmail != nil {
		return *b.GuestEmail
	}
	return ""
}

// ContactPhone returns the number confirmation SMS goes to.
func (b *Booking) ContactPhone() string {
	if b.GuestPhone != nil {
		return *b.GuestPhone
	}
	return ""
}
