package entity

type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
	VehicleStatusInactive    VehicleStatus = "inactive"
)

type Vehicle struct {
	Base
	Name         string        `db:"name"`
	Make         string        `db:"make"`
	Model        string        `db:"model"`
	Year         int           `db:"year"`
	Capacity     int           `db:"capacity"`
	PricePerHour float64       `db:"price_per_hour"`
	LicensePlate string        `db:"license_plate"`
	VIN          string        `db:"vin"`
	Status       VehicleStatus `db:"status"`
	ImageURL     *string       `db:"image_url"`
}
