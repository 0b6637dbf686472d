package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleDriver   UserRole = "driver"
	RoleAdmin    UserRole = "admin"
)

type DriverStatus string

const (
	DriverAvailable DriverStatus = "available"
	DriverBusy      DriverStatus = "busy"
	DriverOffline   DriverStatus = "offline"
)

// User is an account profile. DriverStatus is set only for driver accounts.
type User struct {
	Base
	Name         string        `db:"name"`
	Email        string        `db:"email"`
	PasswordHash string        `db:"password"`
	Phone        *string       `db:"phone"`
	Role         UserRole      `db:"role"`
	DriverStatus *DriverStatus `db:"driver_status"`
	IsActive     bool          `db:"is_active"`
}
