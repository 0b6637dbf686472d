package request

type UpdateAvailabilityRequest struct {
	Status string `json:"status" validate:"required,oneof=available busy offline"`
}
