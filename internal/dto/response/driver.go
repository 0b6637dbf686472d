package response

type DriverResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  *string `json:"phone,omitempty"`
	Status string  `json:"status"`
}

type EarningsResponse struct {
	TotalEarnings  float64 `json:"total_earnings"`
	CompletedRides int64   `json:"completed_rides"`
}
