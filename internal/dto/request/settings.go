package request

type UpdatePricingSettingsRequest struct {
	DistanceFeeEnabled *bool    `json:"distance_fee_enabled,omitempty"`
	DistanceThreshold  *float64 `json:"distance_threshold,omitempty" validate:"omitempty,gte=0"`
	DistanceFee        *float64 `json:"distance_fee,omitempty" validate:"omitempty,gte=0"`
	PerMileFeeEnabled  *bool    `json:"per_mile_fee_enabled,omitempty"`
	PerMileFee         *float64 `json:"per_mile_fee,omitempty" validate:"omitempty,gte=0"`
	MinFee             *float64 `json:"min_fee,omitempty" validate:"omitempty,gte=0"`
	MaxFee             *float64 `json:"max_fee,omitempty" validate:"omitempty,gte=0"`
	StopPrice          *float64 `json:"stop_price,omitempty" validate:"omitempty,gte=0"`
	CarSeatPrice       *float64 `json:"car_seat_price,omitempty" validate:"omitempty,gte=0"`
	BoosterSeatPrice   *float64 `json:"booster_seat_price,omitempty" validate:"omitempty,gte=0"`
}
