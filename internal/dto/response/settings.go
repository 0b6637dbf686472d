package response

import "limo-booking/internal/data/entity"

type PricingSettingsResponse struct {
	DistanceFeeEnabled bool    `json:"distance_fee_enabled"`
	DistanceThreshold  float64 `json:"distance_threshold"`
	DistanceFee        float64 `json:"distance_fee"`
	PerMileFeeEnabled  bool    `json:"per_mile_fee_enabled"`
	PerMileFee         float64 `json:"per_mile_fee"`
	MinFee             float64 `json:"min_fee"`
	MaxFee             float64 `json:"max_fee"`
	StopPrice          float64 `json:"stop_price"`
	CarSeatPrice       float64 `json:"car_seat_price"`
	BoosterSeatPrice   float64 `json:"booster_seat_price"`
}

func SettingsToResponse(s *entity.PricingSettings) PricingSettingsResponse {
	return PricingSettingsResponse{
		DistanceFeeEnabled: s.DistanceFeeEnabled,
		DistanceThreshold:  s.DistanceThreshold,
		DistanceFee:        s.DistanceFee,
		PerMileFeeEnabled:  s.PerMileFeeEnabled,
		PerMileFee:         s.PerMileFee,
		MinFee:             s.MinFee,
		MaxFee:             s.MaxFee,
		StopPrice:          s.StopPrice,
		CarSeatPrice:       s.CarSeatPrice,
		BoosterSeatPrice:   s.BoosterSeatPrice,
	}
}
