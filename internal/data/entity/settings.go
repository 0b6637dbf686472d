package entity

// PricingSettings is a singleton configuration row read by the quote
// calculator and mutated only through the admin settings endpoints.
type PricingSettings struct {
	Base
	DistanceFeeEnabled bool    `db:"distance_fee_enabled"`
	DistanceThreshold  float64 `db:"distance_threshold"`
	DistanceFee        float64 `db:"distance_fee"`
	PerMileFeeEnabled  bool    `db:"per_mile_fee_enabled"`
	PerMileFee         float64 `db:"per_mile_fee"`
	MinFee             float64 `db:"min_fee"`
	MaxFee             float64 `db:"max_fee"`
	StopPrice          float64 `db:"stop_price"`
	CarSeatPrice       float64 `db:"car_seat_price"`
	BoosterSeatPrice   float64 `db:"booster_seat_price"`
}

// DefaultPricingSettings seeds the singleton on first read.
func DefaultPricingSettings() PricingSettings {
	return PricingSettings{
		DistanceFeeEnabled: true,
		DistanceThreshold:  40,
		DistanceFee:        20,
		PerMileFeeEnabled:  false,
		PerMileFee:         2,
		MinFee:             0,
		MaxFee:             10000,
		StopPrice:          25,
		CarSeatPrice:       15,
		BoosterSeatPrice:   10,
	}
}
