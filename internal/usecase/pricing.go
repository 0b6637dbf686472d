package usecase

import (
	"limo-booking/internal/data/entity"
	"limo-booking/internal/dto/request"
	"limo-booking/pkg/utils"
)

// QuoteInput is everything the calculator needs besides the pricing settings.
// BasePrice is a package's fixed price or vehicle hourly rate times hours.
type QuoteInput struct {
	BasePrice     float64
	Stops         []request.StopInput
	CarSeats      int
	BoosterSeats  int
	DistanceMiles float64
}

// ComputeTotal produces the quoted total. Pure function of its inputs: the
// settings singleton is passed in explicitly, never read from ambient state.
//
// The flat distance fee and the per-mile fee are layered: when both are
// enabled and the distance crosses the threshold, both are added. Gratuity is
// not part of the total; it is computed after clamping and never clamped.
func ComputeTotal(in QuoteInput, settings *entity.PricingSettings) float64 {
	total := in.BasePrice

	for _, stop := range in.Stops {
		if stop.Price > 0 {
			total += stop.Price
		} else {
			total += settings.StopPrice
		}
	}

	total += float64(in.CarSeats) * settings.CarSeatPrice
	total += float64(in.BoosterSeats) * settings.BoosterSeatPrice

	if settings.DistanceFeeEnabled && in.DistanceMiles > settings.DistanceThreshold {
		total += settings.DistanceFee
	}
	if settings.PerMileFeeEnabled {
		total += settings.PerMileFee * in.DistanceMiles
	}

	if total < settings.MinFee {
		total = settings.MinFee
	}
	if settings.MaxFee > 0 && total > settings.MaxFee {
		total = settings.MaxFee
	}

	return utils.Round2(total)
}

// ComputeGratuity derives the gratuity amount from its type so the stored
// amount is always consistent with the chosen mode.
func ComputeGratuity(gratuityType entity.GratuityType, basePrice, percentage, amount float64) entity.Gratuity {
	switch gratuityType {
	case entity.GratuityPercentage:
		return entity.Gratuity{
			Type:       entity.GratuityPercentage,
			Percentage: percentage,
			Amount:     utils.Round2(basePrice * percentage / 100),
		}
	case entity.GratuityCustom, entity.GratuityCash:
		return entity.Gratuity{
			Type:   gratuityType,
			Amount: utils.Round2(amount),
		}
	default:
		return entity.Gratuity{Type: entity.GratuityNone}
	}
}
