package usecase

import (
	"context"
	"fmt"
	"time"

	"limo-booking/internal/data/repository"
	"limo-booking/internal/dto/request"
	"limo-booking/internal/dto/response"
	"limo-booking/pkg/utils"

	"go.uber.org/zap"
)

type SettingsService interface {
	GetPricingSettings(ctx context.Context) (*response.PricingSettingsResponse, error)
	UpdatePricingSettings(ctx context.Context, req *request.UpdatePricingSettingsRequest) (*response.PricingSettingsResponse, error)
}

type settingsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSettingsService(repo *repository.Repository, log *zap.Logger) SettingsService {
	return &settingsService{
		repo: repo,
		log:  log.With(zap.String("service", "settings")),
	}
}

func (s *settingsService) GetPricingSettings(ctx context.Context) (*response.PricingSettingsResponse, error) {
	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get pricing settings: %w", err)
	}

	resp := response.SettingsToResponse(settings)
	return &resp, nil
}

func (s *settingsService) UpdatePricingSettings(ctx context.Context, req *request.UpdatePricingSettingsRequest) (*response.PricingSettingsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get pricing settings: %w", err)
	}

	if req.DistanceFeeEnabled != nil {
		settings.DistanceFeeEnabled = *req.DistanceFeeEnabled
	}
	if req.DistanceThreshold != nil {
		settings.DistanceThreshold = *req.DistanceThreshold
	}
	if req.DistanceFee != nil {
		settings.DistanceFee = *req.DistanceFee
	}
	if req.PerMileFeeEnabled != nil {
		settings.PerMileFeeEnabled = *req.PerMileFeeEnabled
	}
	if req.PerMileFee != nil {
		settings.PerMileFee = *req.PerMileFee
	}
	if req.MinFee != nil {
		settings.MinFee = *req.MinFee
	}
	if req.MaxFee != nil {
		settings.MaxFee = *req.MaxFee
	}
	if req.StopPrice != nil {
		settings.StopPrice = *req.StopPrice
	}
	if req.CarSeatPrice != nil {
		settings.CarSeatPrice = *req.CarSeatPrice
	}
	if req.BoosterSeatPrice != nil {
		settings.BoosterSeatPrice = *req.BoosterSeatPrice
	}
	if settings.MaxFee > 0 && settings.MinFee > settings.MaxFee {
		return nil, NewValidationError("min_fee cannot exceed max_fee")
	}
	settings.UpdatedAt = time.Now()

	if err := s.repo.Settings.Update(ctx, settings); err != nil {
		s.log.Error("Failed to update pricing settings", zap.Error(err))
		return nil, fmt.Errorf("update pricing settings: %w", err)
	}

	s.log.Info("Pricing settings updated")

	resp := response.SettingsToResponse(settings)
	return &resp, nil
}
