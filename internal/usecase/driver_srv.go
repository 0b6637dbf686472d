package usecase

import (
	"context"
	"fmt"

	"limo-booking/internal/data/entity"
	"limo-booking/internal/data/repository"
	"limo-booking/internal/dto/request"
	"limo-booking/internal/dto/response"
	"limo-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DriverService interface {
	ListDrivers(ctx context.Context) ([]response.DriverResponse, error)
	UpdateAvailability(ctx context.Context, driverID uuid.UUID, req *request.UpdateAvailabilityRequest) (*response.DriverResponse, error)
	GetEarnings(ctx context.Context, driverID uuid.UUID) (*response.EarningsResponse, error)
}

type driverService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDriverService(repo *repository.Repository, log *zap.Logger) DriverService {
	return &driverService{
		repo: repo,
		log:  log.With(zap.String("service", "driver")),
	}
}

func (s *driverService) ListDrivers(ctx context.Context) ([]response.DriverResponse, error) {
	drivers, err := s.repo.User.FindByRole(ctx, entity.RoleDriver)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}

	items := make([]response.DriverResponse, len(drivers))
	for i, driver := range drivers {
		items[i] = driverToResponse(driver)
	}
	return items, nil
}

func (s *driverService) UpdateAvailability(ctx context.Context, driverID uuid.UUID, req *request.UpdateAvailabilityRequest) (*response.DriverResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	driver, err := s.repo.User.FindByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("find driver: %w", err)
	}
	if driver == nil || driver.Role != entity.RoleDriver {
		return nil, &NotFoundError{Resource: "driver", ID: driverID.String()}
	}

	status := entity.DriverStatus(req.Status)
	if err := s.repo.User.UpdateDriverStatus(ctx, driverID, status); err != nil {
		s.log.Error("Failed to update driver availability",
			zap.Error(err),
			zap.String("driver_id", driverID.String()),
		)
		return nil, fmt.Errorf("update driver availability: %w", err)
	}
	driver.DriverStatus = &status

	s.log.Info("Driver availability updated",
		zap.String("driver_id", driverID.String()),
		zap.String("status", req.Status),
	)

	resp := driverToResponse(driver)
	return &resp, nil
}

func (s *driverService) GetEarnings(ctx context.Context, driverID uuid.UUID) (*response.EarningsResponse, error) {
	total, rides, err := s.repo.Booking.EarningsByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("get driver earnings: %w", err)
	}

	return &response.EarningsResponse{
		TotalEarnings:  utils.Round2(total),
		CompletedRides: rides,
	}, nil
}

func driverToResponse(driver *entity.User) response.DriverResponse {
	status := string(entity.DriverOffline)
	if driver.DriverStatus != nil {
		status = string(*driver.DriverStatus)
	}
	return response.DriverResponse{
		ID:     driver.ID.String(),
		Name:   driver.Name,
		Email:  driver.Email,
		Phone:  driver.Phone,
		Status: status,
	}
}
