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

type VehicleService interface {
	CreateVehicle(ctx context.Context, req *request.CreateVehicleRequest) (*response.VehicleResponse, error)
	GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleResponse, error)
	ListVehicles(ctx context.Context, status string) ([]response.VehicleResponse, error)
	UpdateVehicle(ctx context.Context, vehicleID string, req *request.UpdateVehicleRequest) (*response.VehicleResponse, error)
	DeleteVehicle(ctx context.Context, vehicleID string) error
}

type vehicleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVehicleService(repo *repository.Repository, log *zap.Logger) VehicleService {
	return &vehicleService{
		repo: repo,
		log:  log.With(zap.String("service", "vehicle")),
	}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, req *request.CreateVehicleRequest) (*response.VehicleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	status := entity.VehicleStatusActive
	if req.Status != "" {
		status = entity.VehicleStatus(req.Status)
	}

	vehicle := &entity.Vehicle{
		Base:         entity.NewBase(),
		Name:         req.Name,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Capacity:     req.Capacity,
		PricePerHour: req.PricePerHour,
		LicensePlate: req.LicensePlate,
		VIN:          req.VIN,
		Status:       status,
		ImageURL:     req.ImageURL,
	}

	if err := s.repo.Vehicle.Create(ctx, vehicle); err != nil {
		s.log.Error("Failed to create vehicle", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create vehicle: %w", err)
	}

	s.log.Info("Vehicle created",
		zap.String("vehicle_id", vehicle.ID.String()),
		zap.String("name", vehicle.Name),
	)

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleResponse, error) {
	vehicle, err := s.findVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) ListVehicles(ctx context.Context, status string) ([]response.VehicleResponse, error) {
	var vehicles []*entity.Vehicle
	var err error

	if status != "" {
		vehicles, err = s.repo.Vehicle.FindByStatus(ctx, entity.VehicleStatus(status))
	} else {
		vehicles, err = s.repo.Vehicle.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}

	items := make([]response.VehicleResponse, len(vehicles))
	for i, vehicle := range vehicles {
		items[i] = response.VehicleToResponse(vehicle)
	}
	return items, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicleID string, req *request.UpdateVehicleRequest) (*response.VehicleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vehicle, err := s.findVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		vehicle.Name = *req.Name
	}
	if req.Make != nil {
		vehicle.Make = *req.Make
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Capacity != nil {
		vehicle.Capacity = *req.Capacity
	}
	if req.PricePerHour != nil {
		vehicle.PricePerHour = *req.PricePerHour
	}
	if req.LicensePlate != nil {
		vehicle.LicensePlate = *req.LicensePlate
	}
	if req.VIN != nil {
		vehicle.VIN = *req.VIN
	}
	if req.Status != nil {
		vehicle.Status = entity.VehicleStatus(*req.Status)
	}
	if req.ImageURL != nil {
		vehicle.ImageURL = req.ImageURL
	}

	if err := s.repo.Vehicle.Update(ctx, vehicle); err != nil {
		s.log.Error("Failed to update vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return nil, fmt.Errorf("update vehicle: %w", err)
	}

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, vehicleID string) error {
	vehicle, err := s.findVehicle(ctx, vehicleID)
	if err != nil {
		return err
	}

	if err := s.repo.Vehicle.Delete(ctx, vehicle.ID); err != nil {
		s.log.Error("Failed to delete vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return fmt.Errorf("delete vehicle: %w", err)
	}

	s.log.Info("Vehicle deleted", zap.String("vehicle_id", vehicleID))
	return nil
}

func (s *vehicleService) findVehicle(ctx context.Context, vehicleID string) (*entity.Vehicle, error) {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, NewValidationError("invalid vehicle ID format %s", vehicleID)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, &NotFoundError{Resource: "vehicle", ID: vehicleID}
	}

	return vehicle, nil
}
