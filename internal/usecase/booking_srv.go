package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"limo-booking/internal/data/entity"
	"limo-booking/internal/data/repository"
	"limo-booking/internal/dto/request"
	"limo-booking/internal/dto/response"
	"limo-booking/internal/notify"
	"limo-booking/internal/payment"
	"limo-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventPublisher emits notification events after a write commits. Publish
// failures never fail the operation that produced the event.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

type BookingService interface {
	Quote(ctx context.Context, req *request.QuoteRequest) (*response.QuoteResponse, error)
	CreateBooking(ctx context.Context, customerID *uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	LookupBooking(ctx context.Context, orderID, email string) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, filter repository.BookingFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetCustomerBookings(ctx context.Context, customerID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetDriverBookings(ctx context.Context, driverID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	AssignDriver(ctx context.Context, bookingID string, req *request.AssignDriverRequest) (*response.BookingResponse, error)
	UpdateAssignments(ctx context.Context, bookingID string, req *request.UpdateAssignmentsRequest) (*response.BookingResponse, error)
	ChangeStatus(ctx context.Context, bookingID string, req *request.ChangeStatusRequest) (*response.BookingResponse, error)
	AddGratuity(ctx context.Context, customerID uuid.UUID, bookingID string, req *request.AddGratuityRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo    *repository.Repository
	gateway payment.Gateway
	events  EventPublisher
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, gateway payment.Gateway, events EventPublisher, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		gateway: gateway,
		events:  events,
		log:     log.With(zap.String("service", "booking")),
	}
}

// allowedTransitions is the booking state machine. Terminal states have no
// outgoing edges; cancellation is reachable from every non-terminal state.
var allowedTransitions = map[entity.BookingStatus][]entity.BookingStatus{
	entity.BookingStatusPending:    {entity.BookingStatusConfirmed, entity.BookingStatusCancelled},
	entity.BookingStatusConfirmed:  {entity.BookingStatusInProgress, entity.BookingStatusCancelled},
	entity.BookingStatusInProgress: {entity.BookingStatusCompleted, entity.BookingStatusCancelled},
}

// canTransition allows identity transitions on non-terminal states as
// harmless no-ops.
func canTransition(from, to entity.BookingStatus) bool {
	if from == to {
		return !from.IsTerminal()
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *bookingService) Quote(ctx context.Context, req *request.QuoteRequest) (*response.QuoteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	basePrice, _, _, err := s.resolveBasePrice(ctx, req.VehicleID, req.PackagePrice, req.DurationHours)
	if err != nil {
		return nil, err
	}

	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pricing settings: %w", err)
	}

	total := ComputeTotal(QuoteInput{
		BasePrice:     basePrice,
		Stops:         req.Stops,
		CarSeats:      req.CarSeats,
		BoosterSeats:  req.BoosterSeats,
		DistanceMiles: req.DistanceMiles,
	}, settings)

	return &response.QuoteResponse{BasePrice: basePrice, TotalPrice: total}, nil
}

// resolveBasePrice turns the vehicle-or-package selection into a base amount.
// Returns the vehicle reference and name when an hourly vehicle was chosen.
func (s *bookingService) resolveBasePrice(ctx context.Context, vehicleID *string, packagePrice, durationHours *float64) (float64, *uuid.UUID, *string, error) {
	if vehicleID != nil {
		id, err := uuid.Parse(*vehicleID)
		if err != nil {
			return 0, nil, nil, NewValidationError("invalid vehicle ID format %s", *vehicleID)
		}

		vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
		if err != nil {
			return 0, nil, nil, fmt.Errorf("find vehicle: %w", err)
		}
		if vehicle == nil {
			return 0, nil, nil, &NotFoundError{Resource: "vehicle", ID: *vehicleID}
		}
		if vehicle.Status != entity.VehicleStatusActive {
			return 0, nil, nil, NewValidationError("vehicle %s is not available", vehicle.Name)
		}
		if durationHours == nil {
			return 0, nil, nil, NewValidationError("duration_hours is required for hourly vehicle bookings")
		}

		base := utils.Round2(vehicle.PricePerHour * *durationHours)
		return base, &vehicle.ID, &vehicle.Name, nil
	}

	if packagePrice != nil {
		return utils.Round2(*packagePrice), nil, nil, nil
	}

	return 0, nil, nil, NewValidationError("a vehicle or package selection is required")
}

func (s *bookingService) CreateBooking(ctx context.Context, customerID *uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, NewValidationError("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Resolve customer identity: account reference, or the full guest triple.
	var customer *entity.User
	if customerID != nil {
		user, err := s.repo.User.FindByID(ctx, *customerID)
		if err != nil {
			return nil, fmt.Errorf("find customer: %w", err)
		}
		if user == nil {
			return nil, &NotFoundError{Resource: "customer", ID: customerID.String()}
		}
		customer = user
	} else {
		if req.GuestName == nil || *req.GuestName == "" ||
			req.GuestEmail == nil || *req.GuestEmail == "" ||
			req.GuestPhone == nil || *req.GuestPhone == "" {
			return nil, NewValidationError("guest bookings require name, email and phone")
		}
	}

	pickupAt, err := time.Parse(time.RFC3339, req.PickupAt)
	if err != nil {
		return nil, NewValidationError("pickup_at must be a valid RFC 3339 timestamp")
	}
	if !pickupAt.After(time.Now()) {
		return nil, NewValidationError("pickup date must be in the future")
	}

	basePrice, vehicleID, vehicleName, err := s.resolveBasePrice(ctx, req.VehicleID, req.PackagePrice, req.DurationHours)
	if err != nil {
		return nil, err
	}
	if vehicleName == nil {
		vehicleName = req.VehicleName
	}

	packageName := "custom ride"
	if req.PackageName != nil && *req.PackageName != "" {
		packageName = *req.PackageName
	}

	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pricing settings: %w", err)
	}

	totalPrice := ComputeTotal(QuoteInput{
		BasePrice:     basePrice,
		Stops:         req.Stops,
		CarSeats:      req.CarSeats,
		BoosterSeats:  req.BoosterSeats,
		DistanceMiles: req.DistanceMiles,
	}, settings)

	// Payment must complete before anything is persisted; a declined card
	// never leaves a booking row behind.
	paymentStatus := entity.PaymentStatusPending
	var transactionID *string
	if req.PaymentMethod == "card" {
		if req.PaymentToken == "" {
			return nil, NewValidationError("payment_token is required for card payments")
		}

		amountCents := int64(math.Round(totalPrice * 100))
		result, err := s.gateway.Authorize(ctx, amountCents, req.PaymentToken)
		if err != nil {
			if errors.Is(err, payment.ErrMissingConfig) {
				s.log.Error("Payment gateway not configured", zap.String("gateway", s.gateway.Name()))
				return nil, &ConfigurationError{Message: "payment gateway is not configured"}
			}
			return nil, fmt.Errorf("authorize payment: %w", err)
		}
		if !result.Success {
			s.log.Warn("Payment declined",
				zap.String("gateway", s.gateway.Name()),
				zap.String("reason", result.Message),
			)
			return nil, &PaymentError{Message: "payment declined: " + result.Message}
		}
		if result.TransactionID == "" {
			// Gateway said yes but gave no transaction id; without it the
			// charge cannot be reconciled, so treat it as a failure.
			s.log.Error("Payment succeeded without transaction ID", zap.String("gateway", s.gateway.Name()))
			return nil, &PaymentError{Message: "payment confirmation was incomplete"}
		}

		paymentStatus = entity.PaymentStatusPaid
		transactionID = &result.TransactionID
	}

	passengers := req.Passengers
	if passengers < 1 {
		passengers = 1
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:        utils.GenerateOrderID(),
		CustomerID:     customerID,
		GuestName:      req.GuestName,
		GuestEmail:     req.GuestEmail,
		GuestPhone:     req.GuestPhone,
		VehicleID:      vehicleID,
		VehicleName:    vehicleName,
		PackageName:    packageName,
		PickupAddress:  req.PickupAddress,
		DropoffAddress: req.DropoffAddress,
		PickupAt:       pickupAt,
		DurationHours:  req.DurationHours,
		Passengers:     passengers,
		CarSeats:       req.CarSeats,
		BoosterSeats:   req.BoosterSeats,
		DistanceMiles:  req.DistanceMiles,
		BasePrice:      basePrice,
		TotalPrice:     totalPrice,
		Gratuity:       entity.Gratuity{Type: entity.GratuityNone},
		Status:         entity.BookingStatusPending,
		PaymentStatus:  paymentStatus,
		TransactionID:  transactionID,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	stops := make([]*entity.Stop, len(req.Stops))
	for i, stop := range req.Stops {
		stops[i] = &entity.Stop{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			BookingID: booking.ID,
			Location:  stop.Location,
			StopOrder: i,
			Price:     stop.Price,
		}
	}

	if len(stops) > 0 {
		if err := s.repo.Stop.CreateBatch(ctx, stops); err != nil {
			// Roll back so a half-written ride never surfaces. Stops first,
			// they reference the booking row.
			if delErr := s.repo.Stop.DeleteByBookingID(ctx, booking.ID); delErr != nil {
				s.log.Error("Failed to roll back booking stops",
					zap.Error(delErr),
					zap.String("booking_id", booking.ID.String()),
				)
			}
			if delErr := s.repo.Booking.Delete(ctx, booking.ID); delErr != nil {
				s.log.Error("Failed to roll back booking after stop insert failure",
					zap.Error(delErr),
					zap.String("booking_id", booking.ID.String()),
				)
			}
			return nil, fmt.Errorf("create booking stops: %w", err)
		}
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.Float64("total_price", totalPrice),
		zap.String("payment_status", string(paymentStatus)),
	)

	// Confirmation dispatch is best-effort after the commit; the response to
	// the customer does not wait on it.
	s.publishBookingCreated(booking, customer)

	return response.BookingToResponse(booking, stops), nil
}

func (s *bookingService) publishBookingCreated(booking *entity.Booking, customer *entity.User) {
	if s.events == nil {
		return
	}

	name, email, phone := contactDetails(booking, customer)
	event := notify.BookingCreatedEvent{
		BookingID:      booking.ID.String(),
		OrderID:        booking.OrderID,
		CustomerName:   name,
		CustomerEmail:  email,
		CustomerPhone:  phone,
		PickupAddress:  booking.PickupAddress,
		DropoffAddress: booking.DropoffAddress,
		PickupAt:       booking.PickupAt,
		TotalPrice:     booking.TotalPrice,
	}

	if err := s.events.Publish(notify.RouteBookingCreated, event); err != nil {
		s.log.Warn("Failed to publish booking created event",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
		)
	}
}

// contactDetails resolves who to notify: guest fields, or the account record.
func contactDetails(booking *entity.Booking, customer *entity.User) (name, email, phone string) {
	if customer != nil {
		name = customer.Name
		email = customer.Email
		if customer.Phone != nil {
			phone = *customer.Phone
		}
		return name, email, phone
	}

	if booking.GuestName != nil {
		name = *booking.GuestName
	}
	return name, booking.ContactEmail(), booking.ContactPhone()
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	stops, _ := s.repo.Stop.FindByBookingID(ctx, booking.ID)
	return response.BookingToResponse(booking, stops), nil
}

// LookupBooking serves customers without a session: the order ID from the
// confirmation message plus the matching contact email retrieves the booking.
// A wrong email reads the same as a missing order ID.
func (s *bookingService) LookupBooking(ctx context.Context, orderID, email string) (*response.BookingResponse, error) {
	if orderID == "" || email == "" {
		return nil, NewValidationError("order_id and email are required")
	}

	booking, err := s.repo.Booking.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("find booking by order ID: %w", err)
	}
	if booking == nil {
		return nil, &NotFoundError{Resource: "booking", ID: orderID}
	}

	contact := booking.ContactEmail()
	if booking.CustomerID != nil {
		customer, err := s.repo.User.FindByID(ctx, *booking.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("find booking customer: %w", err)
		}
		if customer != nil {
			contact = customer.Email
		}
	}
	if contact == "" || !strings.EqualFold(contact, email) {
		return nil, &NotFoundError{Resource: "booking", ID: orderID}
	}

	stops, _ := s.repo.Stop.FindByBookingID(ctx, booking.ID)
	return response.BookingToResponse(booking, stops), nil
}

func (s *bookingService) ListBookings(ctx context.Context, filter repository.BookingFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.List(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return s.paginate(ctx, bookings, page, total), nil
}

func (s *bookingService) GetCustomerBookings(ctx context.Context, customerID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByCustomerID(ctx, customerID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get customer bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("count customer bookings: %w", err)
	}

	return s.paginate(ctx, bookings, page, total), nil
}

func (s *bookingService) GetDriverBookings(ctx context.Context, driverID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	filter := repository.BookingFilter{DriverID: &driverID}

	bookings, err := s.repo.Booking.List(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get driver bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count driver bookings: %w", err)
	}

	return s.paginate(ctx, bookings, page, total), nil
}

func (s *bookingService) paginate(ctx context.Context, bookings []*entity.Booking, page *request.PaginatedRequest, total int64) *response.PaginatedResponse[response.BookingResponse] {
	items := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		stops, _ := s.repo.Stop.FindByBookingID(ctx, booking.ID)
		items[i] = *response.BookingToResponse(booking, stops)
	}
	return response.NewPaginatedResponse(items, page.Page, page.PerPage, total)
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if req.PickupAddress != nil {
		booking.PickupAddress = *req.PickupAddress
	}
	if req.DropoffAddress != nil {
		booking.DropoffAddress = *req.DropoffAddress
	}
	if req.PickupAt != nil {
		pickupAt, err := time.Parse(time.RFC3339, *req.PickupAt)
		if err != nil {
			return nil, NewValidationError("pickup_at must be a valid RFC 3339 timestamp")
		}
		booking.PickupAt = pickupAt
	}
	if req.Passengers != nil {
		booking.Passengers = *req.Passengers
	}
	if req.CarSeats != nil {
		booking.CarSeats = *req.CarSeats
	}
	if req.BoosterSeats != nil {
		booking.BoosterSeats = *req.BoosterSeats
	}
	if req.DurationHours != nil {
		booking.DurationHours = req.DurationHours
	}
	booking.UpdatedAt = time.Now()

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("update booking: %w", err)
	}

	stops, _ := s.repo.Stop.FindByBookingID(ctx, booking.ID)
	return response.BookingToResponse(booking, stops), nil
}

func (s *bookingService) AssignDriver(ctx context.Context, bookingID string, req *request.AssignDriverRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return nil, NewValidationError("invalid driver ID format %s", req.DriverID)
	}

	driver, err := s.repo.User.FindByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("find driver: %w", err)
	}
	if driver == nil || driver.Role != entity.RoleDriver {
		return nil, &NotFoundError{Resource: "driver", ID: req.DriverID}
	}

	// Re-assignment overwrites any previous driver reference.
	if err := s.repo.Booking.UpdateAssignments(ctx, booking.ID, &driverID, nil); err != nil {
		s.log.Error("Failed to assign driver",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("driver_id", req.DriverID),
		)
		return nil, fmt.Errorf("assign driver: %w", err)
	}
	booking.DriverID = &driverID

	s.log.Info("Driver assigned",
		zap.String("booking_id", bookingID),
		zap.String("driver_id", req.DriverID),
		zap.Bool("notify", req.Notify),
	)

	if req.Notify {
		s.publishDriverAssigned(ctx, booking, driver)
	}

	stops, _ := s.repo.Stop.FindByBookingID(ctx, booking.ID)
	return response.BookingToResponse(booking, stops), nil
}

func (s *bookingService) publishDriverAssigned(ctx context.Context, booking *entity.Booking, driver *entity.User) {
	if s.events == nil {
		return
	}

	var customer *entity.User
	if booking.CustomerID != nil {
		customer, _ = s.repo.User.FindByID(ctx, *booking.CustomerID)
	}
	_, customerEmail, _ := contactDetails(booking, customer)

	driverPhone := ""
	if driver.Phone != nil {
		driverPhone = *driver.Phone
	}

	event := notify.DriverAssignedEvent{
		BookingID:     booking.ID.String(),
		OrderID:       booking.OrderID,
		CustomerEmail: customerEmail,
		DriverName:    driver.Name,
		DriverPhone:   driverPhone,
		DriverEmail:   driver.Email,
		PickupAddress: booking.PickupAddress,
		PickupAt:      booking.PickupAt,
	}

	if err := s.events.Publish(notify.RouteDriverAssigned, event); err != nil {
		s.log.Warn("Failed to publish driver assigned event",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
		)
	}
}

func (s *bookingService) UpdateAssignments(ctx context.Context, bookingID string, req *request.UpdateAssignmentsRequest) (*response.BookingResponse, error) {
	if req.DriverID == nil && req.VehicleID == nil {
		return nil, NewValidationError("at least one of driver_id or vehicle_id is required")
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	var driverID, vehicleID *uuid.UUID
	if req.DriverID != nil {
		id, err := uuid.Parse(*req.DriverID)
		if err != nil {
			return nil, NewValidationError("invalid driver ID format %s", *req.DriverID)
		}
		driver, err := s.repo.User.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("find driver: %w", err)
		}
		if driver == nil || driver.Role != entity.RoleDriver {
			return nil, &NotFoundError{Resource: "driver", ID: *req.DriverID}
		}
		driverID = &id
	}
	if req.VehicleID != nil {
		id, err := uuid.Parse(*req.VehicleID)
		if err != nil {
			return nil, NewValidationError("invalid vehicle ID format %s", *req.VehicleID)
		}
		vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("find vehicle: %w", err)
		}
		if vehicle == nil {
			return nil, &NotFoundError{Resource: "vehicle", ID: *req.VehicleID}
		}
		vehicleID = &id
	}

	if err := s.repo.Booking.UpdateAssignments(ctx, booking.ID, driverID, vehicleID); err != nil {
		s.log.Error("Failed to update assignments",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("update assignments: %w", err)
	}

	if driverID != nil {
		booking.DriverID = driverID
	}
	if vehicleID != nil {
		booking.VehicleID = vehicleID
	}

	stops, _ := s.repo.Stop.FindByBookingID(ctx, booking.ID)
	return response.BookingToResponse(booking, stops), nil
}

func (s *bookingService) ChangeStatus(ctx context.Context, bookingID string, req *request.ChangeStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	newStatus := entity.BookingStatus(req.Status)
	if !canTransition(booking.Status, newStatus) {
		return nil, &InvalidTransitionError{From: booking.Status, To: newStatus}
	}

	if booking.Status != newStatus {
		if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, newStatus); err != nil {
			s.log.Error("Failed to change booking status",
				zap.Error(err),
				zap.String("booking_id", bookingID),
				zap.String("status", req.Status),
			)
			return nil, fmt.Errorf("change booking status: %w", err)
		}
		booking.Status = newStatus
	}

	s.log.Info("Booking status changed",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)

	stops, _ := s.repo.Stop.FindByBookingID(ctx, booking.ID)
	return response.BookingToResponse(booking, stops), nil
}

func (s *bookingService) AddGratuity(ctx context.Context, customerID uuid.UUID, bookingID string, req *request.AddGratuityRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.CustomerID == nil || *booking.CustomerID != customerID {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}

	if booking.Status != entity.BookingStatusCompleted {
		return nil, &InvalidStateError{
			Message: fmt.Sprintf("gratuity can only be added to completed bookings, status is %s", booking.Status),
		}
	}

	gratuity := ComputeGratuity(entity.GratuityType(req.Type), booking.TotalPrice, req.Percentage, req.Amount)
	if err := s.repo.Booking.UpdateGratuity(ctx, booking.ID, gratuity); err != nil {
		s.log.Error("Failed to add gratuity",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("add gratuity: %w", err)
	}
	booking.Gratuity = gratuity

	s.log.Info("Gratuity added",
		zap.String("booking_id", bookingID),
		zap.String("type", req.Type),
		zap.Float64("amount", gratuity.Amount),
	)

	stops, _ := s.repo.Stop.FindByBookingID(ctx, booking.ID)
	return response.BookingToResponse(booking, stops), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	// Cancelling twice is a no-op; a completed ride cannot be cancelled.
	if booking.Status == entity.BookingStatusCancelled {
		return nil
	}
	if booking.Status == entity.BookingStatusCompleted {
		return &InvalidTransitionError{From: booking.Status, To: entity.BookingStatusCancelled}
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("order_id", booking.OrderID),
	)

	return nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, NewValidationError("invalid booking ID format %s", bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}

	return booking, nil
}
