package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"limo-booking/internal/data/entity"
	"limo-booking/internal/data/repository"
	"limo-booking/internal/dto/request"
	"limo-booking/internal/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// --- Mock repositories ---

type mockBookingRepo struct {
	createFn            func(ctx context.Context, booking *entity.Booking) error
	findByIDFn          func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	updateStatusFn      func(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	updateGratuityFn    func(ctx context.Context, bookingID uuid.UUID, gratuity entity.Gratuity) error
	updateAssignmentsFn func(ctx context.Context, bookingID uuid.UUID, driverID, vehicleID *uuid.UUID) error
	deleteFn            func(ctx context.Context, id uuid.UUID) error
	findByOrderIDFn     func(ctx context.Context, orderID string) (*entity.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	if m.createFn != nil {
		return m.createFn(ctx, booking)
	}
	return nil
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}
func (m *mockBookingRepo) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	if m.findByOrderIDFn != nil {
		return m.findByOrderIDFn(ctx, orderID)
	}
	return nil, nil
}
func (m *mockBookingRepo) List(ctx context.Context, filter repository.BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) Count(ctx context.Context, filter repository.BookingFilter) (int64, error) {
	return 0, nil
}
func (m *mockBookingRepo) FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return 0, nil
}
func (m *mockBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	return nil
}
func (m *mockBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, bookingID, status)
	}
	return nil
}
func (m *mockBookingRepo) UpdateGratuity(ctx context.Context, bookingID uuid.UUID, gratuity entity.Gratuity) error {
	if m.updateGratuityFn != nil {
		return m.updateGratuityFn(ctx, bookingID, gratuity)
	}
	return nil
}
func (m *mockBookingRepo) UpdateAssignments(ctx context.Context, bookingID uuid.UUID, driverID, vehicleID *uuid.UUID) error {
	if m.updateAssignmentsFn != nil {
		return m.updateAssignmentsFn(ctx, bookingID, driverID, vehicleID)
	}
	return nil
}
func (m *mockBookingRepo) EarningsByDriver(ctx context.Context, driverID uuid.UUID) (float64, int64, error) {
	return 0, 0, nil
}

type mockStopRepo struct {
	createBatchFn func(ctx context.Context, stops []*entity.Stop) error
}

func (m *mockStopRepo) CreateBatch(ctx context.Context, stops []*entity.Stop) error {
	if m.createBatchFn != nil {
		return m.createBatchFn(ctx, stops)
	}
	return nil
}
func (m *mockStopRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Stop, error) {
	return nil, nil
}
func (m *mockStopRepo) DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	return nil
}

type mockUserRepo struct {
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}
func (m *mockUserRepo) FindByRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error) {
	return nil, nil
}
func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (m *mockUserRepo) UpdateDriverStatus(ctx context.Context, id uuid.UUID, status entity.DriverStatus) error {
	return nil
}

type mockVehicleRepo struct {
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
}

func (m *mockVehicleRepo) Create(ctx context.Context, vehicle *entity.Vehicle) error { return nil }
func (m *mockVehicleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}
func (m *mockVehicleRepo) FindAll(ctx context.Context) ([]*entity.Vehicle, error) { return nil, nil }
func (m *mockVehicleRepo) FindByStatus(ctx context.Context, status entity.VehicleStatus) ([]*entity.Vehicle, error) {
	return nil, nil
}
func (m *mockVehicleRepo) Update(ctx context.Context, vehicle *entity.Vehicle) error { return nil }
func (m *mockVehicleRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

type mockSettingsRepo struct {
	getFn func(ctx context.Context) (*entity.PricingSettings, error)
}

func (m *mockSettingsRepo) Get(ctx context.Context) (*entity.PricingSettings, error) {
	if m.getFn != nil {
		return m.getFn(ctx)
	}
	settings := entity.DefaultPricingSettings()
	return &settings, nil
}
func (m *mockSettingsRepo) Update(ctx context.Context, settings *entity.PricingSettings) error {
	return nil
}

// --- Mock gateway and publisher ---

type mockGateway struct {
	calls       int
	authorizeFn func(ctx context.Context, amountCents int64, token string) (*payment.Result, error)
}

func (m *mockGateway) Name() string { return "mock" }
func (m *mockGateway) Authorize(ctx context.Context, amountCents int64, token string) (*payment.Result, error) {
	m.calls++
	if m.authorizeFn != nil {
		return m.authorizeFn(ctx, amountCents, token)
	}
	return &payment.Result{Success: true, TransactionID: "txn_test"}, nil
}

type mockPublisher struct {
	published []string
}

func (m *mockPublisher) Publish(routingKey string, payload any) error {
	m.published = append(m.published, routingKey)
	return nil
}

// --- Helpers ---

func testRepo() *repository.Repository {
	return &repository.Repository{
		User:     &mockUserRepo{},
		Vehicle:  &mockVehicleRepo{},
		Booking:  &mockBookingRepo{},
		Stop:     &mockStopRepo{},
		Settings: &mockSettingsRepo{},
	}
}

func strPtr(s string) *string { return &s }

func guestBookingRequest() *request.CreateBookingRequest {
	price := 200.0
	return &request.CreateBookingRequest{
		GuestName:      strPtr("Maria Lopez"),
		GuestEmail:     strPtr("maria@example.com"),
		GuestPhone:     strPtr("+12015550123"),
		PackageName:    strPtr("JFK Airport Transfer"),
		PackagePrice:   &price,
		PickupAddress:  "120 Main St, Hoboken NJ",
		DropoffAddress: "JFK Terminal 4",
		PickupAt:       time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		Passengers:     2,
		PaymentMethod:  "card",
		PaymentToken:   "tok_visa",
	}
}

// --- CreateBooking ---

func TestCreateBooking_CardSuccess(t *testing.T) {
	var created *entity.Booking
	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		createFn: func(ctx context.Context, booking *entity.Booking) error {
			created = booking
			return nil
		},
	}
	gateway := &mockGateway{}
	events := &mockPublisher{}

	svc := NewBookingService(repo, gateway, events, zap.NewNop())
	resp, err := svc.CreateBooking(context.Background(), nil, guestBookingRequest())

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.NotNil(t, created)
	assert.Equal(t, entity.BookingStatusPending, created.Status)
	assert.Equal(t, entity.PaymentStatusPaid, created.PaymentStatus)
	assert.Equal(t, "txn_test", *created.TransactionID)
	assert.Equal(t, 200.0, created.TotalPrice)
	assert.Equal(t, 1, gateway.calls)
	assert.Equal(t, []string{"booking.created"}, events.published)
}

func TestCreateBooking_StopsAndSeatsPriced(t *testing.T) {
	var created *entity.Booking
	var stops []*entity.Stop
	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		createFn: func(ctx context.Context, booking *entity.Booking) error {
			created = booking
			return nil
		},
	}
	repo.Stop = &mockStopRepo{
		createBatchFn: func(ctx context.Context, batch []*entity.Stop) error {
			stops = batch
			return nil
		},
	}

	req := guestBookingRequest()
	req.Stops = []request.StopInput{{Location: "Newark Penn Station"}}
	req.CarSeats = 1

	svc := NewBookingService(repo, &mockGateway{}, nil, zap.NewNop())
	_, err := svc.CreateBooking(context.Background(), nil, req)

	assert.NoError(t, err)
	// 200 base + 25 stop + 15 car seat
	assert.Equal(t, 240.0, created.TotalPrice)
	assert.Len(t, stops, 1)
	assert.Equal(t, created.ID, stops[0].BookingID)
	assert.Equal(t, 0, stops[0].StopOrder)
}

func TestCreateBooking_Declined(t *testing.T) {
	repo := testRepo()
	creates := 0
	repo.Booking = &mockBookingRepo{
		createFn: func(ctx context.Context, booking *entity.Booking) error {
			creates++
			return nil
		},
	}
	gateway := &mockGateway{
		authorizeFn: func(ctx context.Context, amountCents int64, token string) (*payment.Result, error) {
			return &payment.Result{Success: false, Message: "card declined"}, nil
		},
	}

	svc := NewBookingService(repo, gateway, nil, zap.NewNop())
	resp, err := svc.CreateBooking(context.Background(), nil, guestBookingRequest())

	assert.Nil(t, resp)
	var paymentErr *PaymentError
	assert.ErrorAs(t, err, &paymentErr)
	assert.Equal(t, 0, creates)
}

func TestCreateBooking_SuccessWithoutTransactionID(t *testing.T) {
	repo := testRepo()
	creates := 0
	repo.Booking = &mockBookingRepo{
		createFn: func(ctx context.Context, booking *entity.Booking) error {
			creates++
			return nil
		},
	}
	gateway := &mockGateway{
		authorizeFn: func(ctx context.Context, amountCents int64, token string) (*payment.Result, error) {
			return &payment.Result{Success: true}, nil
		},
	}

	svc := NewBookingService(repo, gateway, nil, zap.NewNop())
	resp, err := svc.CreateBooking(context.Background(), nil, guestBookingRequest())

	assert.Nil(t, resp)
	var paymentErr *PaymentError
	assert.ErrorAs(t, err, &paymentErr)
	assert.Equal(t, 0, creates)
}

func TestCreateBooking_MissingGuestFields(t *testing.T) {
	gateway := &mockGateway{}

	req := guestBookingRequest()
	req.GuestEmail = nil

	svc := NewBookingService(testRepo(), gateway, nil, zap.NewNop())
	resp, err := svc.CreateBooking(context.Background(), nil, req)

	assert.Nil(t, resp)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 0, gateway.calls)
}

func TestCreateBooking_PickupInThePast(t *testing.T) {
	req := guestBookingRequest()
	req.PickupAt = time.Now().Add(-time.Hour).Format(time.RFC3339)

	svc := NewBookingService(testRepo(), &mockGateway{}, nil, zap.NewNop())
	_, err := svc.CreateBooking(context.Background(), nil, req)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCreateBooking_CashSkipsGateway(t *testing.T) {
	var created *entity.Booking
	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		createFn: func(ctx context.Context, booking *entity.Booking) error {
			created = booking
			return nil
		},
	}
	gateway := &mockGateway{}

	req := guestBookingRequest()
	req.PaymentMethod = "cash"
	req.PaymentToken = ""

	svc := NewBookingService(repo, gateway, nil, zap.NewNop())
	_, err := svc.CreateBooking(context.Background(), nil, req)

	assert.NoError(t, err)
	assert.Equal(t, 0, gateway.calls)
	assert.Equal(t, entity.PaymentStatusPending, created.PaymentStatus)
	assert.Nil(t, created.TransactionID)
}

func TestCreateBooking_GatewayNotConfigured(t *testing.T) {
	gateway := &mockGateway{
		authorizeFn: func(ctx context.Context, amountCents int64, token string) (*payment.Result, error) {
			return nil, payment.ErrMissingConfig
		},
	}

	svc := NewBookingService(testRepo(), gateway, nil, zap.NewNop())
	resp, err := svc.CreateBooking(context.Background(), nil, guestBookingRequest())

	assert.Nil(t, resp)
	var configErr *ConfigurationError
	assert.ErrorAs(t, err, &configErr)
}

func TestCreateBooking_HourlyVehicle(t *testing.T) {
	vehicleID := uuid.New()
	var created *entity.Booking
	repo := testRepo()
	repo.Vehicle = &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
			return &entity.Vehicle{
				Base:         entity.Base{ID: vehicleID},
				Name:         "Lincoln Stretch",
				PricePerHour: 150,
				Status:       entity.VehicleStatusActive,
			}, nil
		},
	}
	repo.Booking = &mockBookingRepo{
		createFn: func(ctx context.Context, booking *entity.Booking) error {
			created = booking
			return nil
		},
	}

	hours := 3.0
	id := vehicleID.String()
	req := guestBookingRequest()
	req.PackagePrice = nil
	req.PackageName = nil
	req.VehicleID = &id
	req.DurationHours = &hours

	svc := NewBookingService(repo, &mockGateway{}, nil, zap.NewNop())
	_, err := svc.CreateBooking(context.Background(), nil, req)

	assert.NoError(t, err)
	assert.Equal(t, 450.0, created.BasePrice)
	assert.Equal(t, "Lincoln Stretch", *created.VehicleName)
	assert.Equal(t, vehicleID, *created.VehicleID)
}

func TestCreateBooking_HourlyVehicleWithoutDuration(t *testing.T) {
	repo := testRepo()
	repo.Vehicle = &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
			return &entity.Vehicle{
				Base:         entity.Base{ID: id},
				PricePerHour: 150,
				Status:       entity.VehicleStatusActive,
			}, nil
		},
	}

	id := uuid.New().String()
	req := guestBookingRequest()
	req.PackagePrice = nil
	req.VehicleID = &id
	req.DurationHours = nil

	svc := NewBookingService(repo, &mockGateway{}, nil, zap.NewNop())
	_, err := svc.CreateBooking(context.Background(), nil, req)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCreateBooking_StopBatchFailureRollsBack(t *testing.T) {
	deleted := 0
	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleted++
			return nil
		},
	}
	repo.Stop = &mockStopRepo{
		createBatchFn: func(ctx context.Context, stops []*entity.Stop) error {
			return errors.New("insert failed")
		},
	}

	req := guestBookingRequest()
	req.Stops = []request.StopInput{{Location: "LGA"}}

	svc := NewBookingService(repo, &mockGateway{}, nil, zap.NewNop())
	resp, err := svc.CreateBooking(context.Background(), nil, req)

	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Equal(t, 1, deleted)
}

// --- Guest lookup ---

func guestBookingOnFile() *entity.Booking {
	email := "amy@example.com"
	return &entity.Booking{
		Base:       entity.Base{ID: uuid.New()},
		OrderID:    "RIDE-20260830-120000-0001",
		GuestEmail: &email,
		Status:     entity.BookingStatusConfirmed,
	}
}

func TestLookupBooking_MatchesContactEmail(t *testing.T) {
	booking := guestBookingOnFile()
	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		findByOrderIDFn: func(ctx context.Context, orderID string) (*entity.Booking, error) {
			assert.Equal(t, booking.OrderID, orderID)
			return booking, nil
		},
	}

	svc := NewBookingService(repo, &mockGateway{}, nil, zap.NewNop())
	resp, err := svc.LookupBooking(context.Background(), booking.OrderID, "AMY@Example.com")

	assert.NoError(t, err)
	assert.Equal(t, booking.OrderID, resp.OrderID)
}

func TestLookupBooking_WrongEmailReadsAsNotFound(t *testing.T) {
	booking := guestBookingOnFile()
	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		findByOrderIDFn: func(ctx context.Context, orderID string) (*entity.Booking, error) {
			return booking, nil
		},
	}

	svc := NewBookingService(repo, &mockGateway{}, nil, zap.NewNop())
	_, err := svc.LookupBooking(context.Background(), booking.OrderID, "mallory@example.com")

	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestLookupBooking_AccountBookingUsesAccountEmail(t *testing.T) {
	customerID := uuid.New()
	booking := guestBookingOnFile()
	booking.GuestEmail = nil
	booking.CustomerID = &customerID

	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		findByOrderIDFn: func(ctx context.Context, orderID string) (*entity.Booking, error) {
			return booking, nil
		},
	}
	repo.User = &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{Base: entity.Base{ID: customerID}, Email: "carl@example.com"}, nil
		},
	}

	svc := NewBookingService(repo, &mockGateway{}, nil, zap.NewNop())
	resp, err := svc.LookupBooking(context.Background(), booking.OrderID, "carl@example.com")

	assert.NoError(t, err)
	assert.Equal(t, booking.OrderID, resp.OrderID)
}

// --- Status transitions ---

func bookingWithStatus(status entity.BookingStatus) *entity.Booking {
	return &entity.Booking{
		Base:    entity.Base{ID: uuid.New()},
		OrderID: "RIDE-20260830-120000-0001",
		Status:  status,
	}
}

func TestChangeStatus_ValidTransition(t *testing.T) {
	booking := bookingWithStatus(entity.BookingStatusPending)
	updates := 0
	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
		updateStatusFn: func(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
			updates++
			assert.Equal(t, entity.BookingStatusConfirmed, status)
			return nil
		},
	}

	svc := NewBookingService(repo, &mockGateway{}, nil, zap.NewNop())
	resp, err := svc.ChangeStatus(context.Background(), booking.ID.String(), &request.ChangeStatusRequest{Status: "confirmed"})

	assert.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	assert.Equal(t, 1, updates)
}

func TestChangeStatus_RejectsBackwardTransition(t *testing.T) {
	booking := bookingWithStatus(entity.BookingStatusCompleted)
	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}

	svc := NewBookingService(repo, &mockGateway{}, nil, zap.NewNop())
	_, err := svc.ChangeStatus(context.Background(), booking.ID.String(), &request.ChangeStatusRequest{Status: "pending"})

	var transitionErr *InvalidTransitionError
	assert.ErrorAs(t, err, &transitionErr)
}

func TestChangeStatus_SkipTransitionRejected(t *testing.T) {
	booking := bookingWithStatus(entity.BookingStatusPending)
	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}

	svc := NewBookingService(repo, &mockGateway{}, nil, zap.NewNop())
	_, err := svc.ChangeStatus(context.Background(), booking.ID.String(), &request.ChangeStatusRequest{Status: "completed"})

	var transitionErr *InvalidTransitionError
	assert.ErrorAs(t, err, &transitionErr)
}

func TestChangeStatus_IdentityIsNoOp(t *testing.T) {
	booking := bookingWithStatus(entity.BookingStatusConfirmed)
	updates := 0
	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
		updateStatusFn: func(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
			updates++
			return nil
		},
	}

	svc := NewBookingService(repo, &mockGateway{}, nil, zap.NewNop())
	resp, err := svc.ChangeStatus(context.Background(), booking.ID.String(), &request.ChangeStatusRequest{Status: "confirmed"})

	assert.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	assert.Equal(t, 0, updates)
}

func TestCancelBooking_AlreadyCancelledIsNoOp(t *testing.T) {
	booking := bookingWithStatus(entity.BookingStatusCancelled)
	updates := 0
	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
		updateStatusFn: func(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
			updates++
			return nil
		},
	}

	svc := NewBookingService(repo, &mockGateway{}, nil, zap.NewNop())
	err := svc.CancelBooking(context.Background(), booking.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, 0, updates)
}

func TestCancelBooking_CompletedRejected(t *testing.T) {
	booking := bookingWithStatus(entity.BookingStatusCompleted)
	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}

	svc := NewBookingService(repo, &mockGateway{}, nil, zap.NewNop())
	err := svc.CancelBooking(context.Background(), booking.ID.String())

	var transitionErr *InvalidTransitionError
	assert.ErrorAs(t, err, &transitionErr)
}

// --- Gratuity ---

func TestAddGratuity_NotCompleted(t *testing.T) {
	customerID := uuid.New()
	booking := bookingWithStatus(entity.BookingStatusConfirmed)
	booking.CustomerID = &customerID
	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}

	svc := NewBookingService(repo, &mockGateway{}, nil, zap.NewNop())
	_, err := svc.AddGratuity(context.Background(), customerID, booking.ID.String(), &request.AddGratuityRequest{Type: "percentage", Percentage: 20})

	var stateErr *InvalidStateError
	assert.ErrorAs(t, err, &stateErr)
}

func TestAddGratuity_PercentageOfTotal(t *testing.T) {
	customerID := uuid.New()
	booking := bookingWithStatus(entity.BookingStatusCompleted)
	booking.CustomerID = &customerID
	booking.TotalPrice = 245

	var saved entity.Gratuity
	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
		updateGratuityFn: func(ctx context.Context, bookingID uuid.UUID, gratuity entity.Gratuity) error {
			saved = gratuity
			return nil
		},
	}

	svc := NewBookingService(repo, &mockGateway{}, nil, zap.NewNop())
	resp, err := svc.AddGratuity(context.Background(), customerID, booking.ID.String(), &request.AddGratuityRequest{Type: "percentage", Percentage: 20})

	assert.NoError(t, err)
	assert.Equal(t, 49.0, saved.Amount)
	assert.Equal(t, 49.0, resp.Gratuity.Amount)
}

func TestAddGratuity_OtherCustomersBookingHidden(t *testing.T) {
	owner := uuid.New()
	booking := bookingWithStatus(entity.BookingStatusCompleted)
	booking.CustomerID = &owner
	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}

	svc := NewBookingService(repo, &mockGateway{}, nil, zap.NewNop())
	_, err := svc.AddGratuity(context.Background(), uuid.New(), booking.ID.String(), &request.AddGratuityRequest{Type: "custom", Amount: 15})

	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

// --- Driver assignment ---

func TestAssignDriver_NotifyPublishesOnce(t *testing.T) {
	driverID := uuid.New()
	booking := bookingWithStatus(entity.BookingStatusConfirmed)
	booking.GuestEmail = strPtr("maria@example.com")
	phone := "+12015550188"

	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}
	repo.User = &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{
				Base:  entity.Base{ID: driverID},
				Name:  "James Carter",
				Email: "james@example.com",
				Phone: &phone,
				Role:  entity.RoleDriver,
			}, nil
		},
	}
	events := &mockPublisher{}

	svc := NewBookingService(repo, &mockGateway{}, events, zap.NewNop())
	resp, err := svc.AssignDriver(context.Background(), booking.ID.String(), &request.AssignDriverRequest{DriverID: driverID.String(), Notify: true})

	assert.NoError(t, err)
	assert.Equal(t, driverID.String(), *resp.DriverID)
	assert.Equal(t, []string{"booking.driver_assigned"}, events.published)
}

func TestAssignDriver_WithoutNotifySkipsPublish(t *testing.T) {
	driverID := uuid.New()
	booking := bookingWithStatus(entity.BookingStatusConfirmed)

	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}
	repo.User = &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{Base: entity.Base{ID: driverID}, Role: entity.RoleDriver}, nil
		},
	}
	events := &mockPublisher{}

	svc := NewBookingService(repo, &mockGateway{}, events, zap.NewNop())
	_, err := svc.AssignDriver(context.Background(), booking.ID.String(), &request.AssignDriverRequest{DriverID: driverID.String(), Notify: false})

	assert.NoError(t, err)
	assert.Empty(t, events.published)
}

func TestAssignDriver_RejectsNonDriver(t *testing.T) {
	customerID := uuid.New()
	booking := bookingWithStatus(entity.BookingStatusConfirmed)

	repo := testRepo()
	repo.Booking = &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}
	repo.User = &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{Base: entity.Base{ID: customerID}, Role: entity.RoleCustomer}, nil
		},
	}

	svc := NewBookingService(repo, &mockGateway{}, nil, zap.NewNop())
	_, err := svc.AssignDriver(context.Background(), booking.ID.String(), &request.AssignDriverRequest{DriverID: customerID.String(), Notify: true})

	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

// --- Assignments ---

func TestUpdateAssignments_RequiresAField(t *testing.T) {
	svc := NewBookingService(testRepo(), &mockGateway{}, nil, zap.NewNop())
	_, err := svc.UpdateAssignments(context.Background(), uuid.New().String(), &request.UpdateAssignmentsRequest{})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

// --- Quote ---

func TestQuote_PackagePrice(t *testing.T) {
	price := 180.0
	svc := NewBookingService(testRepo(), &mockGateway{}, nil, zap.NewNop())

	quote, err := svc.Quote(context.Background(), &request.QuoteRequest{
		PackagePrice: &price,
		CarSeats:     1,
	})

	assert.NoError(t, err)
	assert.Equal(t, 180.0, quote.BasePrice)
	assert.Equal(t, 195.0, quote.TotalPrice)
}

func TestQuote_NoSelection(t *testing.T) {
	svc := NewBookingService(testRepo(), &mockGateway{}, nil, zap.NewNop())

	_, err := svc.Quote(context.Background(), &request.QuoteRequest{})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
