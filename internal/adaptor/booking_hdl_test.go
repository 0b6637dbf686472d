package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"limo-booking/internal/data/entity"
	"limo-booking/internal/data/repository"
	"limo-booking/internal/dto/request"
	"limo-booking/internal/dto/response"
	"limo-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubBookingService struct {
	usecase.BookingService
	listFn func(ctx context.Context, filter repository.BookingFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

func (s *stubBookingService) ListBookings(ctx context.Context, filter repository.BookingFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	return s.listFn(ctx, filter, page)
}

func TestListBookings_FiltersFromQuery(t *testing.T) {
	var captured repository.BookingFilter
	svc := &stubBookingService{
		listFn: func(ctx context.Context, filter repository.BookingFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
			captured = filter
			return &response.PaginatedResponse[response.BookingResponse]{}, nil
		},
	}
	handler := NewBookingHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings?status=confirmed&email=amy@example.com", nil)
	recorder := httptest.NewRecorder()

	handler.ListBookings(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, entity.BookingStatusConfirmed, captured.Status)
	assert.Equal(t, "amy@example.com", captured.Email)
}

func TestListBookings_RejectsBadDriverIDFilter(t *testing.T) {
	svc := &stubBookingService{
		listFn: func(ctx context.Context, filter repository.BookingFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	handler := NewBookingHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings?driver_id=not-a-uuid", nil)
	recorder := httptest.NewRecorder()

	handler.ListBookings(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
