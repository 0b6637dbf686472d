package adaptor

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"limo-booking/internal/data/entity"
	"limo-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHandleServiceError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", usecase.NewValidationError("pickup date must be in the future"), http.StatusBadRequest},
		{"payment declined", &usecase.PaymentError{Message: "payment declined: insufficient funds"}, http.StatusPaymentRequired},
		{"not found", &usecase.NotFoundError{Resource: "booking", ID: "abc"}, http.StatusNotFound},
		{"invalid transition", &usecase.InvalidTransitionError{From: entity.BookingStatusCompleted, To: entity.BookingStatusPending}, http.StatusConflict},
		{"invalid state", &usecase.InvalidStateError{Message: "gratuity can only be added to completed bookings"}, http.StatusConflict},
		{"misconfiguration", &usecase.ConfigurationError{Message: "payment gateway is not configured"}, http.StatusInternalServerError},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			handleServiceError(zap.NewNop(), recorder, tt.err, "test operation")

			assert.Equal(t, tt.code, recorder.Code)
		})
	}
}

func TestHandleServiceError_WrappedErrorsUnwrap(t *testing.T) {
	recorder := httptest.NewRecorder()
	wrapped := errors.Join(errors.New("find booking"), &usecase.NotFoundError{Resource: "booking", ID: "abc"})

	handleServiceError(zap.NewNop(), recorder, wrapped, "test operation")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
