package usecase

import (
	"fmt"

	"limo-booking/internal/data/entity"
)

// Error taxonomy for booking operations. Handlers map these to HTTP status
// codes with errors.As; anything unmatched becomes a 500 with a logged cause.

// ValidationError: missing or malformed input, user-correctable.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// PaymentError: the gateway declined or returned an incomplete confirmation.
// Retryable by re-submitting with different payment details.
type PaymentError struct {
	Message string
}

func (e *PaymentError) Error() string {
	return e.Message
}

// NotFoundError: a referenced booking, driver, or vehicle is absent.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// InvalidTransitionError: the requested status change is not in the allowed
// set of the booking state machine.
type InvalidTransitionError struct {
	From entity.BookingStatus
	To   entity.BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change booking status from %s to %s", e.From, e.To)
}

// InvalidStateError: the operation is not permitted in the booking's current
// status (e.g. gratuity on a ride that is not completed).
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// ConfigurationError: provider credentials are missing. Operator-correctable;
// never a silent no-op.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}
