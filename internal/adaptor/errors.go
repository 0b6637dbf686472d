package adaptor

import (
	"errors"
	"net/http"

	"limo-booking/internal/usecase"
	"limo-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps the usecase error taxonomy onto HTTP status codes.
// Anything unmatched is a 500 with the cause logged and a generic message sent.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var (
		validationErr *usecase.ValidationError
		paymentErr    *usecase.PaymentError
		notFoundErr   *usecase.NotFoundError
		transitionErr *usecase.InvalidTransitionError
		stateErr      *usecase.InvalidStateError
		configErr     *usecase.ConfigurationError
	)

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, validationErr.Message, nil)

	case errors.As(err, &paymentErr):
		log.Warn(operation+" payment failed", zap.Error(err))
		utils.ResponsePaymentRequired(w, paymentErr.Message)

	case errors.As(err, &notFoundErr):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, notFoundErr.Error())

	case errors.As(err, &transitionErr):
		log.Warn(operation+" failed - invalid transition", zap.Error(err))
		utils.ResponseConflict(w, transitionErr.Error())

	case errors.As(err, &stateErr):
		log.Warn(operation+" failed - invalid state", zap.Error(err))
		utils.ResponseConflict(w, stateErr.Message)

	case errors.As(err, &configErr):
		log.Error(operation+" failed - misconfiguration", zap.Error(err))
		utils.ResponseInternalError(w, "Payment processing is unavailable")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
