package payment

import (
	"context"
	"errors"
	"strings"

	"limo-booking/pkg/utils"

	"go.uber.org/zap"
)

// ErrMissingConfig is returned when a gateway is charged without credentials.
// Surfaced to operators as a configuration error, never as a silent no-op.
var ErrMissingConfig = errors.New("MISSING_CONFIG: payment gateway credentials are not set")

// Result is the gateway-agnostic outcome of one authorization attempt.
// Success without a TransactionID must be treated as a failure by callers.
type Result struct {
	Success       bool
	TransactionID string
	Message       string
}

// Gateway is the one contract both card processors are consumed through.
// Tokenization happens client-side; the gateway only submits the token plus
// amount and interprets the confirmation.
type Gateway interface {
	Name() string
	Authorize(ctx context.Context, amountCents int64, token string) (*Result, error)
}

// NewGateway selects the configured processor. Unknown values fall back to
// Stripe so a typo fails at charge time with a credential error rather than a
// nil gateway.
func NewGateway(cfg utils.PaymentConfig, log *zap.Logger) Gateway {
	switch strings.ToLower(cfg.Provider) {
	case "authorizenet":
		return NewAuthorizeNetGateway(cfg, log)
	default:
		return NewStripeGateway(cfg, log)
	}
}
