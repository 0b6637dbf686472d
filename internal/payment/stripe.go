package payment

import (
	"context"
	"errors"

	"limo-booking/pkg/utils"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"go.uber.org/zap"
)

type StripeGateway struct {
	cfg utils.PaymentConfig
	log *zap.Logger
}

func NewStripeGateway(cfg utils.PaymentConfig, log *zap.Logger) *StripeGateway {
	return &StripeGateway{
		cfg: cfg,
		log: log.With(zap.String("gateway", "stripe")),
	}
}

func (g *StripeGateway) Name() string {
	return "stripe"
}

func (g *StripeGateway) Authorize(ctx context.Context, amountCents int64, token string) (*Result, error) {
	if g.cfg.StripeSecretKey == "" {
		return nil, ErrMissingConfig
	}

	sc := &client.API{}
	sc.Init(g.cfg.StripeSecretKey, nil)

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amountCents),
		Currency:      stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethod: stripe.String(token),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx

	intent, err := sc.PaymentIntents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			g.log.Warn("Card declined",
				zap.String("code", string(stripeErr.Code)),
				zap.Int64("amount_cents", amountCents),
			)
			return &Result{Success: false, Message: stripeErr.Msg}, nil
		}
		g.log.Error("Stripe charge failed", zap.Error(err), zap.Int64("amount_cents", amountCents))
		return nil, err
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		g.log.Warn("Payment intent not succeeded",
			zap.String("intent_id", intent.ID),
			zap.String("intent_status", string(intent.Status)),
		)
		return &Result{Success: false, Message: "payment was not completed"}, nil
	}

	g.log.Info("Payment authorized",
		zap.String("transaction_id", intent.ID),
		zap.Int64("amount_cents", amountCents),
	)

	return &Result{Success: true, TransactionID: intent.ID}, nil
}
