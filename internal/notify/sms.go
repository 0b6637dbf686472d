package notify

import (
	"fmt"

	"limo-booking/pkg/utils"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// SMSSender sends short customer and driver notifications through Twilio.
type SMSSender struct {
	cfg utils.TwilioConfig
	log *zap.Logger
}

func NewSMSSender(cfg utils.TwilioConfig, log *zap.Logger) *SMSSender {
	return &SMSSender{
		cfg: cfg,
		log: log.With(zap.String("component", "sms")),
	}
}

func (s *SMSSender) SendSMS(to, message string) error {
	if s.cfg.AccountSID == "" || s.cfg.AuthToken == "" || s.cfg.FromNumber == "" {
		return fmt.Errorf("twilio is not configured")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: s.cfg.AccountSID,
		Password: s.cfg.AuthToken,
	})

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.cfg.FromNumber)
	params.SetBody(message)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("send sms to %s: %w", to, err)
	}

	s.log.Info("SMS sent", zap.String("to", to))
	return nil
}
