package notify

import (
	"fmt"

	"limo-booking/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer sends customer-facing email over SMTP.
type Mailer struct {
	cfg utils.SMTPConfig
	log *zap.Logger
}

func NewMailer(cfg utils.SMTPConfig, log *zap.Logger) *Mailer {
	return &Mailer{
		cfg: cfg,
		log: log.With(zap.String("component", "mailer")),
	}
}

func (m *Mailer) SendEmail(to, subject, html, text string) error {
	if m.cfg.Host == "" || m.cfg.From == "" {
		return fmt.Errorf("smtp is not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	if text != "" {
		msg.SetBody("text/plain", text)
		msg.AddAlternative("text/html", html)
	} else {
		msg.SetBody("text/html", html)
	}

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	m.log.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
