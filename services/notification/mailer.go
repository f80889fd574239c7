package notification

import (
	"context"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// SMTPService is the production email sender.
type SMTPService struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

func NewSMTPService(host string, port int, username, password, from string, logger *zap.Logger) *SMTPService {
	return &SMTPService{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		logger: logger,
	}
}

func (s *SMTPService) Send(ctx context.Context, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return err
	}
	s.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
