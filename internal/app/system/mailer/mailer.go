// internal/app/system/mailer/mailer.go
package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Email is one outbound message with both text and HTML bodies.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender delivers email. The SMTP implementation is used in production;
// tests substitute a capture fake.
type Sender interface {
	Send(e Email) error
}

// SMTPSender sends mail through a plain-auth SMTP relay.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (s *SMTPSender) Send(e Email) error {
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMessage-ID: <%s@%s>\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.From, e.To, e.Subject, uuid.NewString(), s.Host, e.HTMLBody)

	if err := smtp.SendMail(addr, auth, s.From, []string{e.To}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", e.To, err)
	}
	return nil
}

// LogSender logs instead of sending. Used when SMTP is not configured
// (local development) so flows that email still complete.
type LogSender struct {
	Log *zap.Logger
}

func (s *LogSender) Send(e Email) error {
	s.Log.Info("email (not sent, smtp disabled)",
		zap.String("to", e.To),
		zap.String("subject", e.Subject),
		zap.String("text_body", e.TextBody),
	)
	return nil
}
