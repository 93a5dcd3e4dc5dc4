// Package mailer delivers the rendered digest over SMTP.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// New builds a mailer for a STARTTLS-upgraded session. The dialer
// negotiates the TLS upgrade before authenticating, so credentials never
// cross the wire in the clear.
func New(host string, port int, username, password, to string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   username,
		to:     to,
	}
}

// Send transmits one HTML email. Any dial, auth, or send failure is
// returned to the caller, which treats it as fatal; there is no retry.
func (m *Mailer) Send(subject, htmlBody string) error {
	msg := m.buildMessage(subject, htmlBody)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending digest email: %w", err)
	}
	return nil
}

func (m *Mailer) buildMessage(subject, htmlBody string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return msg
}
