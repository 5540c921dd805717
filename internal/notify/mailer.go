package notify

import (
	"gopkg.in/gomail.v2"
)

// Mailer sends one HTML email to a recipient set.
type Mailer interface {
	Send(to []string, subject, htmlBody string) error
}

// SMTPMailer delivers mail through an SMTP transport.
type SMTPMailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

var _ Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates a mailer for the given transport credentials.
func NewSMTPMailer(host string, port int, user, pass, fromName string) *SMTPMailer {
	return &SMTPMailer{
		dialer:   gomail.NewDialer(host, port, user, pass),
		from:     user,
		fromName: fromName,
	}
}

func (m *SMTPMailer) Send(to []string, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}
