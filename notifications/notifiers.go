package notifications

import (
	"github.com/rubineta/claims-api/domain"
)

const (
	EmailServiceMailjet = "mailjet"
	EmailServiceSES     = "ses"
	EmailServiceSMTP    = "smtp"
	EmailServiceDummy   = "dummy"
)

// Notifier is an abstraction layer for multiple types of notifications: email, mobile, and push (TBD).
type Notifier interface {
	Send(msg Message) error
}

// EmailNotifier is an email notifier that conforms to the Notifier interface.
type EmailNotifier struct{}

// Send a notification using an email notifier.
func (e *EmailNotifier) Send(msg Message) error {
	var emailService EmailService

	switch domain.Env.EmailService {
	case EmailServiceMailjet:
		emailService = &Mailjet{}
	case EmailServiceSES:
		emailService = &SES{}
	case EmailServiceSMTP:
		emailService = &SMTP{}
	case EmailServiceDummy:
		emailService = &TestEmailService
	default:
		emailService = &TestEmailService
	}

	// never send real email from the test environment
	if domain.Env.GoEnv == domain.EnvTest {
		emailService = &TestEmailService
	}

	return emailService.Send(msg)
}

// EmailService is one concrete mail transport.
type EmailService interface {
	Send(msg Message) error
}
