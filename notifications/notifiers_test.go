package notifications

import (
	"github.com/rubineta/claims-api/domain"
)

func (ts *TestSuite) Test_EmailNotifier_TestEnvUsesDummy() {
	// GO_ENV is "test" here, so the notifier must route to the dummy
	// transport regardless of the configured email service.
	oldService := domain.Env.EmailService
	domain.Env.EmailService = EmailServiceMailjet
	defer func() { domain.Env.EmailService = oldService }()

	msg := NewEmailMessage()
	msg.ToEmail = "jonas@example.com"
	msg.Subject = "test subject"

	var notifier EmailNotifier
	ts.NoError(notifier.Send(msg))
	ts.Equal(1, TestEmailService.GetNumberOfMessagesSent())
	ts.Equal("jonas@example.com", TestEmailService.GetLastToEmail())
}

func (ts *TestSuite) Test_addressWithName() {
	ts.Equal("jonas@example.com", addressWithName("", "jonas@example.com"))
	ts.Equal("Jonas <jonas@example.com>", addressWithName("Jonas", "jonas@example.com"))
}
