package notifications

import (
	"errors"
	"time"

	"github.com/rubineta/claims-api/domain"
)

var sentMessages = map[int][]dummyMessage{}

type DummyEmailService struct {
	timestamp int
}

func NewDummyEmailService() DummyEmailService {
	return DummyEmailService{timestamp: time.Now().Nanosecond()}
}

var TestEmailService DummyEmailService

// ErrDummySendFailure makes the dummy transport reject every send when set,
// so tests can exercise the failure paths.
var ErrDummySendFailure error

type dummyMessage struct {
	subject, body, fromName, fromEmail, toName, toEmail string
}

type DummyMessageInfo struct {
	Subject, Body, ToName, ToEmail string
}

func (t DummyEmailService) Send(msg Message) error {
	if ErrDummySendFailure != nil {
		return errors.New("dummy send failed: " + ErrDummySendFailure.Error())
	}

	domain.Logger.Printf("dummy message subject: %s, recipient: %s",
		msg.Subject, msg.ToName)

	sentMsgs := sentMessages[t.timestamp]
	sentMsgs = append(sentMsgs, dummyMessage{
		subject:   msg.Subject,
		body:      msg.Body,
		fromName:  msg.FromName,
		fromEmail: msg.FromEmail,
		toName:    msg.ToName,
		toEmail:   msg.ToEmail,
	})
	sentMessages[t.timestamp] = sentMsgs
	return nil
}

// GetNumberOfMessagesSent returns the number of messages sent since initialization or the last call to
// DeleteSentMessages
func (t *DummyEmailService) GetNumberOfMessagesSent() int {
	return len(sentMessages[t.timestamp])
}

// DeleteSentMessages erases the store of sent messages
func (t *DummyEmailService) DeleteSentMessages() {
	sentMessages[t.timestamp] = []dummyMessage{}
}

func (t *DummyEmailService) GetLastToEmail() string {
	sentMsgs := sentMessages[t.timestamp]
	if len(sentMsgs) == 0 {
		return ""
	}

	return sentMsgs[len(sentMsgs)-1].toEmail
}

func (t *DummyEmailService) GetToEmailByIndex(i int) string {
	sentMsgs := sentMessages[t.timestamp]
	if len(sentMsgs) <= i {
		return ""
	}

	return sentMsgs[i].toEmail
}

func (t *DummyEmailService) GetAllToAddresses() []string {
	sentMsgs := sentMessages[t.timestamp]
	emailAddresses := make([]string, len(sentMsgs))
	for i := range sentMsgs {
		emailAddresses[i] = sentMsgs[i].toEmail
	}
	return emailAddresses
}

func (t *DummyEmailService) GetLastBody() string {
	sentMsgs := sentMessages[t.timestamp]
	if len(sentMsgs) == 0 {
		return ""
	}

	return sentMsgs[len(sentMsgs)-1].body
}

func (t *DummyEmailService) GetSentMessages() []DummyMessageInfo {
	sentMsgs := sentMessages[t.timestamp]
	messages := make([]DummyMessageInfo, len(sentMsgs))
	for i, m := range sentMsgs {
		messages[i] = DummyMessageInfo{
			Subject: m.subject,
			Body:    m.body,
			ToName:  m.toName,
			ToEmail: m.toEmail,
		}
	}
	return messages
}
