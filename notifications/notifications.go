package notifications

import (
	"github.com/gobuffalo/events"

	"github.com/rubineta/claims-api/domain"
)

var notifiers []Notifier

func init() {
	email := EmailNotifier{} // The type of sender is determined by domain.Env.EmailService
	notifiers = append(notifiers, &email)
}

// Send loops through the notifiers and calls each of their Send functions
func Send(msg Message) error {
	for _, n := range notifiers {
		if err := n.Send(msg); err != nil {
			return err
		}
		domain.Logger.Printf("%T: '%s' message sent to '%s'", n, msg.Subject, msg.ToEmail)
	}

	e := events.Event{
		Kind:    domain.EventApiNotificationSent,
		Message: msg.Subject,
		Payload: events.Payload{"toEmail": msg.ToEmail},
	}
	if err := events.Emit(e); err != nil {
		domain.ErrLogger.Printf("error emitting event %s ... %v", e.Kind, err)
	}

	return nil
}
