package notifications

import (
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"github.com/rubineta/claims-api/domain"
)

// SMTP sends email through an authenticated SMTP submission port, e.g. Gmail
// with an app password.
type SMTP struct{}

// Send a message
func (s *SMTP) Send(msg Message) error {
	host := domain.Env.SMTPHost
	addr := fmt.Sprintf("%s:%d", host, domain.Env.SMTPPort)
	auth := smtp.PlainAuth("", domain.Env.SMTPUser, domain.Env.SMTPPassword, host)

	if err := smtp.SendMail(addr, auth, msg.FromEmail, []string{msg.ToEmail}, rawMessage(msg)); err != nil {
		return fmt.Errorf("SendEmail failed using SMTP, %s", err)
	}

	domain.Logger.Printf("Message sent using SMTP to %s", msg.ToEmail)
	return nil
}

// rawMessage assembles the message headers and body. Subjects and display
// names are in Lithuanian more often than not, so the headers go through
// RFC 2047 encoding.
func rawMessage(msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + domain.EmailFromAddress() + "\r\n")
	b.WriteString("To: " + encodedAddress(msg.ToName, msg.ToEmail) + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	return []byte(b.String())
}

func encodedAddress(name, address string) string {
	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", name), address)
}
