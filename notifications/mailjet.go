package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rubineta/claims-api/domain"
)

// Mailjet sends email using the Mailjet v3.1 send API
type Mailjet struct{}

type mailjetRecipient struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

type mailjetMessage struct {
	From     mailjetRecipient   `json:"From"`
	To       []mailjetRecipient `json:"To"`
	Subject  string             `json:"Subject"`
	TextPart string             `json:"TextPart"`
}

type mailjetPayload struct {
	Messages []mailjetMessage `json:"Messages"`
}

type mailjetErrorResponse struct {
	ErrorMessage string `json:"ErrorMessage"`
}

// Send a message
func (m *Mailjet) Send(msg Message) error {
	payload := mailjetPayload{
		Messages: []mailjetMessage{{
			From:     mailjetRecipient{Email: msg.FromEmail, Name: msg.FromName},
			To:       []mailjetRecipient{{Email: msg.ToEmail, Name: msg.ToName}},
			Subject:  msg.Subject,
			TextPart: msg.Body,
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshaling mailjet payload, %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, domain.Env.MailjetAPIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating mailjet request, %w", err)
	}
	req.SetBasicAuth(domain.Env.MailjetAPIKey, domain.Env.MailjetAPISecret)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: time.Second * 30}
	response, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("SendEmail failed using Mailjet, %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode != http.StatusOK {
		var mjErr mailjetErrorResponse
		respBody, _ := io.ReadAll(response.Body)
		if err := json.Unmarshal(respBody, &mjErr); err != nil || mjErr.ErrorMessage == "" {
			mjErr.ErrorMessage = response.Status
		}
		return fmt.Errorf("Mailjet error: %s", mjErr.ErrorMessage)
	}

	domain.Logger.Printf("Message sent using Mailjet to %s", msg.ToEmail)
	return nil
}
