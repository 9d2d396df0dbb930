package notifications

import (
	"github.com/rubineta/claims-api/domain"
)

// Message is one outbound email, body already rendered to plain text.
type Message struct {
	FromName  string
	FromEmail string
	ToName    string
	ToEmail   string
	Subject   string
	Body      string
}

// NewEmailMessage returns a message with the From fields already set from the
// environment configuration.
func NewEmailMessage() Message {
	return Message{
		FromName:  domain.Env.EmailFromName,
		FromEmail: domain.Env.EmailFromAddress,
	}
}

// ToQualityTeam sets the recipient to the configured quality-team address.
func (m Message) ToQualityTeam() Message {
	m.ToName = "Kokybės komanda"
	m.ToEmail = domain.Env.QualityEmail
	return m
}
