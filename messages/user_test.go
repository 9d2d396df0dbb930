package messages

import (
	"github.com/rubineta/claims-api/api"
)

func (ts *TestSuite) Test_PasswordReset() {
	msg := PasswordReset(api.PasswordResetInput{
		Email:     "jonas@example.com",
		ResetLink: "https://pretenzijos.example.com/reset.html?token=abc123",
	})
	ts.Equal("jonas@example.com", msg.ToEmail)
	ts.Equal("Atkurti slaptažodį – Rubineta", msg.Subject)
	ts.Contains(msg.Body, "https://pretenzijos.example.com/reset.html?token=abc123")
	ts.Contains(msg.Body, "Nuoroda galioja 1 valandą.")
}
