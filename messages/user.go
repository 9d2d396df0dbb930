package messages

import (
	"fmt"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/notifications"
)

// PasswordReset builds the email carrying a password reset link.
func PasswordReset(input api.PasswordResetInput) notifications.Message {
	msg := notifications.NewEmailMessage()
	msg.ToEmail = input.Email
	msg.Subject = "Atkurti slaptažodį – Rubineta"
	msg.Body = fmt.Sprintf(
		"Sveiki,\n\nJūs paprašėte atkurti slaptažodį.\n\nSpauskite nuorodą, kad nustatytumėte naują:\n%s\n\n"+
			"Nuoroda galioja 1 valandą.\n\nJei to nedarėte – galite ignoruoti šį laišką.\n\n"+
			"Pagarbiai,\nRubineta komanda",
		input.ResetLink)
	return msg
}
