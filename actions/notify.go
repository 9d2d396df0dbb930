package actions

import (
	"net/http"

	"github.com/gobuffalo/buffalo"
	"github.com/gobuffalo/nulls"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/domain"
	"github.com/rubineta/claims-api/messages"
	"github.com/rubineta/claims-api/models"
	"github.com/rubineta/claims-api/notifications"
)

// sendConfirmation mails the claim-received confirmation to the customer in
// the requested language, or Lithuanian when the code is missing or unknown.
func sendConfirmation(c buffalo.Context) error {
	var input api.ConfirmationInput
	if appErr := bindNotificationInput(c, &input); appErr != nil {
		return renderSendFailure(c, appErr)
	}

	lang, ok := api.ParseLanguage(input.Language)
	if !ok {
		lang = api.DefaultLanguage
	}
	newExtra(c, "language", lang.String())

	msg := messages.Confirmation(lang, input)
	return deliver(c, messages.EventClaimConfirmation, input.ClaimID, msg)
}

// sendToPartner mails the assignment details to a service partner.
func sendToPartner(c buffalo.Context) error {
	var input api.PartnerAssignmentInput
	if appErr := bindNotificationInput(c, &input); appErr != nil {
		return renderSendFailure(c, appErr)
	}

	msg := messages.PartnerAssignment(input)
	return deliver(c, messages.EventPartnerAssignment, input.ClaimID, msg)
}

// notifyQuality alerts the quality team about a newly registered claim.
func notifyQuality(c buffalo.Context) error {
	var input api.QualityAlertInput
	if appErr := bindNotificationInput(c, &input); appErr != nil {
		return renderSendFailure(c, appErr)
	}

	msg := messages.QualityAlert(input)
	return deliver(c, messages.EventQualityAlert, input.ClaimID, msg)
}

// notifyResolved sends two sequential emails when a partner marks a claim
// resolved: first to the customer, then to the quality team. A failure of the
// first send skips the second and fails the request.
func notifyResolved(c buffalo.Context) error {
	var input api.ResolutionInput
	if appErr := bindNotificationInput(c, &input); appErr != nil {
		return renderSendFailure(c, appErr)
	}

	customerMsg := messages.ResolutionCustomer(input)
	if err := notifications.Send(customerMsg); err != nil {
		return renderSendError(c, err)
	}
	recordNotification(c, messages.EventResolutionCustomer, input.ClaimID, customerMsg)

	qualityMsg := messages.ResolutionQuality(input)
	if err := notifications.Send(qualityMsg); err != nil {
		return renderSendError(c, err)
	}
	recordNotification(c, messages.EventResolutionQuality, input.ClaimID, qualityMsg)

	return renderOk(c, api.SendResult{Success: true})
}

// notifyStatusChange mails the customer when the claim moves to a new status.
func notifyStatusChange(c buffalo.Context) error {
	var input api.StatusChangeInput
	if appErr := bindNotificationInput(c, &input); appErr != nil {
		return renderSendFailure(c, appErr)
	}

	msg := messages.StatusChange(input)
	return deliver(c, messages.EventStatusChange, input.ClaimID, msg)
}

// sendFeedbackSurvey mails a feedback questionnaire link after resolution.
func sendFeedbackSurvey(c buffalo.Context) error {
	var input api.FeedbackSurveyInput
	if appErr := bindNotificationInput(c, &input); appErr != nil {
		return renderSendFailure(c, appErr)
	}

	msg := messages.FeedbackSurvey(input)
	return deliver(c, messages.EventFeedbackSurvey, input.ClaimID, msg)
}

// sendPasswordReset mails a password recovery link.
func sendPasswordReset(c buffalo.Context) error {
	var input api.PasswordResetInput
	if appErr := bindNotificationInput(c, &input); appErr != nil {
		return renderSendFailure(c, appErr)
	}

	msg := messages.PasswordReset(input)
	return deliver(c, messages.EventPasswordReset, "", msg)
}

// bindNotificationInput parses and validates the request body of a
// notification route.
func bindNotificationInput(c buffalo.Context, input any) *api.AppError {
	if err := StrictBind(c, input); err != nil {
		return err.(*api.AppError)
	}

	if appErr := api.ValidateInput(input); appErr != nil {
		appErr.Key = api.ErrorNotificationMissingField
		return appErr
	}
	return nil
}

// deliver sends one message, records it against the claim, and renders the
// send-result envelope.
func deliver(c buffalo.Context, event, claimRef string, msg notifications.Message) error {
	if err := notifications.Send(msg); err != nil {
		return renderSendError(c, err)
	}

	recordNotification(c, event, claimRef, msg)
	return renderOk(c, api.SendResult{Success: true})
}

// renderSendFailure renders a 400 send-result for a bad request body.
func renderSendFailure(c buffalo.Context, appErr *api.AppError) error {
	domain.Warn(c, appErr.Error(), getExtras(c))
	return c.Render(http.StatusBadRequest, r.JSON(api.SendResult{Success: false, Error: appErr.Error()}))
}

// renderSendError renders a 500 send-result for a failed transport call.
func renderSendError(c buffalo.Context, err error) error {
	extras := getExtras(c)
	extras["key"] = api.ErrorSendingEmail
	domain.Error(c, err.Error(), extras)
	return c.Render(http.StatusInternalServerError, r.JSON(api.SendResult{Success: false, Error: err.Error()}))
}

// recordNotification writes the audit row of one accepted send. The claim
// reference may be unknown to the database; the row is kept either way. An
// audit failure is logged but never turns a delivered email into an error.
func recordNotification(c buffalo.Context, event, claimRef string, msg notifications.Message) {
	tx := models.Tx(c)

	notification := models.Notification{
		Event:   event,
		ToEmail: msg.ToEmail,
		Subject: msg.Subject,
		Body:    msg.Body,
	}

	if claimRef != "" {
		var claim models.Claim
		if err := claim.FindByReferenceNumber(tx, claimRef); err == nil {
			notification.ClaimID = nulls.NewUUID(claim.ID)
		}
	}

	if err := notification.Create(tx); err != nil {
		domain.Error(c, "failed to record notification: "+err.Error(), getExtras(c))
	}
}
