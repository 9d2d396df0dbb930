// Package messages builds the subject and plain-text body for every
// notification event the claims system sends. Templates are fixed strings
// with positional interpolation; customer-facing confirmation templates exist
// in all supported languages.
package messages

// Notification events, recorded on the Notification audit rows.
const (
	EventClaimConfirmation  = "claim-confirmation"
	EventPartnerAssignment  = "partner-assignment"
	EventQualityAlert       = "quality-alert"
	EventResolutionCustomer = "resolution-customer"
	EventResolutionQuality  = "resolution-quality"
	EventStatusChange       = "status-change"
	EventFeedbackSurvey     = "feedback-survey"
	EventPasswordReset      = "password-reset"
)

// signature is the footer of most customer-facing emails.
const signature = "Pagarbiai,\nRubineta kokybės komanda"

// signatureWithContacts adds the support contact lines used on partner and
// resolution emails.
const signatureWithContacts = signature + "\ninfo@rubineta.lt\n+370 612 34567"
