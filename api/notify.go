package api

// SendResult is the envelope every notification route responds with.
type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ConfirmationInput struct {
	Email        string `json:"email" validate:"required,email"`
	ClaimID      string `json:"claimId" validate:"required"`
	Language     string `json:"language"`
	IsRegistered bool   `json:"isRegistered"`
}

type PartnerAssignmentInput struct {
	ClaimID              string            `json:"claimId" validate:"required"`
	PartnerEmail         string            `json:"partnerEmail" validate:"required,email"`
	PartnerContactPerson string            `json:"partnerContactPerson" validate:"required"`
	Note                 string            `json:"note"`
	Attachments          []ClaimAttachment `json:"attachments"`
	ClaimLink            string            `json:"claimLink"`
	Customer             *CustomerContact  `json:"customer"`
}

type ClaimAttachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type CustomerContact struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Street  string `json:"street"`
	City    string `json:"city"`
	Postal  string `json:"postal"`
}

type QualityAlertInput struct {
	ClaimID string `json:"claimId" validate:"required"`
}

type ResolutionInput struct {
	ClaimID       string `json:"claimId" validate:"required"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CustomerName  string `json:"customerName" validate:"required"`
	ProductName   string `json:"productName" validate:"required"`
}

type StatusChangeInput struct {
	ClaimID       string `json:"claimId" validate:"required"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CustomerName  string `json:"customerName" validate:"required"`
	Status        string `json:"status" validate:"required"`
}

type FeedbackSurveyInput struct {
	Email        string `json:"email" validate:"required,email"`
	ClaimID      string `json:"claimId" validate:"required"`
	FeedbackLink string `json:"feedbackLink" validate:"required"`
}

type PasswordResetInput struct {
	Email     string `json:"email" validate:"required,email"`
	ResetLink string `json:"resetLink" validate:"required"`
}
