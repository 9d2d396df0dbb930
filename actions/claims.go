package actions

import (
	"github.com/gobuffalo/buffalo"
	"github.com/gobuffalo/pop/v6/slices"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/models"
)

// claimsList returns all claims, newest first.
func claimsList(c buffalo.Context) error {
	tx := models.Tx(c)

	var claims models.Claims
	if err := claims.All(tx); err != nil {
		return reportError(c, err)
	}

	return renderOk(c, claims.ConvertToAPI())
}

// claimsCreate registers a new customer claim. Fields the form does not map
// to a column are kept verbatim in the extraFields JSON column.
func claimsCreate(c buffalo.Context) error {
	var input api.ClaimCreateInput
	if err := StrictBind(c, &input); err != nil {
		return reportError(c, err)
	}

	if appErr := api.ValidateInput(input); appErr != nil {
		return reportError(c, appErr)
	}

	lang, ok := api.ParseLanguage(input.Language)
	if !ok {
		lang = api.DefaultLanguage
	}

	claim := models.Claim{
		CustomerName:    input.CustomerName,
		CustomerSurname: input.CustomerSurname,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		Street:          input.Street,
		City:            input.City,
		PostalCode:      input.PostalCode,
		Country:         input.Country,
		ProductName:     input.ProductName,
		Description:     input.Description,
		Language:        lang.String(),
		ExtraFields:     slices.Map(input.ExtraFields),
	}

	tx := models.Tx(c)
	if err := claim.Create(tx); err != nil {
		return reportError(c, err)
	}

	newExtra(c, "claimId", claim.ReferenceNumber)
	return renderOk(c, claim.ConvertToAPI())
}

// claimsView returns one claim by its reference number.
func claimsView(c buffalo.Context) error {
	tx := models.Tx(c)

	var claim models.Claim
	if err := claim.FindByReferenceNumber(tx, c.Param("id")); err != nil {
		return reportError(c, err)
	}

	return renderOk(c, claim.ConvertToAPI())
}

// claimsUpdateStatus sets a new status on a claim. Moving a claim back to
// "Nauja" or "Laukia patvirtinimo" detaches its assigned partner.
func claimsUpdateStatus(c buffalo.Context) error {
	var input api.ClaimStatusUpdateInput
	if err := StrictBind(c, &input); err != nil {
		return reportError(c, err)
	}

	if appErr := api.ValidateInput(input); appErr != nil {
		return reportError(c, appErr)
	}

	tx := models.Tx(c)

	var claim models.Claim
	if err := claim.FindByReferenceNumber(tx, input.ClaimID); err != nil {
		return reportError(c, err)
	}

	if err := claim.UpdateStatus(tx, api.ClaimStatus(input.Status)); err != nil {
		return reportError(c, err)
	}

	newExtra(c, "claimId", claim.ReferenceNumber)
	newExtra(c, "status", input.Status)
	return renderOk(c, claim.ConvertToAPI())
}

// claimsAssignPartner attaches a service partner to a claim.
func claimsAssignPartner(c buffalo.Context) error {
	var input api.ClaimAssignPartnerInput
	if err := StrictBind(c, &input); err != nil {
		return reportError(c, err)
	}

	if appErr := api.ValidateInput(input); appErr != nil {
		return reportError(c, appErr)
	}

	tx := models.Tx(c)

	var claim models.Claim
	if err := claim.FindByReferenceNumber(tx, input.ClaimID); err != nil {
		return reportError(c, err)
	}

	var partner models.Partner
	if err := partner.FindByID(tx, input.PartnerID); err != nil {
		return reportError(c, err)
	}

	if err := claim.AssignPartner(tx, partner); err != nil {
		return reportError(c, err)
	}

	newExtra(c, "claimId", claim.ReferenceNumber)
	newExtra(c, "partnerId", partner.ID)
	return renderOk(c, claim.ConvertToAPI())
}
