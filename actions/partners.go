package actions

import (
	"github.com/gobuffalo/buffalo"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/models"
)

func partnersList(c buffalo.Context) error {
	tx := models.Tx(c)

	var partners models.Partners
	if err := partners.All(tx); err != nil {
		return reportError(c, err)
	}

	return renderOk(c, partners.ConvertToAPI())
}

func partnersCreate(c buffalo.Context) error {
	var input api.PartnerCreateInput
	if err := StrictBind(c, &input); err != nil {
		return reportError(c, err)
	}

	if appErr := api.ValidateInput(input); appErr != nil {
		return reportError(c, appErr)
	}

	partner := models.Partner{
		CompanyName:   input.CompanyName,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		City:          input.City,
		Specialty:     input.Specialty,
	}

	tx := models.Tx(c)
	if err := partner.Create(tx); err != nil {
		return reportError(c, err)
	}

	return renderOk(c, partner.ConvertToAPI())
}
