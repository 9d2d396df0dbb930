package api

import (
	"github.com/gofrs/uuid"
)

type Partners []Partner

type Partner struct {
	ID            uuid.UUID `json:"id"`
	CompanyName   string    `json:"companyName"`
	ContactPerson string    `json:"contactPerson"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	City          string    `json:"city"`
	Specialty     string    `json:"specialty"`
}

type PartnerCreateInput struct {
	CompanyName   string `json:"companyName" validate:"required"`
	ContactPerson string `json:"contactPerson" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	City          string `json:"city"`
	Specialty     string `json:"specialty"`
}
