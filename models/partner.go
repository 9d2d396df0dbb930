package models

import (
	"time"

	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/domain"
)

type Partners []Partner

// Partner is an external service technician or workshop claims can be
// assigned to.
type Partner struct {
	ID            uuid.UUID `db:"id"`
	CompanyName   string    `db:"company_name" validate:"required"`
	ContactPerson string    `db:"contact_person" validate:"required"`
	Email         string    `db:"email" validate:"required,email"`
	Phone         string    `db:"phone"`
	City          string    `db:"city"`
	Specialty     string    `db:"specialty"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (p *Partner) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(p), nil
}

// Create stores the Partner data as a new record in the database.
func (p *Partner) Create(tx *pop.Connection) error {
	return create(tx, p)
}

func (p *Partner) GetID() uuid.UUID {
	return p.ID
}

func (p *Partner) FindByID(tx *pop.Connection, id uuid.UUID) error {
	if err := tx.Find(p, id); err != nil {
		if !domain.IsOtherThanNoRows(err) {
			return api.NewAppError(err, api.ErrorPartnerNotFound, api.CategoryNotFound)
		}
		return appErrorFromDB(err, api.ErrorQueryFailure)
	}
	return nil
}

func (p *Partners) All(tx *pop.Connection) error {
	err := tx.Order("company_name asc").All(p)
	return appErrorFromDB(err, api.ErrorQueryFailure)
}

func (p *Partner) ConvertToAPI() api.Partner {
	return api.Partner{
		ID:            p.ID,
		CompanyName:   p.CompanyName,
		ContactPerson: p.ContactPerson,
		Email:         p.Email,
		Phone:         p.Phone,
		City:          p.City,
		Specialty:     p.Specialty,
	}
}

func (p *Partners) ConvertToAPI() api.Partners {
	out := make(api.Partners, len(*p))
	for i, pp := range *p {
		out[i] = pp.ConvertToAPI()
	}
	return out
}
