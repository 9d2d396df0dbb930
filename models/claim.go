package models

import (
	"time"

	"github.com/gobuffalo/events"
	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/pop/v6/slices"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/domain"
)

// statusesClearingPartner are the statuses that pull a claim back from a
// service partner; setting one of them detaches the assigned partner.
var statusesClearingPartner = map[api.ClaimStatus]struct{}{
	api.ClaimStatusNew:        {},
	api.ClaimStatusConfirming: {},
}

type Claims []Claim

type Claim struct {
	ID                uuid.UUID       `db:"id"`
	ReferenceNumber   string          `db:"reference_number" validate:"required"`
	Status            api.ClaimStatus `db:"status" validate:"required"`
	CustomerName      string          `db:"customer_name"`
	CustomerSurname   string          `db:"customer_surname"`
	CustomerEmail     string          `db:"customer_email" validate:"required,email"`
	CustomerPhone     string          `db:"customer_phone"`
	Street            string          `db:"street"`
	City              string          `db:"city"`
	PostalCode        string          `db:"postal_code"`
	Country           string          `db:"country"`
	ProductName       string          `db:"product_name" validate:"required"`
	Description       string          `db:"description"`
	Language          string          `db:"language"`
	AssignedPartnerID nulls.UUID      `db:"assigned_partner_id"`
	ExtraFields       slices.Map      `db:"extra_fields"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`

	AssignedPartner Partner `belongs_to:"partners" validate:"-"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (c *Claim) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(c), nil
}

// Create stores the Claim data as a new record in the database. A reference
// number is generated if none is set, and the status defaults to "Nauja".
func (c *Claim) Create(tx *pop.Connection) error {
	if c.ReferenceNumber == "" {
		c.ReferenceNumber = domain.NewClaimReference()
	}
	if c.Status == "" {
		c.Status = api.ClaimStatusNew
	}
	if err := create(tx, c); err != nil {
		return err
	}

	emitEvent(events.Event{
		Kind:    domain.EventApiClaimCreated,
		Message: "claim created",
		Payload: events.Payload{domain.EventPayloadID: c.ID},
	})
	return nil
}

// Update writes the Claim data to an existing database record.
func (c *Claim) Update(tx *pop.Connection) error {
	return update(tx, c)
}

func (c *Claim) GetID() uuid.UUID {
	return c.ID
}

func (c *Claim) FindByID(tx *pop.Connection, id uuid.UUID) error {
	return find(tx, c, id)
}

// FindByReferenceNumber locates a claim by its human-facing reference number,
// the identifier the front end and email templates call `claimId`.
func (c *Claim) FindByReferenceNumber(tx *pop.Connection, ref string) error {
	if err := tx.Where("reference_number = ?", ref).First(c); err != nil {
		if !domain.IsOtherThanNoRows(err) {
			return api.NewAppError(err, api.ErrorClaimNotFound, api.CategoryNotFound)
		}
		return appErrorFromDB(err, api.ErrorQueryFailure)
	}
	return nil
}

// UpdateStatus sets a new status on the claim and persists it. Statuses that
// take the claim back from a partner also clear the partner assignment.
func (c *Claim) UpdateStatus(tx *pop.Connection, newStatus api.ClaimStatus) error {
	oldStatus := c.Status
	c.Status = newStatus

	if _, ok := statusesClearingPartner[newStatus]; ok {
		c.AssignedPartnerID = nulls.UUID{}
	}

	if err := update(tx, c); err != nil {
		return err
	}

	emitEvent(events.Event{
		Kind:    domain.EventApiClaimStatusChanged,
		Message: "claim status changed",
		Payload: events.Payload{
			domain.EventPayloadID: c.ID,
			"oldValue":            string(oldStatus),
			"newValue":            string(newStatus),
		},
	})
	return nil
}

// AssignPartner attaches a service partner to the claim.
func (c *Claim) AssignPartner(tx *pop.Connection, partner Partner) error {
	oldID := ""
	if c.AssignedPartnerID.Valid {
		oldID = c.AssignedPartnerID.UUID.String()
	}

	c.AssignedPartnerID = nulls.NewUUID(partner.ID)
	if err := update(tx, c); err != nil {
		return err
	}

	emitEvent(events.Event{
		Kind:    domain.EventApiClaimPartnerAssigned,
		Message: "claim assigned to partner",
		Payload: events.Payload{
			domain.EventPayloadID: c.ID,
			"oldValue":            oldID,
			"newValue":            partner.ID.String(),
		},
	})
	return nil
}

// LoadAssignedPartner - a simple wrapper method for loading the partner on the struct
func (c *Claim) LoadAssignedPartner(tx *pop.Connection, reload bool) {
	if c.AssignedPartnerID.Valid && (c.AssignedPartner.ID == uuid.Nil || reload) {
		if err := tx.Load(c, "AssignedPartner"); err != nil {
			panic("database error loading Claim.AssignedPartner, " + err.Error())
		}
	}
}

func (c *Claims) All(tx *pop.Connection) error {
	err := tx.Order("created_at desc").All(c)
	return appErrorFromDB(err, api.ErrorQueryFailure)
}

func (c *Claim) ConvertToAPI() api.Claim {
	out := api.Claim{
		ID:              c.ID,
		ReferenceNumber: c.ReferenceNumber,
		Status:          c.Status,
		CustomerName:    c.CustomerName,
		CustomerSurname: c.CustomerSurname,
		CustomerEmail:   c.CustomerEmail,
		CustomerPhone:   c.CustomerPhone,
		Street:          c.Street,
		City:            c.City,
		PostalCode:      c.PostalCode,
		Country:         c.Country,
		ProductName:     c.ProductName,
		Description:     c.Description,
		ExtraFields:     map[string]any(c.ExtraFields),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	if c.AssignedPartnerID.Valid {
		id := c.AssignedPartnerID.UUID
		out.AssignedPartner = &id
	}
	return out
}

func (c *Claims) ConvertToAPI() api.Claims {
	out := make(api.Claims, len(*c))
	for i, cc := range *c {
		out[i] = cc.ConvertToAPI()
	}
	return out
}
