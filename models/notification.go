package models

import (
	"time"

	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"

	"github.com/rubineta/claims-api/api"
)

type Notifications []Notification

// Notification is the audit record of one outbound email. The send itself is
// synchronous; this row is written after the transport accepts the message.
type Notification struct {
	ID        uuid.UUID  `db:"id"`
	ClaimID   nulls.UUID `db:"claim_id"`
	Event     string     `db:"event" validate:"required"`
	ToEmail   string     `db:"to_email" validate:"required"`
	Subject   string     `db:"subject" validate:"required"`
	Body      string     `db:"body"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`

	Claim Claim `belongs_to:"claims" validate:"-"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (n *Notification) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(n), nil
}

// Create stores the Notification data as a new record in the database.
func (n *Notification) Create(tx *pop.Connection) error {
	return create(tx, n)
}

// AllForClaim returns the notifications recorded against one claim.
func (n *Notifications) AllForClaim(tx *pop.Connection, claimID uuid.UUID) error {
	err := tx.Where("claim_id = ?", claimID).Order("created_at asc").All(n)
	return appErrorFromDB(err, api.ErrorQueryFailure)
}
