package models

import (
	"time"

	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"

	"github.com/rubineta/claims-api/api"
)

type ClaimHistories []ClaimHistory

// ClaimHistory records one field change on a claim, written by the event
// listeners so that the admin UI can show a timeline.
type ClaimHistory struct {
	ID        uuid.UUID `db:"id"`
	ClaimID   uuid.UUID `db:"claim_id" validate:"required"`
	FieldName string    `db:"field_name" validate:"required"`
	OldValue  string    `db:"old_value"`
	NewValue  string    `db:"new_value"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Claim Claim `belongs_to:"claims" validate:"-"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (ch *ClaimHistory) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(ch), nil
}

// Create stores the ClaimHistory data as a new record in the database.
func (ch *ClaimHistory) Create(tx *pop.Connection) error {
	return create(tx, ch)
}

// AllForClaim returns the history rows of one claim, oldest first.
func (ch *ClaimHistories) AllForClaim(tx *pop.Connection, claimID uuid.UUID) error {
	err := tx.Where("claim_id = ?", claimID).Order("created_at asc").All(ch)
	return appErrorFromDB(err, api.ErrorQueryFailure)
}
