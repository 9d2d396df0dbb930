package listeners

import (
	"github.com/gobuffalo/events"

	"github.com/rubineta/claims-api/domain"
	"github.com/rubineta/claims-api/models"
)

func claimCreated(e events.Event) {
	if e.Kind != domain.EventApiClaimCreated {
		return
	}

	defer panicRecover(e.Kind)

	var claim models.Claim
	if err := findObject(e.Payload, &claim, e.Kind); err != nil {
		return
	}

	domain.Logger.Printf("new claim %s for %s", claim.ReferenceNumber, claim.ProductName)
}

func claimStatusChanged(e events.Event) {
	if e.Kind != domain.EventApiClaimStatusChanged {
		return
	}

	defer panicRecover(e.Kind)

	var claim models.Claim
	if err := findObject(e.Payload, &claim, e.Kind); err != nil {
		return
	}

	recordHistory(claim, "status", e)
}

func claimPartnerAssigned(e events.Event) {
	if e.Kind != domain.EventApiClaimPartnerAssigned {
		return
	}

	defer panicRecover(e.Kind)

	var claim models.Claim
	if err := findObject(e.Payload, &claim, e.Kind); err != nil {
		return
	}

	recordHistory(claim, "assigned_partner_id", e)
}

// recordHistory persists one timeline row for a field change carried in the
// event payload.
func recordHistory(claim models.Claim, fieldName string, e events.Event) {
	history := models.ClaimHistory{
		ClaimID:   claim.ID,
		FieldName: fieldName,
		OldValue:  payloadString(e.Payload, "oldValue"),
		NewValue:  payloadString(e.Payload, "newValue"),
	}
	if err := history.Create(models.DB); err != nil {
		domain.ErrLogger.Printf("Failed to record claim history in %s, %s", e.Kind, err)
	}
}
