package models

import (
	"github.com/gobuffalo/nulls"
)

func (ms *ModelSuite) Test_Notification_Create() {
	claim := CreateClaimFixtures(ms.DB, 1).Claims[0]

	notification := Notification{
		ClaimID: nulls.NewUUID(claim.ID),
		Event:   "claim-confirmation",
		ToEmail: claim.CustomerEmail,
		Subject: "Pretenzija #" + claim.ReferenceNumber + " priimta",
		Body:    "Sveiki",
	}
	ms.NoError(notification.Create(ms.DB))

	var forClaim Notifications
	ms.NoError(forClaim.AllForClaim(ms.DB, claim.ID))
	ms.Len(forClaim, 1)
	ms.Equal("claim-confirmation", forClaim[0].Event)
}

func (ms *ModelSuite) Test_Notification_Create_WithoutClaim() {
	notification := Notification{
		Event:   "password-reset",
		ToEmail: "jonas@example.com",
		Subject: "Atkurti slaptažodį – Rubineta",
	}
	ms.NoError(notification.Create(ms.DB), "a notification with no claim reference is valid")
}

func (ms *ModelSuite) Test_ClaimHistory_AllForClaim() {
	claim := CreateClaimFixtures(ms.DB, 1).Claims[0]

	first := ClaimHistory{
		ClaimID:   claim.ID,
		FieldName: "status",
		OldValue:  "Nauja",
		NewValue:  "Perduota servisui",
	}
	ms.NoError(first.Create(ms.DB))

	second := ClaimHistory{
		ClaimID:   claim.ID,
		FieldName: "status",
		OldValue:  "Perduota servisui",
		NewValue:  "Išspręsta",
	}
	ms.NoError(second.Create(ms.DB))

	var histories ClaimHistories
	ms.NoError(histories.AllForClaim(ms.DB, claim.ID))
	ms.Len(histories, 2)
	ms.Equal("Nauja", histories[0].OldValue, "history should be ordered oldest first")
}
