package models

import (
	"strings"
	"testing"

	"github.com/gofrs/uuid"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/domain"
)

func (ms *ModelSuite) Test_Claim_Create() {
	claim := Claim{
		CustomerEmail: "jonas@example.com",
		ProductName:   "Maišytuvas UNO-8",
		Country:       "LT",
	}

	ms.NoError(claim.Create(ms.DB))
	ms.True(strings.HasPrefix(claim.ReferenceNumber, domain.ClaimReferencePrefix+"-"),
		"reference number %q should start with the claim prefix", claim.ReferenceNumber)
	ms.Equal(api.ClaimStatusNew, claim.Status)
	ms.NotEqual(uuid.Nil, claim.ID, "id should be set")
}

func (ms *ModelSuite) Test_Claim_Create_Invalid() {
	claim := Claim{ProductName: "Maišytuvas"}
	ms.Error(claim.Create(ms.DB), "claim without customer email should fail validation")
}

func (ms *ModelSuite) Test_Claim_FindByReferenceNumber() {
	claim := CreateClaimFixtures(ms.DB, 1).Claims[0]

	var found Claim
	ms.NoError(found.FindByReferenceNumber(ms.DB, claim.ReferenceNumber))
	ms.Equal(claim.ID, found.ID)

	var notFound Claim
	err := notFound.FindByReferenceNumber(ms.DB, "PRET-0-XXXX")
	ms.Error(err)

	appErr, ok := err.(*api.AppError)
	ms.True(ok, "error should be an AppError")
	ms.Equal(api.ErrorClaimNotFound, appErr.Key)
	ms.Equal(api.CategoryNotFound, appErr.Category)
}

func (ms *ModelSuite) Test_Claim_UpdateStatus_ClearsPartner() {
	claims := CreateClaimFixtures(ms.DB, 2).Claims
	partner := CreatePartnerFixtures(ms.DB, 1).Partners[0]

	tests := []struct {
		name        string
		status      api.ClaimStatus
		wantCleared bool
	}{
		{name: "back to new", status: api.ClaimStatusNew, wantCleared: true},
		{name: "back to confirming", status: api.ClaimStatusConfirming, wantCleared: true},
		{name: "forward to resolved", status: api.ClaimStatusResolved, wantCleared: false},
	}
	for _, tt := range tests {
		ms.T().Run(tt.name, func(t *testing.T) {
			claim := claims[0]
			ms.NoError(claim.AssignPartner(ms.DB, partner))

			ms.NoError(claim.UpdateStatus(ms.DB, tt.status))

			var fromDB Claim
			ms.NoError(fromDB.FindByID(ms.DB, claim.ID))
			ms.Equal(tt.status, fromDB.Status)
			ms.Equal(tt.wantCleared, !fromDB.AssignedPartnerID.Valid)
		})
	}
}

func (ms *ModelSuite) Test_Claim_LoadAssignedPartner() {
	claim := CreateClaimFixtures(ms.DB, 1).Claims[0]
	partner := CreatePartnerFixtures(ms.DB, 1).Partners[0]
	ms.NoError(claim.AssignPartner(ms.DB, partner))

	var fromDB Claim
	ms.NoError(fromDB.FindByID(ms.DB, claim.ID))
	fromDB.LoadAssignedPartner(ms.DB, false)
	ms.Equal(partner.CompanyName, fromDB.AssignedPartner.CompanyName)
}

func (ms *ModelSuite) Test_Claims_All_NewestFirst() {
	CreateClaimFixtures(ms.DB, 3)

	var claims Claims
	ms.NoError(claims.All(ms.DB))
	ms.Len(claims, 3)
	for i := 1; i < len(claims); i++ {
		ms.False(claims[i].CreatedAt.After(claims[i-1].CreatedAt), "claims should be ordered newest first")
	}
}

func (ms *ModelSuite) Test_Claim_ConvertToAPI() {
	claim := CreateClaimFixtures(ms.DB, 1).Claims[0]
	partner := CreatePartnerFixtures(ms.DB, 1).Partners[0]
	ms.NoError(claim.AssignPartner(ms.DB, partner))

	got := claim.ConvertToAPI()
	ms.Equal(claim.ReferenceNumber, got.ReferenceNumber)
	ms.Equal(claim.CustomerEmail, got.CustomerEmail)
	ms.NotNil(got.AssignedPartner)
	ms.Equal(partner.ID, *got.AssignedPartner)
}
