package actions

import (
	"net/http"
	"strings"
	"testing"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/domain"
	"github.com/rubineta/claims-api/models"
)

func (as *ActionSuite) Test_ClaimsCreate() {
	res := as.JSON("/api/claims").Post(api.ClaimCreateInput{
		CustomerName:    "Jonas",
		CustomerSurname: "Jonaitis",
		CustomerEmail:   "jonas@example.com",
		Country:         "LT",
		ProductName:     "Maišytuvas UNO-8",
		Description:     "Laša iš po rankenėlės",
		Language:        "lt",
		ExtraFields:     map[string]any{"purchaseDate": "2026-01-15"},
	})

	as.Equal(http.StatusOK, res.Code)

	var claim api.Claim
	as.NoError(as.decodeBody(res.Body.Bytes(), &claim))
	as.True(strings.HasPrefix(claim.ReferenceNumber, domain.ClaimReferencePrefix+"-"))
	as.Equal(api.ClaimStatusNew, claim.Status)
	as.Equal("2026-01-15", claim.ExtraFields["purchaseDate"])

	var fromDB models.Claim
	as.NoError(fromDB.FindByReferenceNumber(as.DB, claim.ReferenceNumber))
	as.Equal("jonas@example.com", fromDB.CustomerEmail)
}

func (as *ActionSuite) Test_ClaimsCreate_MissingProduct() {
	res := as.JSON("/api/claims").Post(api.ClaimCreateInput{
		CustomerEmail: "jonas@example.com",
	})

	as.Equal(http.StatusBadRequest, res.Code)
	as.Contains(res.Body.String(), api.ErrorValidation.String())
}

func (as *ActionSuite) Test_ClaimsList() {
	f := models.CreateClaimFixtures(as.DB, 3)

	res := as.JSON("/api/claims").Get()

	as.Equal(http.StatusOK, res.Code)

	var claims api.Claims
	as.NoError(as.decodeBody(res.Body.Bytes(), &claims))
	as.Len(claims, 3)

	wantRefs := make([]string, len(f.Claims))
	for i, c := range f.Claims {
		wantRefs[i] = c.ReferenceNumber
	}
	for _, c := range claims {
		as.Contains(wantRefs, c.ReferenceNumber)
	}
}

func (as *ActionSuite) Test_ClaimsView() {
	f := models.CreateClaimFixtures(as.DB, 1)
	claim := f.Claims[0]

	res := as.JSON("/api/claims/" + claim.ReferenceNumber).Get()
	as.Equal(http.StatusOK, res.Code)
	as.verifyResponseData([]string{claim.ReferenceNumber, claim.CustomerEmail}, res.Body.String(), "claimsView")

	res = as.JSON("/api/claims/PRET-does-not-exist").Get()
	as.Equal(http.StatusNotFound, res.Code)
}

func (as *ActionSuite) Test_ClaimsUpdateStatus() {
	f := models.CreateClaimFixtures(as.DB, 1)
	claim := f.Claims[0]

	res := as.JSON("/api/update-status").Post(api.ClaimStatusUpdateInput{
		ClaimID: claim.ReferenceNumber,
		Status:  "Perduota servisui",
	})

	as.Equal(http.StatusOK, res.Code)

	var fromDB models.Claim
	as.NoError(fromDB.FindByID(as.DB, claim.ID))
	as.Equal(api.ClaimStatusInService, fromDB.Status)
}

func (as *ActionSuite) Test_ClaimsUpdateStatus_UnknownClaim() {
	res := as.JSON("/api/update-status").Post(api.ClaimStatusUpdateInput{
		ClaimID: "PRET-does-not-exist",
		Status:  "Išspręsta",
	})

	as.Equal(http.StatusNotFound, res.Code)
	as.Contains(res.Body.String(), api.ErrorClaimNotFound.String())
}

func (as *ActionSuite) Test_ClaimsUpdateStatus_ClearsPartner() {
	for _, status := range []string{"Nauja", "Laukia patvirtinimo"} {
		as.T().Run(status, func(t *testing.T) {
			claims := models.CreateClaimFixtures(as.DB, 1).Claims
			partners := models.CreatePartnerFixtures(as.DB, 1).Partners

			claim := claims[0]
			as.NoError(claim.AssignPartner(as.DB, partners[0]))

			res := as.JSON("/api/update-status").Post(api.ClaimStatusUpdateInput{
				ClaimID: claim.ReferenceNumber,
				Status:  status,
			})
			as.Equal(http.StatusOK, res.Code)

			var fromDB models.Claim
			as.NoError(fromDB.FindByID(as.DB, claim.ID))
			as.False(fromDB.AssignedPartnerID.Valid, "assigned partner must be cleared")
		})
	}
}

func (as *ActionSuite) Test_ClaimsUpdateStatus_KeepsPartner() {
	claims := models.CreateClaimFixtures(as.DB, 1).Claims
	partners := models.CreatePartnerFixtures(as.DB, 1).Partners

	claim := claims[0]
	as.NoError(claim.AssignPartner(as.DB, partners[0]))

	res := as.JSON("/api/update-status").Post(api.ClaimStatusUpdateInput{
		ClaimID: claim.ReferenceNumber,
		Status:  "Išspręsta",
	})
	as.Equal(http.StatusOK, res.Code)

	var fromDB models.Claim
	as.NoError(fromDB.FindByID(as.DB, claim.ID))
	as.True(fromDB.AssignedPartnerID.Valid, "resolving must not detach the partner")
}

func (as *ActionSuite) Test_ClaimsAssignPartner() {
	claims := models.CreateClaimFixtures(as.DB, 1).Claims
	partners := models.CreatePartnerFixtures(as.DB, 1).Partners

	res := as.JSON("/api/assign-partner").Post(api.ClaimAssignPartnerInput{
		ClaimID:   claims[0].ReferenceNumber,
		PartnerID: partners[0].ID,
	})

	as.Equal(http.StatusOK, res.Code)

	var fromDB models.Claim
	as.NoError(fromDB.FindByID(as.DB, claims[0].ID))
	as.True(fromDB.AssignedPartnerID.Valid)
	as.Equal(partners[0].ID, fromDB.AssignedPartnerID.UUID)
}

func (as *ActionSuite) Test_ClaimsAssignPartner_UnknownPartner() {
	claims := models.CreateClaimFixtures(as.DB, 1).Claims

	res := as.JSON("/api/assign-partner").Post(api.ClaimAssignPartnerInput{
		ClaimID:   claims[0].ReferenceNumber,
		PartnerID: domain.GetUUID(),
	})

	as.Equal(http.StatusNotFound, res.Code)
	as.Contains(res.Body.String(), api.ErrorPartnerNotFound.String())
}
