package api

import (
	"time"

	"github.com/gofrs/uuid"
)

type ClaimStatus string

// Well-known claim statuses. The status set is open-ended free text; these
// are the values the admin UI assigns and the only ones that drive behavior.
const (
	ClaimStatusNew        = ClaimStatus("Nauja")
	ClaimStatusConfirming = ClaimStatus("Laukia patvirtinimo")
	ClaimStatusInService  = ClaimStatus("Perduota servisui")
	ClaimStatusResolved   = ClaimStatus("Išspręsta")
)

type Claims []Claim

type Claim struct {
	ID              uuid.UUID      `json:"id"`
	ReferenceNumber string         `json:"claimId"`
	Status          ClaimStatus    `json:"status"`
	CustomerName    string         `json:"customerName"`
	CustomerSurname string         `json:"customerSurname"`
	CustomerEmail   string         `json:"customerEmail"`
	CustomerPhone   string         `json:"customerPhone"`
	Street          string         `json:"street"`
	City            string         `json:"city"`
	PostalCode      string         `json:"postalCode"`
	Country         string         `json:"country"`
	ProductName     string         `json:"productName"`
	Description     string         `json:"description"`
	AssignedPartner *uuid.UUID     `json:"assignedPartner,omitempty"`
	ExtraFields     map[string]any `json:"extraFields,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

type ClaimCreateInput struct {
	CustomerName    string         `json:"customerName"`
	CustomerSurname string         `json:"customerSurname"`
	CustomerEmail   string         `json:"customerEmail" validate:"required,email"`
	CustomerPhone   string         `json:"customerPhone"`
	Street          string         `json:"street"`
	City            string         `json:"city"`
	PostalCode      string         `json:"postalCode"`
	Country         string         `json:"country"`
	ProductName     string         `json:"productName" validate:"required"`
	Description     string         `json:"description"`
	Language        string         `json:"language"`
	ExtraFields     map[string]any `json:"extraFields"`
}

type ClaimStatusUpdateInput struct {
	ClaimID string `json:"claimId" validate:"required"`
	Status  string `json:"status" validate:"required"`
}

type ClaimAssignPartnerInput struct {
	ClaimID   string    `json:"claimId" validate:"required"`
	PartnerID uuid.UUID `json:"partnerId" validate:"required"`
}
