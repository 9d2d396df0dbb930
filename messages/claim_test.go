package messages

import (
	"testing"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/domain"
)

func (ts *TestSuite) Test_Confirmation() {
	t := ts.T()

	input := api.ConfirmationInput{
		Email:   "jonas@example.com",
		ClaimID: "PRET-1",
	}

	tests := []struct {
		name         string
		lang         api.Language
		wantSubject  string
		wantContains string
	}{
		{
			name:         "lithuanian",
			lang:         api.LanguageLithuanian,
			wantSubject:  "Pretenzija #PRET-1 priimta",
			wantContains: "Jūsų pretenzija #PRET-1 sėkmingai priimta",
		},
		{
			name:         "english",
			lang:         api.LanguageEnglish,
			wantSubject:  "Claim #PRET-1 accepted",
			wantContains: "Your claim #PRET-1 has been successfully accepted",
		},
		{
			name:         "russian",
			lang:         api.LanguageRussian,
			wantSubject:  "Претензия #PRET-1 принята",
			wantContains: "Ваша претензия #PRET-1 успешно принята",
		},
		{
			name:         "latvian",
			lang:         api.LanguageLatvian,
			wantSubject:  "Pretenzija #PRET-1 pieņemta",
			wantContains: "Jūsu pretenzija #PRET-1 ir veiksmīgi pieņemta",
		},
		{
			name:         "unknown code falls back to lithuanian",
			lang:         api.Language("de"),
			wantSubject:  "Pretenzija #PRET-1 priimta",
			wantContains: "Jūsų pretenzija #PRET-1 sėkmingai priimta",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Confirmation(tt.lang, input)
			ts.Equal("jonas@example.com", msg.ToEmail)
			ts.Equal(domain.Env.EmailFromAddress, msg.FromEmail)
			ts.Equal(tt.wantSubject, msg.Subject)
			ts.Contains(msg.Body, tt.wantContains)
			ts.NotContains(msg.Body, "/login.html", "anonymous template must not link to the cabinet")
		})
	}
}

func (ts *TestSuite) Test_Confirmation_Registered() {
	input := api.ConfirmationInput{
		Email:        "jonas@example.com",
		ClaimID:      "PRET-2",
		IsRegistered: true,
	}

	msg := Confirmation(api.LanguageLithuanian, input)
	ts.Contains(msg.Body, domain.Env.UIURL+"/login.html?claim=PRET-2")
}

func (ts *TestSuite) Test_PartnerAssignment() {
	input := api.PartnerAssignmentInput{
		PartnerEmail:         "servisas@example.com",
		PartnerContactPerson: "Tomas",
		ClaimID:              "PRET-3",
		Note:                 "Patikrinti maišytuvo kasetę",
		Customer: &api.CustomerContact{
			Name:    "Jonas",
			Surname: "Jonaitis",
			Phone:   "+37061111111",
			Email:   "jonas@example.com",
			Street:  "Gedimino pr. 1",
			City:    "Vilnius",
			Postal:  "LT-01103",
		},
		Attachments: []api.ClaimAttachment{
			{Name: "nuotrauka.jpg", URL: "https://files.example.com/nuotrauka.jpg"},
		},
		ClaimLink: "https://pretenzijos.example.com/claim-view.html?id=PRET-3",
	}

	msg := PartnerAssignment(input)
	ts.Equal("servisas@example.com", msg.ToEmail)
	ts.Equal("Tomas", msg.ToName)
	ts.Equal("Pretenzija PRET-3 – perduota jūsų aptarnavimui", msg.Subject)

	ts.Contains(msg.Body, "Sveiki, Tomas,")
	ts.Contains(msg.Body, "- Rekomendacija: Patikrinti maišytuvo kasetę")
	ts.Contains(msg.Body, "KONTAKTINĖ INFORMACIJA")
	ts.Contains(msg.Body, "- Vardas: Jonas Jonaitis")
	ts.Contains(msg.Body, "- Adresas: Gedimino pr. 1, Vilnius, LT-01103")
	ts.Contains(msg.Body, "- nuotrauka.jpg: https://files.example.com/nuotrauka.jpg")
	ts.Contains(msg.Body, "Peržiūrėti visą užduotį: https://pretenzijos.example.com/claim-view.html?id=PRET-3")
}

func (ts *TestSuite) Test_PartnerAssignment_Placeholders() {
	input := api.PartnerAssignmentInput{
		PartnerEmail:         "servisas@example.com",
		PartnerContactPerson: "Tomas",
		ClaimID:              "PRET-4",
	}

	msg := PartnerAssignment(input)
	ts.Contains(msg.Body, "- Rekomendacija: Nėra papildomų pastabų")
	ts.Contains(msg.Body, "- Nėra pridėtų dokumentų")
	ts.NotContains(msg.Body, "KONTAKTINĖ INFORMACIJA")
	ts.NotContains(msg.Body, "Peržiūrėti visą užduotį")
}

func (ts *TestSuite) Test_QualityAlert() {
	msg := QualityAlert(api.QualityAlertInput{ClaimID: "PRET-5"})
	ts.Equal(domain.Env.QualityEmail, msg.ToEmail)
	ts.Equal("🔔 Nauja pretenzija #PRET-5", msg.Subject)
	ts.Contains(msg.Body, "Sistema gavo naują pretenziją: #PRET-5")
	ts.Contains(msg.Body, domain.Env.UIURL+"/admin.html")
}

func (ts *TestSuite) Test_Resolution() {
	input := api.ResolutionInput{
		ClaimID:       "PRET-6",
		CustomerName:  "Jonas",
		CustomerEmail: "jonas@example.com",
		ProductName:   "Maišytuvas RUB-77",
	}

	customer := ResolutionCustomer(input)
	ts.Equal("jonas@example.com", customer.ToEmail)
	ts.Equal("✅ Jūsų pretenzija #PRET-6 išspręsta", customer.Subject)
	ts.Contains(customer.Body, "produktas: Maišytuvas RUB-77")
	ts.Contains(customer.Body, "info@rubineta.lt")

	quality := ResolutionQuality(input)
	ts.Equal(domain.Env.QualityEmail, quality.ToEmail)
	ts.Equal("🔧 Meistras išsprendė pretenziją #PRET-6", quality.Subject)
	ts.Contains(quality.Body, domain.Env.UIURL+"/claim-view.html?id=PRET-6")
}

func (ts *TestSuite) Test_StatusChange() {
	t := ts.T()

	tests := []struct {
		name         string
		status       string
		wantSubject  string
		wantContains string
	}{
		{
			name:         "handed to service",
			status:       "Perduota servisui",
			wantSubject:  "Pretenzija #PRET-7 – perduota servisui",
			wantContains: "buvo perduota serviso partneriui",
		},
		{
			name:         "resolved",
			status:       "Išspręsta",
			wantSubject:  "✅ Pretenzija #PRET-7 išspręsta",
			wantContains: "yra išspręsta",
		},
		{
			name:         "generic",
			status:       "Laukia dalių",
			wantSubject:  "Pretenzija #PRET-7 – būsena pasikeitė",
			wantContains: "būsena pasikeitė į: Laukia dalių",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := StatusChange(api.StatusChangeInput{
				ClaimID:       "PRET-7",
				CustomerName:  "Jonas",
				CustomerEmail: "jonas@example.com",
				Status:        tt.status,
			})
			ts.Equal("jonas@example.com", msg.ToEmail)
			ts.Equal(tt.wantSubject, msg.Subject)
			ts.Contains(msg.Body, tt.wantContains)
		})
	}
}

func (ts *TestSuite) Test_FeedbackSurvey() {
	msg := FeedbackSurvey(api.FeedbackSurveyInput{
		Email:        "jonas@example.com",
		ClaimID:      "PRET-8",
		FeedbackLink: "https://forms.example.com/apklausa",
	})
	ts.Equal("jonas@example.com", msg.ToEmail)
	ts.Equal("Įvertinkite mūsų aptarnavimą – pretenzija #PRET-8", msg.Subject)
	ts.Contains(msg.Body, "https://forms.example.com/apklausa")
}
