package messages

import (
	"fmt"
	"strings"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/domain"
	"github.com/rubineta/claims-api/notifications"
)

// confirmationTemplates is exhaustive over the languages in the api package.
// Callers resolve unsupported or missing codes to api.DefaultLanguage before
// calling Confirmation.
var confirmationTemplates = map[api.Language]func(claimID string, isRegistered bool) (subject, body string){
	api.LanguageLithuanian: func(claimID string, isRegistered bool) (string, string) {
		subject := fmt.Sprintf("Pretenzija #%s priimta", claimID)
		if isRegistered {
			return subject, fmt.Sprintf(
				"Sveiki,\n\nJūsų pretenzija #%s sėkmingai priimta.\nAtsakysime per 24 valandas.\n"+
					"Prisijunkite į savo kabinetą, kad stebėtumėte būseną:\n%s/login.html?claim=%s\n\n"+
					"Pagarbiai,\nRubineta kokybės komanda",
				claimID, domain.Env.UIURL, claimID)
		}
		return subject, fmt.Sprintf(
			"Sveiki,\n\nJūsų pretenzija #%s sėkmingai priimta.\nAtsakysime per 24 valandas.\n"+
				"Informuojame, kad galite pasiteirauti apie būseną pateikdami šį ID: %s\n\n"+
				"Pagarbiai,\nRubineta kokybės komanda",
			claimID, claimID)
	},
	api.LanguageEnglish: func(claimID string, isRegistered bool) (string, string) {
		subject := fmt.Sprintf("Claim #%s accepted", claimID)
		if isRegistered {
			return subject, fmt.Sprintf(
				"Hello,\n\nYour claim #%s has been successfully accepted.\nWe will respond within 24 hours.\n"+
					"Log in to your account to track the status:\n%s/login.html?claim=%s\n\n"+
					"Best regards,\nRubineta quality team",
				claimID, domain.Env.UIURL, claimID)
		}
		return subject, fmt.Sprintf(
			"Hello,\n\nYour claim #%s has been successfully accepted.\nWe will respond within 24 hours.\n"+
				"You can inquire about the status by providing this ID: %s\n\n"+
				"Best regards,\nRubineta quality team",
			claimID, claimID)
	},
	api.LanguageRussian: func(claimID string, isRegistered bool) (string, string) {
		subject := fmt.Sprintf("Претензия #%s принята", claimID)
		if isRegistered {
			return subject, fmt.Sprintf(
				"Здравствуйте,\n\nВаша претензия #%s успешно принята.\nМы ответим в течение 24 часов.\n"+
					"Войдите в свой кабинет, чтобы следить за статусом:\n%s/login.html?claim=%s\n\n"+
					"С уважением,\nКоманда качества Rubineta",
				claimID, domain.Env.UIURL, claimID)
		}
		return subject, fmt.Sprintf(
			"Здравствуйте,\n\nВаша претензия #%s успешно принята.\nМы ответим в течение 24 часов.\n"+
				"О статусе можно узнать, указав этот ID: %s\n\n"+
				"С уважением,\nКоманда качества Rubineta",
			claimID, claimID)
	},
	api.LanguageLatvian: func(claimID string, isRegistered bool) (string, string) {
		subject := fmt.Sprintf("Pretenzija #%s pieņemta", claimID)
		if isRegistered {
			return subject, fmt.Sprintf(
				"Labdien,\n\nJūsu pretenzija #%s ir veiksmīgi pieņemta.\nAtbildēsim 24 stundu laikā.\n"+
					"Piesakieties savā kontā, lai sekotu statusam:\n%s/login.html?claim=%s\n\n"+
					"Ar cieņu,\nRubineta kvalitātes komanda",
				claimID, domain.Env.UIURL, claimID)
		}
		return subject, fmt.Sprintf(
			"Labdien,\n\nJūsu pretenzija #%s ir veiksmīgi pieņemta.\nAtbildēsim 24 stundu laikā.\n"+
				"Par statusu varat jautāt, norādot šo ID: %s\n\n"+
				"Ar cieņu,\nRubineta kvalitātes komanda",
			claimID, claimID)
	},
}

// Confirmation builds the claim-received email for the customer.
func Confirmation(lang api.Language, input api.ConfirmationInput) notifications.Message {
	tpl, ok := confirmationTemplates[lang]
	if !ok {
		tpl = confirmationTemplates[api.DefaultLanguage]
	}

	msg := notifications.NewEmailMessage()
	msg.ToEmail = input.Email
	msg.Subject, msg.Body = tpl(input.ClaimID, input.IsRegistered)
	return msg
}

// PartnerAssignment builds the email for a service partner a claim has been
// assigned to. The body grows incrementally: recommendation note, an optional
// customer contact block, an attachments list (or a placeholder line), and an
// optional link to the full task.
func PartnerAssignment(input api.PartnerAssignmentInput) notifications.Message {
	var b strings.Builder

	fmt.Fprintf(&b, "Sveiki, %s,\n\nJums priskirta pretenzija:\n", input.PartnerContactPerson)
	fmt.Fprintf(&b, "- ID: %s\n", input.ClaimID)

	note := input.Note
	if note == "" {
		note = "Nėra papildomų pastabų"
	}
	fmt.Fprintf(&b, "- Rekomendacija: %s\n\n", note)

	if c := input.Customer; c != nil {
		b.WriteString("🔹 KONTAKTINĖ INFORMACIJA\n")
		fmt.Fprintf(&b, "- Vardas: %s %s\n", c.Name, c.Surname)
		fmt.Fprintf(&b, "- Telefonas: %s\n", c.Phone)
		fmt.Fprintf(&b, "- El. paštas: %s\n", c.Email)
		fmt.Fprintf(&b, "- Adresas: %s, %s, %s\n\n", c.Street, c.City, c.Postal)
	}

	b.WriteString("Prisegti dokumentai:\n")
	if len(input.Attachments) > 0 {
		for _, att := range input.Attachments {
			fmt.Fprintf(&b, "- %s: %s\n", att.Name, att.URL)
		}
	} else {
		b.WriteString("- Nėra pridėtų dokumentų\n")
	}

	if input.ClaimLink != "" {
		fmt.Fprintf(&b, "\nPeržiūrėti visą užduotį: %s\n\n", input.ClaimLink)
	}

	b.WriteString("Prašome išspręsti problemą ir atnaujinti būseną sistemoje.\n\nGeriausios sveikatos,\nRubineta kokybės komanda\ninfo@rubineta.lt\n+370 612 34567")

	msg := notifications.NewEmailMessage()
	msg.ToName = input.PartnerContactPerson
	msg.ToEmail = input.PartnerEmail
	msg.Subject = fmt.Sprintf("Pretenzija %s – perduota jūsų aptarnavimui", input.ClaimID)
	msg.Body = b.String()
	return msg
}

// QualityAlert builds the internal email announcing a newly received claim.
func QualityAlert(input api.QualityAlertInput) notifications.Message {
	msg := notifications.NewEmailMessage().ToQualityTeam()
	msg.Subject = fmt.Sprintf("🔔 Nauja pretenzija #%s", input.ClaimID)
	msg.Body = fmt.Sprintf(
		"Sveiki,\n\nSistema gavo naują pretenziją: #%s\nPrašome peržiūrėti administratoriaus zonoje: %s/admin.html",
		input.ClaimID, domain.Env.UIURL)
	return msg
}

// ResolutionCustomer builds the email telling the customer their claim is
// resolved.
func ResolutionCustomer(input api.ResolutionInput) notifications.Message {
	msg := notifications.NewEmailMessage()
	msg.ToName = input.CustomerName
	msg.ToEmail = input.CustomerEmail
	msg.Subject = fmt.Sprintf("✅ Jūsų pretenzija #%s išspręsta", input.ClaimID)
	msg.Body = fmt.Sprintf(
		"Sveiki, %s,\n\nJūsų pretenzija #%s (produktas: %s) yra išspręsta.\nDėkojame, kad pasirinkote Rubineta.\n\n%s",
		input.CustomerName, input.ClaimID, input.ProductName, signatureWithContacts)
	return msg
}

// ResolutionQuality builds the internal email asking the quality team to
// verify and close a claim a partner marked as resolved.
func ResolutionQuality(input api.ResolutionInput) notifications.Message {
	msg := notifications.NewEmailMessage().ToQualityTeam()
	msg.Subject = fmt.Sprintf("🔧 Meistras išsprendė pretenziją #%s", input.ClaimID)
	msg.Body = fmt.Sprintf(
		"Meistras pranešė, kad pretenzija #%s (produktas: %s) yra išspręsta.\n"+
			"Prašome patikrinti ir uždaryti užduotį sistemoje.\n\nPeržiūrėti: %s/claim-view.html?id=%s",
		input.ClaimID, input.ProductName, domain.Env.UIURL, input.ClaimID)
	return msg
}

// StatusChange builds the email telling the customer their claim status
// changed. Well-known statuses get a dedicated template; anything else gets
// the generic one naming the new status.
func StatusChange(input api.StatusChangeInput) notifications.Message {
	msg := notifications.NewEmailMessage()
	msg.ToName = input.CustomerName
	msg.ToEmail = input.CustomerEmail

	switch api.ClaimStatus(input.Status) {
	case api.ClaimStatusInService:
		msg.Subject = fmt.Sprintf("Pretenzija #%s – perduota servisui", input.ClaimID)
		msg.Body = fmt.Sprintf(
			"Sveiki, %s,\n\nJūsų pretenzija #%s buvo perduota serviso partneriui.\n"+
				"Meistras susisieks su jumis artimiausiu metu.\n\n%s",
			input.CustomerName, input.ClaimID, signature)
	case api.ClaimStatusResolved:
		msg.Subject = fmt.Sprintf("✅ Pretenzija #%s išspręsta", input.ClaimID)
		msg.Body = fmt.Sprintf(
			"Sveiki, %s,\n\nJūsų pretenzija #%s yra išspręsta.\nDėkojame, kad pasirinkote Rubineta.\n\n%s",
			input.CustomerName, input.ClaimID, signature)
	default:
		msg.Subject = fmt.Sprintf("Pretenzija #%s – būsena pasikeitė", input.ClaimID)
		msg.Body = fmt.Sprintf(
			"Sveiki, %s,\n\nJūsų pretenzijos #%s būsena pasikeitė į: %s.\n\n%s",
			input.CustomerName, input.ClaimID, input.Status, signature)
	}
	return msg
}

// FeedbackSurvey builds the email asking the customer to rate the service.
func FeedbackSurvey(input api.FeedbackSurveyInput) notifications.Message {
	msg := notifications.NewEmailMessage()
	msg.ToEmail = input.Email
	msg.Subject = fmt.Sprintf("Įvertinkite mūsų aptarnavimą – pretenzija #%s", input.ClaimID)
	msg.Body = fmt.Sprintf(
		"Ačiū, kad pasinaudojote mūsų paslaugomis!\n\nPrašome trumpai įvertinti aptarnavimą:\n%s\n\n"+
			"Jūsų nuomonė mums svarbi.\n\n%s",
		input.FeedbackLink, signature)
	return msg
}
