package grifts

import (
	"fmt"

	"github.com/gobuffalo/grift/grift"
	"github.com/gobuffalo/pop/v6"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/models"
)

var _ = grift.Namespace("db", func() {
	grift.Desc("seed", "Seeds a database")
	_ = grift.Add("seed", func(c *grift.Context) error {
		countUsers := models.Users{}
		count, err := models.DB.Count(countUsers)
		if err != nil {
			return err
		}

		if count > 0 {
			fmt.Printf("\nINFO: It appears that the grifts have already been run, "+
				"since there are already %v users.\n", count)
			return nil
		}

		return models.DB.Transaction(func(tx *pop.Connection) error {
			if err := createUsers(tx); err != nil {
				return err
			}
			return createPartners(tx)
		})
	})
})

func createUsers(tx *pop.Connection) error {
	users := models.Users{
		{
			Email:     "admin@rubineta.lt",
			FirstName: "Sistemos",
			LastName:  "Administratorius",
			Role:      api.UserRoleAdmin,
		},
		{
			Email:     "kokybe@rubineta.lt",
			FirstName: "Kokybės",
			LastName:  "Komanda",
			Role:      api.UserRoleQuality,
		},
	}

	for i := range users {
		if err := users[i].SetPassword("ChangeMe123!"); err != nil {
			return fmt.Errorf("error hashing seed password: %w", err)
		}
		if err := users[i].Create(tx); err != nil {
			return fmt.Errorf("error creating seed user %s: %w", users[i].Email, err)
		}
		fmt.Printf("created user %s\n", users[i].Email)
	}
	return nil
}

func createPartners(tx *pop.Connection) error {
	partners := models.Partners{
		{
			CompanyName:   "UAB Santechnikos servisas",
			ContactPerson: "Tomas Petrauskas",
			Email:         "servisas@santechnika.lt",
			Phone:         "+37061111111",
			City:          "Vilnius",
			Specialty:     "maišytuvai",
		},
		{
			CompanyName:   "MB Vandens meistrai",
			ContactPerson: "Rasa Kazlauskienė",
			Email:         "info@vandensmeistrai.lt",
			Phone:         "+37062222222",
			City:          "Kaunas",
			Specialty:     "dušo sistemos",
		},
	}

	for i := range partners {
		if err := partners[i].Create(tx); err != nil {
			return fmt.Errorf("error creating seed partner %s: %w", partners[i].CompanyName, err)
		}
		fmt.Printf("created partner %s\n", partners[i].CompanyName)
	}
	return nil
}
