package actions

import (
	"errors"

	"github.com/gobuffalo/buffalo"
	"github.com/gofrs/uuid"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/models"
)

func usersList(c buffalo.Context) error {
	tx := models.Tx(c)

	var users models.Users
	if err := users.All(tx); err != nil {
		return reportError(c, err)
	}

	return renderOk(c, users.ConvertToAPI())
}

// usersMe returns the user the session belongs to.
func usersMe(c buffalo.Context) error {
	user := models.CurrentUser(c)
	if user.ID == uuid.Nil {
		err := api.NewAppError(errors.New("no user in session"),
			api.ErrorInvalidCredentials, api.CategoryUnauthorized)
		return reportError(c, err)
	}

	return renderOk(c, user.ConvertToAPI())
}
