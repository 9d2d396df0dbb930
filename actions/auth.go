package actions

import (
	"github.com/gobuffalo/buffalo"
	"github.com/gofrs/uuid"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/domain"
	"github.com/rubineta/claims-api/models"
)

// setCurrentUser looks up the user id stored in the session at login and, when
// it resolves to a user record, makes the user available to handlers through
// the request context.
func setCurrentUser(next buffalo.Handler) buffalo.Handler {
	return func(c buffalo.Context) error {
		if id, ok := c.Session().Get(domain.ContextKeyCurrentUser).(string); ok && id != "" {
			var user models.User
			if err := user.FindByID(models.Tx(c), uuid.FromStringOrNil(id)); err == nil {
				c.Set(domain.ContextKeyCurrentUser, user)
				newExtra(c, "user_id", user.ID.String())
			}
		}
		return next(c)
	}
}

// login authenticates an admin user by email and password and stores the
// user id in the session cookie.
func login(c buffalo.Context) error {
	var input api.LoginInput
	if err := StrictBind(c, &input); err != nil {
		return reportError(c, err)
	}

	if appErr := api.ValidateInput(input); appErr != nil {
		return reportError(c, appErr)
	}

	tx := models.Tx(c)

	var user models.User
	if err := user.FindByEmail(tx, input.Email); err != nil {
		return reportError(c, err)
	}

	if err := user.VerifyPassword(input.Password); err != nil {
		return reportError(c, err)
	}

	c.Session().Set(domain.ContextKeyCurrentUser, user.ID.String())
	if err := c.Session().Save(); err != nil {
		return reportError(c, api.NewAppError(err, api.ErrorSaveFailure, api.CategoryInternal))
	}

	newExtra(c, "user", user.Email)
	return renderOk(c, user.ConvertToAPI())
}
