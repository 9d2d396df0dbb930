package actions

import (
	"fmt"
	"net/http"

	"github.com/gobuffalo/buffalo"

	"github.com/rubineta/claims-api/domain"
)

// homeHandler is a default handler to serve up
// a home page.
func homeHandler(c buffalo.Context) error {
	message := fmt.Sprintf("Welcome to the %s API", domain.Env.AppName)
	return renderOk(c, map[string]string{"message": message})
}

// statusHandler checks the app status
func statusHandler(c buffalo.Context) error {
	return c.Render(http.StatusNoContent, nil)
}
