package actions

import (
	"encoding/json"
	"net/http"

	"github.com/gobuffalo/buffalo"
	"github.com/gobuffalo/buffalo/render"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/domain"
)

var r = render.New(render.Options{DefaultContentType: domain.ContentJson})

// StrictBind hydrates a struct with values from a POST request, returning an error if the
// request includes fields not defined in the struct
func StrictBind(c buffalo.Context, dest any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return api.NewAppError(err, api.ErrorInvalidRequestBody, api.CategoryUser)
	}
	return nil
}

// reportError logs an error with details and renders the error with buffalo.Render.
func reportError(c buffalo.Context, err error) error {
	appErr, ok := err.(*api.AppError)
	if !ok {
		appErr = appErrorFromErr(err)
	}
	appErr.SetHttpStatusFromCategory()

	if appErr.Extras == nil {
		appErr.Extras = map[string]any{}
	}

	appErr.Extras = domain.MergeExtras([]map[string]any{getExtras(c), appErr.Extras})
	appErr.Extras["function"] = domain.GetFunctionName(2)
	appErr.Extras["key"] = appErr.Key
	appErr.Extras["status"] = appErr.HttpStatus
	appErr.Extras["method"] = c.Request().Method
	appErr.Extras["URI"] = c.Request().RequestURI
	appErr.Extras["IP"] = c.Request().RemoteAddr
	domain.Error(c, appErr.Error(), appErr.Extras)

	appErr.LoadTranslatedMessage(c)

	// clear out debugging info if not in development or test
	if domain.Env.GoEnv == domain.EnvDevelopment || domain.Env.GoEnv == domain.EnvTest {
		if appErr.Err != nil {
			appErr.DebugMsg = appErr.Err.Error()
		}
	} else {
		appErr.Extras = map[string]any{}
	}

	return c.Render(appErr.HttpStatus, r.JSON(appErr))
}

func appErrorFromErr(err error) *api.AppError {
	return &api.AppError{
		HttpStatus: http.StatusInternalServerError,
		Key:        api.ErrorUnknown,
		DebugMsg:   err.Error(),
		Err:        err,
	}
}

func getExtras(c buffalo.Context) map[string]any {
	extras, _ := c.Value(domain.ContextKeyExtras).(map[string]any)
	if extras == nil {
		extras = map[string]any{}
	}
	return extras
}

func newExtra(c buffalo.Context, key string, e any) {
	extras := getExtras(c)
	extras[key] = e
	c.Set(domain.ContextKeyExtras, extras)
}

func renderOk(c buffalo.Context, v any) error {
	return c.Render(http.StatusOK, r.JSON(v))
}
