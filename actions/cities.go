package actions

import (
	"strings"

	"github.com/gobuffalo/buffalo"
	"github.com/pkg/errors"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/domain"
	"github.com/rubineta/claims-api/geo"
)

// countriesList returns the country codes the claim form accepts.
func countriesList(c buffalo.Context) error {
	return renderOk(c, domain.SupportedCountries)
}

// citiesList answers a city autocomplete query: cities of one country whose
// names start with `q`, from the cached per-country list.
func citiesList(c buffalo.Context) error {
	if domain.Env.GeonamesUsername == "" {
		err := errors.New("geonames username is not configured")
		return reportError(c, api.NewAppError(err, api.ErrorGeonamesNotConfigured, api.CategoryInternal))
	}

	country := strings.ToUpper(c.Param("country"))
	if country == "" {
		country = "LT"
	}
	if !domain.IsStringInSlice(country, domain.SupportedCountries) {
		err := errors.Errorf("unsupported country %q", country)
		return reportError(c, api.NewAppError(err, api.ErrorUnsupportedCountry, api.CategoryUser))
	}

	newExtra(c, "country", country)

	cities, err := cityLookup.Cities(c, country, c.Param("q"), domain.Env.CityResultLimit)
	if err != nil {
		if errors.Is(err, geo.ErrUpstream) {
			return reportError(c, api.NewAppError(err, api.ErrorGeonamesFailure, api.CategoryUpstream))
		}
		return reportError(c, api.NewAppError(err, api.ErrorGeonamesFailure, api.CategoryInternal))
	}

	return renderOk(c, cities)
}
