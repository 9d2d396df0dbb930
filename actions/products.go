package actions

import (
	"strconv"

	"github.com/gobuffalo/buffalo"

	"github.com/rubineta/claims-api/api"
)

// productsList proxies one page of the webshop catalog.
func productsList(c buffalo.Context) error {
	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 20)

	products, err := productLookup.Products(c, page, perPage)
	if err != nil {
		return reportError(c, api.NewAppError(err, api.ErrorCatalogFailure, api.CategoryInternal))
	}

	return renderOk(c, products)
}

func queryInt(c buffalo.Context, name string, fallback int) int {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
