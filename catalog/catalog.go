// Package catalog proxies the product listing of the company webshop,
// a WooCommerce-style REST API with static consumer credentials.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/domain"
)

// Client fetches product pages from the upstream commerce API.
type Client struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	HTTPClient     *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:        domain.Env.CatalogAPIURL,
		ConsumerKey:    domain.Env.CatalogConsumerKey,
		ConsumerSecret: domain.Env.CatalogConsumerSecret,
		HTTPClient:     &http.Client{Timeout: time.Second * 30},
	}
}

type catalogProduct struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Permalink string `json:"permalink"`
	Price     string `json:"price"`
	Images    []struct {
		Src string `json:"src"`
		Alt string `json:"alt"`
	} `json:"images"`
}

// Products returns one page of the shop's product listing. Entries whose
// permalink carries a locale path segment (translated shop variants) are
// dropped so the listing only shows the default-locale catalog.
func (c *Client) Products(ctx context.Context, page, perPage int) (api.Products, error) {
	u := fmt.Sprintf("%s/wp-json/wc/v3/products?page=%d&per_page=%d&consumer_key=%s&consumer_secret=%s",
		c.BaseURL, page, perPage, url.QueryEscape(c.ConsumerKey), url.QueryEscape(c.ConsumerSecret))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "error creating catalog request")
	}

	response, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "error calling catalog")
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode != http.StatusOK {
		return nil, errors.Errorf("catalog returned status %d", response.StatusCode)
	}

	var raw []catalogProduct
	if err := json.NewDecoder(response.Body).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "error decoding catalog response")
	}

	products := make(api.Products, 0, len(raw))
	for _, p := range raw {
		if hasLocaleSegment(p.Permalink) {
			continue
		}
		images := make([]api.ProductImage, len(p.Images))
		for i, img := range p.Images {
			images[i] = api.ProductImage{Src: img.Src, Alt: img.Alt}
		}
		products = append(products, api.Product{
			ID:        p.ID,
			Name:      p.Name,
			Permalink: p.Permalink,
			Price:     p.Price,
			Images:    images,
		})
	}
	return products, nil
}

// localeSegments are the path prefixes the shop uses for its translated
// storefronts.
var localeSegments = []string{"/en/", "/ru/", "/lv/", "/pl/", "/et/"}

func hasLocaleSegment(permalink string) bool {
	parsed, err := url.Parse(permalink)
	if err != nil {
		return false
	}
	for _, segment := range localeSegments {
		if strings.Contains(parsed.Path, segment) {
			return true
		}
	}
	return false
}
