// Package geo looks up cities by country through a GeoNames-style search
// API, caching each country's full city list in process for a TTL.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/domain"
)

// ErrUpstream marks failures reported by the geocoding service itself, as
// opposed to transport or decoding errors.
var ErrUpstream = errors.New("geonames upstream error")

// Client queries the GeoNames search endpoint.
type Client struct {
	BaseURL    string
	Username   string
	MaxRows    int
	HTTPClient *http.Client

	cache *cityCache
}

// NewClient builds a Client from the environment configuration.
func NewClient() *Client {
	return &Client{
		BaseURL:    domain.Env.GeonamesURL,
		Username:   domain.Env.GeonamesUsername,
		MaxRows:    domain.Env.GeonamesMaxRows,
		HTTPClient: &http.Client{Timeout: time.Second * 30},
		cache:      newCityCache(time.Duration(domain.Env.CityCacheTTLMinutes) * time.Minute),
	}
}

// ResetCache replaces the city cache with an empty one using the given TTL.
func (c *Client) ResetCache(ttl time.Duration) {
	c.cache = newCityCache(ttl)
}

type geonamesResponse struct {
	Geonames []struct {
		Name        string `json:"name"`
		AdminName1  string `json:"adminName1"`
		CountryCode string `json:"countryCode"`
	} `json:"geonames"`
}

// Cities returns the cities of one country whose names start with the given
// prefix (case-insensitive), capped at limit entries. The country's full list
// is fetched from the upstream at most once per cache TTL.
func (c *Client) Cities(ctx context.Context, country, prefix string, limit int) (api.Cities, error) {
	country = strings.ToUpper(country)

	cities, ok := c.cache.get(country)
	if !ok {
		var err error
		cities, err = c.fetchCountry(ctx, country)
		if err != nil {
			return nil, err
		}
		c.cache.set(country, cities)
	}

	out := make(api.Cities, 0, limit)
	q := strings.ToLower(strings.TrimSpace(prefix))
	for _, city := range cities {
		if q != "" && !strings.HasPrefix(strings.ToLower(city.Name), q) {
			continue
		}
		out = append(out, city)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// fetchCountry pulls the full populated-place list for one country and
// deduplicates it by (name, admin1).
func (c *Client) fetchCountry(ctx context.Context, country string) (api.Cities, error) {
	u := fmt.Sprintf("%s/searchJSON?country=%s&featureClass=P&maxRows=%s&username=%s",
		c.BaseURL, url.QueryEscape(country), strconv.Itoa(c.MaxRows), url.QueryEscape(c.Username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "error creating geonames request")
	}

	response, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "error calling geonames")
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrUpstream, "status %d", response.StatusCode)
	}

	var data geonamesResponse
	if err := json.NewDecoder(response.Body).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "error decoding geonames response")
	}

	seen := map[string]struct{}{}
	cities := make(api.Cities, 0, len(data.Geonames))
	for _, p := range data.Geonames {
		key := p.Name + "||" + p.AdminName1
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		cities = append(cities, api.City{
			Name:    p.Name,
			Admin1:  p.AdminName1,
			Country: p.CountryCode,
		})
	}
	return cities, nil
}
