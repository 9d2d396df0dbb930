package api

type Cities []City

// City is one entry of the per-country city lookup.
type City struct {
	Name    string `json:"name"`
	Admin1  string `json:"admin1"`
	Country string `json:"country"`
}
