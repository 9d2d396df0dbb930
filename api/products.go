package api

type Products []Product

// Product is the subset of the upstream catalog entry the front end uses.
type Product struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Permalink string         `json:"permalink"`
	Price     string         `json:"price"`
	Images    []ProductImage `json:"images"`
}

type ProductImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}
