// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Product is a catalog item. The category acts as a partition key for
// listings: a product is always looked up by (category, id).
type Product struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	About    string  `json:"about"`
	Image    string  `json:"image"`
	Category string  `json:"cat"`
}

// ProductSummary is the partial projection returned by the storefront
// discovery sample (no About field).
type ProductSummary struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"cat"`
}

// ProductFields holds the replaceable fields of a product. Updates are a
// full replace of all four fields.
type ProductFields struct {
	Title string
	Price float64
	About string
	Image string
}
