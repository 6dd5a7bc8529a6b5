package models

// Specifications holds the physical details shown on a product detail page.
type Specifications struct {
	Dimensions string `json:"dimensions"`
	Weight     string `json:"weight"`
	Warranty   string `json:"warranty"`
}

// Product represents one catalog record. The catalog is materialized once at
// startup and never mutated at runtime.
type Product struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	Category       string         `json:"category"`
	Brand          string         `json:"brand"`
	Price          float64        `json:"price"`
	OriginalPrice  float64        `json:"originalPrice"`
	Discount       int            `json:"discount"`
	Image          string         `json:"image"`
	Thumbnail      string         `json:"thumbnail"`
	Description    string         `json:"description"`
	Material       string         `json:"material"`
	Style          string         `json:"style"`
	Rating         float64        `json:"rating"`
	Reviews        int            `json:"reviews"`
	IsOnSale       bool           `json:"isOnSale"`
	IsNew          bool           `json:"isNew"`
	InStock        bool           `json:"inStock"`
	Features       []string       `json:"features"`
	Specifications Specifications `json:"specifications"`
}

// CatalogDocument is the bundled catalog shape: the product list plus the
// facet values the filter sidebar offers.
type CatalogDocument struct {
	Products   []Product `json:"products"`
	Categories []string  `json:"categories"`
	Materials  []string  `json:"materials"`
	Styles     []string  `json:"styles"`
}
