package catalog

// ProductFilter carries the listing page's filter and sort criteria.
// Nil pointer fields and empty slices mean "not filtered on".
type ProductFilter struct {
	Query      string
	Categories []string
	Materials  []string
	Styles     []string
	MinPrice   *float64
	MaxPrice   *float64
	MinRating  *float64
	OnSale     bool
	New        bool
	InStock    bool
	SortBy     string
	Offset     *int
	Limit      *int
}

// Sort orders accepted by Filter.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortDiscount  = "discount"
	SortNewest    = "newest"
)
