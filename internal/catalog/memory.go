package catalog

import (
	"sort"
	"strings"

	"github.com/binaamart/storefront/internal/models"
)

// InMemoryRepository is the materialized catalog: every source (bundled JSON,
// postgres) loads into one of these at startup.
type InMemoryRepository struct {
	products []models.Product
	facets   Facets
}

// NewInMemoryRepository builds the repository from a catalog document. Facet
// lists missing from the document are derived from the products themselves.
func NewInMemoryRepository(doc models.CatalogDocument) *InMemoryRepository {
	facets := Facets{
		Categories: doc.Categories,
		Materials:  doc.Materials,
		Styles:     doc.Styles,
	}
	if len(facets.Categories) == 0 {
		facets.Categories = distinct(doc.Products, func(p models.Product) string { return p.Category })
	}
	if len(facets.Materials) == 0 {
		facets.Materials = distinct(doc.Products, func(p models.Product) string { return p.Material })
	}
	if len(facets.Styles) == 0 {
		facets.Styles = distinct(doc.Products, func(p models.Product) string { return p.Style })
	}
	return &InMemoryRepository{
		products: append([]models.Product(nil), doc.Products...),
		facets:   facets,
	}
}

func distinct(products []models.Product, key func(models.Product) string) []string {
	seen := map[string]bool{}
	var values []string
	for _, p := range products {
		v := key(p)
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

// GetAll retrieves every product, in catalog order.
func (r *InMemoryRepository) GetAll() ([]models.Product, error) {
	return append([]models.Product(nil), r.products...), nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Facets lists the filterable categories, materials, and styles.
func (r *InMemoryRepository) Facets() (Facets, error) {
	return r.facets, nil
}

func matchesFilter(p models.Product, pf ProductFilter) bool {
	if pf.Query != "" {
		q := strings.ToLower(pf.Query)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	if len(pf.Categories) > 0 && !contains(pf.Categories, p.Category) {
		return false
	}
	if len(pf.Materials) > 0 && !contains(pf.Materials, p.Material) {
		return false
	}
	if len(pf.Styles) > 0 && !contains(pf.Styles, p.Style) {
		return false
	}
	if pf.MinPrice != nil && p.Price < *pf.MinPrice {
		return false
	}
	if pf.MaxPrice != nil && p.Price > *pf.MaxPrice {
		return false
	}
	if pf.MinRating != nil && p.Rating < *pf.MinRating {
		return false
	}
	if pf.OnSale && !p.IsOnSale {
		return false
	}
	if pf.New && !p.IsNew {
		return false
	}
	if pf.InStock && !p.InStock {
		return false
	}
	return true
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func sortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	case SortDiscount:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Discount > products[j].Discount })
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool { return products[i].IsNew && !products[j].IsNew })
	}
}

// Filter applies the listing criteria, sorts, and paginates. The second
// return value is the total match count before pagination.
func (r *InMemoryRepository) Filter(pf ProductFilter) ([]models.Product, int, error) {
	filtered := []models.Product{}
	for _, p := range r.products {
		if matchesFilter(p, pf) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, pf.SortBy)

	// If offset is beyond the filtered set, return an empty page
	if pf.Offset != nil && *pf.Offset > len(filtered) {
		return []models.Product{}, len(filtered), nil
	}

	start := 0
	if pf.Offset != nil {
		start = clamp(*pf.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if pf.Limit != nil && *pf.Limit > 0 {
		end = clamp(start+*pf.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
