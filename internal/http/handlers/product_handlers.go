package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/binaamart/storefront/internal/catalog"
)

// GetProductsHandler lists the catalog with the listing page's filters:
// q, category, material, style (repeatable), min_price, max_price,
// min_rating, on_sale, new, in_stock, sort, offset, limit.
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := catalog.ProductFilter{
		Query:      q.Get("q"),
		Categories: q["category"],
		Materials:  q["material"],
		Styles:     q["style"],
		OnSale:     q.Get("on_sale") == "true",
		New:        q.Get("new") == "true",
		InStock:    q.Get("in_stock") == "true",
		SortBy:     q.Get("sort"),
	}

	var parseErr error
	filter.MinPrice, parseErr = floatParam(q.Get("min_price"), parseErr)
	filter.MaxPrice, parseErr = floatParam(q.Get("max_price"), parseErr)
	filter.MinRating, parseErr = floatParam(q.Get("min_rating"), parseErr)
	filter.Offset, parseErr = intParam(q.Get("offset"), parseErr)
	filter.Limit, parseErr = intParam(q.Get("limit"), parseErr)
	if parseErr != nil {
		http.Error(w, "invalid filter parameter", http.StatusBadRequest)
		return
	}

	products, total, err := catalogRepo.Filter(filter)
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ProductsSearchResult{
		Data: products,
		Meta: Meta{TotalCount: total},
	})
}

func floatParam(s string, prev error) (*float64, error) {
	if prev != nil || s == "" {
		return nil, prev
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func intParam(s string, prev error) (*int, error) {
	if prev != nil || s == "" {
		return nil, prev
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetProductByIDHandler returns one catalog record.
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := catalogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GetFacetsHandler returns the category/material/style values for the
// filter sidebar.
func GetFacetsHandler(w http.ResponseWriter, r *http.Request) {
	facets, err := catalogRepo.Facets()
	if err != nil {
		http.Error(w, "could not fetch facets", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, facets)
}
