package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/binaamart/storefront/internal/catalog"
	api "github.com/binaamart/storefront/internal/http"
	handler "github.com/binaamart/storefront/internal/http/handlers"
	"github.com/binaamart/storefront/internal/models"
)

func getJSON(t *testing.T, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	r := api.NewRouter()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil && w.Code == http.StatusOK {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
	}
	return w
}

func TestGetProducts(t *testing.T) {
	var result handler.ProductsSearchResult
	w := getJSON(t, "/products", &result)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if len(result.Data) != 3 || result.Meta.TotalCount != 3 {
		t.Errorf("expected the full catalog, got %d items, total %d", len(result.Data), result.Meta.TotalCount)
	}
}

func TestGetProductsFiltered(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantIDs []int
	}{
		{"by category", "/products?category=Tiles", []int{12}},
		{"by query", "/products?q=paint", []int{30}},
		{"on sale", "/products?on_sale=true", []int{12}},
		{"in stock with price cap", "/products?in_stock=true&max_price=150", []int{7}},
		{"sorted by price descending", "/products?sort=price-high", []int{12, 7, 30}},
		{"paginated", "/products?offset=1&limit=1", []int{12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result handler.ProductsSearchResult
			w := getJSON(t, tt.path, &result)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", w.Code)
			}
			ids := make([]int, len(result.Data))
			for i, p := range result.Data {
				ids[i] = p.ID
			}
			if len(ids) != len(tt.wantIDs) {
				t.Fatalf("expected ids %v, got %v", tt.wantIDs, ids)
			}
			for i := range ids {
				if ids[i] != tt.wantIDs[i] {
					t.Errorf("expected ids %v, got %v", tt.wantIDs, ids)
					break
				}
			}
		})
	}
}

func TestGetProductsBadFilterParam(t *testing.T) {
	w := getJSON(t, "/products?min_price=cheap", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestGetProductByID(t *testing.T) {
	var p models.Product
	w := getJSON(t, "/products/12", &p)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if p.Name != "Travertine Tile" || p.Price != 210 {
		t.Errorf("unexpected product: %+v", p)
	}
}

func TestGetProductByIDNotFound(t *testing.T) {
	w := getJSON(t, "/products/999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestGetProductByIDInvalid(t *testing.T) {
	w := getJSON(t, "/products/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestGetFacets(t *testing.T) {
	var facets catalog.Facets
	w := getJSON(t, "/catalog/facets", &facets)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if len(facets.Categories) != 3 || len(facets.Materials) != 3 || len(facets.Styles) != 3 {
		t.Errorf("expected derived facets for the three products, got %+v", facets)
	}
}
