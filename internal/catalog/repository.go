// Package catalog serves the read-only product catalog. The catalog is an
// external, already-materialized data source: it is loaded once at startup
// (from the bundled JSON document or a postgres snapshot) and never written
// to afterwards.
package catalog

import (
	"errors"

	"github.com/binaamart/storefront/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// Repository defines read access to the materialized catalog.
type Repository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Filter(f ProductFilter) ([]models.Product, int, error)
	Facets() (Facets, error)
}

// Facets lists the values the filter sidebar offers.
type Facets struct {
	Categories []string `json:"categories"`
	Materials  []string `json:"materials"`
	Styles     []string `json:"styles"`
}
