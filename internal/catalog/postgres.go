package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/binaamart/storefront/internal/models"
)

// Connect opens the catalog database. The connection is only used to
// materialize the catalog once at startup; nothing writes through it.
func Connect(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// LoadFromPostgres selects the full product table into a catalog document.
// Features are stored as a jsonb array; specification fields are flattened
// into spec_* columns.
func LoadFromPostgres(db *sql.DB) (models.CatalogDocument, error) {
	query := `SELECT id, name, category, brand, price, original_price, discount,
		image, thumbnail, description, material, style, rating, reviews,
		is_on_sale, is_new, in_stock, features,
		spec_dimensions, spec_weight, spec_warranty
		FROM products ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return models.CatalogDocument{}, err
	}
	defer rows.Close()

	var doc models.CatalogDocument
	for rows.Next() {
		var p models.Product
		var features []byte
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Brand, &p.Price,
			&p.OriginalPrice, &p.Discount, &p.Image, &p.Thumbnail,
			&p.Description, &p.Material, &p.Style, &p.Rating, &p.Reviews,
			&p.IsOnSale, &p.IsNew, &p.InStock, &features,
			&p.Specifications.Dimensions, &p.Specifications.Weight,
			&p.Specifications.Warranty); err != nil {
			return models.CatalogDocument{}, err
		}
		if len(features) > 0 {
			if err := json.Unmarshal(features, &p.Features); err != nil {
				return models.CatalogDocument{}, fmt.Errorf("product %d: bad features column: %w", p.ID, err)
			}
		}
		doc.Products = append(doc.Products, p)
	}
	return doc, rows.Err()
}
