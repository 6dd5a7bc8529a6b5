package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/binaamart/storefront/internal/models"
)

// LoadDocument reads the bundled catalog document from disk. The document is
// the same shape the storefront ships as products.json.
func LoadDocument(path string) (models.CatalogDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.CatalogDocument{}, fmt.Errorf("failed to read catalog document: %w", err)
	}

	var doc models.CatalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.CatalogDocument{}, fmt.Errorf("failed to parse catalog document: %w", err)
	}
	return doc, nil
}
