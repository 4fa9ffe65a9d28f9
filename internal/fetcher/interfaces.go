// Package fetcher provides HTTP clients for the external scraper services
// that populate the document collections. The scrapers themselves are
// separate deployments; this package only triggers a fetch and decodes
// whatever the scraper returns.
package fetcher

import (
	"context"

	"github.com/ndanilov/shelf-viewer/models"
)

// Fetcher triggers one external scraper service and returns the documents
// it produced for the requested page.
type Fetcher interface {
	// Fetch asks the scraper to fetch the given page and returns the
	// resulting documents. Returns ErrScraperUnavailable (wrapped) when the
	// scraper cannot be reached or answers with a server error.
	Fetch(ctx context.Context, page string) ([]models.Document, error)
}

// Fetchers maps each collection to the client of the scraper that feeds it.
type Fetchers map[models.Collection]Fetcher
