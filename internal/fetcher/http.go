package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/internal/utils"
	"github.com/ndanilov/shelf-viewer/models"
)

type httpFetcher struct {
	client     *utils.HTTPClient
	collection models.Collection

	logger *logger.Logger
}

// scrapedDocument is the wire form the scraper services reply with.
type scrapedDocument struct {
	SourceID  string          `json:"source_id"`
	Title     string          `json:"title"`
	URL       string          `json:"url"`
	Payload   json.RawMessage `json:"payload"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// NewHTTPFetcher constructs an HTTP client for the scraper serving the given
// collection. It normalises and validates the base URL and configures the
// underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPFetcher(address string, timeout time.Duration, collection models.Collection, logger *logger.Logger) (Fetcher, error) {
	if !collection.Valid() {
		return nil, fmt.Errorf("unknown collection %q", collection)
	}

	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid scraper address for %q: %w", collection, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpFetcher{client: client, collection: collection, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Fetch implements [Fetcher]. It POSTs the page identifier to /fetch and
// decodes the scraped documents, tagging each with the fetcher's collection.
// A missing fetched_at timestamp is filled with the current time.
func (h *httpFetcher) Fetch(ctx context.Context, page string) ([]models.Document, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"page": page}).
		Post("/fetch")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrScraperUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: scraper %q answered with http %d", ErrScraperUnavailable, h.collection, resp.StatusCode())
	}

	var scraped []scrapedDocument
	if err = json.Unmarshal(resp.Body(), &scraped); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadScraperResponse, err)
	}

	documents := make([]models.Document, 0, len(scraped))
	for _, s := range scraped {
		doc := models.Document{
			Collection: h.collection,
			SourceID:   s.SourceID,
			Title:      s.Title,
			URL:        s.URL,
			FetchedAt:  s.FetchedAt,
		}
		if doc.FetchedAt.IsZero() {
			doc.FetchedAt = time.Now()
		}

		if len(s.Payload) > 0 {
			var payload map[string]any
			if err = json.Unmarshal(s.Payload, &payload); err != nil {
				return nil, fmt.Errorf("%w: payload of %q: %s", ErrBadScraperResponse, s.SourceID, err)
			}
			doc.Payload = payload
		}

		documents = append(documents, doc)
	}

	h.logger.Debug().
		Str("collection", string(h.collection)).
		Str("page", page).
		Int("documents", len(documents)).
		Msg("scraper fetch finished")

	return documents, nil
}
