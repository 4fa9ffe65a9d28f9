package models

import "time"

// Collection identifies one of the externally scraped document collections.
type Collection string

// Known collections. The scraper services behind them are separate
// deployments; shelf-viewer only stores and serves what they produce.
const (
	CollectionAniList   Collection = "anilist"
	CollectionRoyalRoad Collection = "royalroad"
)

// Valid reports whether c names a known collection.
func (c Collection) Valid() bool {
	switch c {
	case CollectionAniList, CollectionRoyalRoad:
		return true
	}
	return false
}

// Collections returns all known collections in a stable order.
func Collections() []Collection {
	return []Collection{CollectionAniList, CollectionRoyalRoad}
}

// Document is a single scraped entry of a collection. The Payload carries
// whatever extra fields the scraper produced (progress, chapters, scores);
// its keys are normalised to camelCase before the document is persisted, so
// the wire form needs no further mapping.
type Document struct {
	// ID is the internal surrogate identifier. Persistence only.
	ID int64 `json:"-"`

	// Collection the document belongs to. Implied by the request that
	// fetched it, so not repeated per document on the wire.
	Collection Collection `json:"-"`

	// SourceID is the scraper-side identifier of the entry, unique within
	// a collection.
	SourceID string `json:"sourceId"`

	// Title is the display title of the entry.
	Title string `json:"title"`

	// URL points at the entry on the source site.
	URL string `json:"url"`

	// Payload holds the remaining scraper-provided fields, keyed in
	// camelCase.
	Payload map[string]any `json:"payload,omitempty"`

	// FetchedAt records when the scraper produced this version of the entry.
	FetchedAt time.Time `json:"fetchedAt"`
}

// TableName returns the name of the database table associated with the
// Document model.
func (d Document) TableName() string {
	return "documents"
}
