package fetcher

import "errors"

var (
	ErrScraperUnavailable = errors.New("scraper unavailable")
	ErrBadScraperResponse = errors.New("bad scraper response")
)
