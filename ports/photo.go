package ports

import "context"

// FetchResult is the raw outcome of retrieving a photo URL.
type FetchResult struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// PhotoFetcher retrieves image bytes for the photo resolver.
//
// FetchViaProxy exists as a distinct path for Google Drive URLs: in a
// browser-constrained deployment those must go through a backend
// proxy to dodge CORS, and keeping the separate method preserves that
// routing decision even where the default implementation just fetches
// directly. Implementations must honor ctx cancellation and apply
// their own per-request timeout.
type PhotoFetcher interface {
	Fetch(ctx context.Context, url string) (FetchResult, error)
	FetchViaProxy(ctx context.Context, originalURL string) (FetchResult, error)
}
