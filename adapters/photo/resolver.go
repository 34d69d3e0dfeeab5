package photo

import (
	"context"
	"fmt"
	"strings"

	"caseflow/domain/record"
	"caseflow/ports"
)

var mimeExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
	"image/bmp":  "bmp",
}

// Resolver turns photo-column cell values into fetched PhotoAssets.
// It never returns an error to the caller: every internal failure
// degrades to a nil asset plus a warning string the orchestrator
// appends to the batch result.
type Resolver struct {
	fetcher ports.PhotoFetcher
}

// NewResolver creates a resolver around a fetch capability.
func NewResolver(fetcher ports.PhotoFetcher) *Resolver {
	return &Resolver{fetcher: fetcher}
}

// Resolve classifies, rewrites and fetches one photo reference for the
// record identified by orphanID. The returned warning is "" iff an
// asset was produced.
func (r *Resolver) Resolve(ctx context.Context, value, orphanID string) (*record.PhotoAsset, string) {
	value = strings.TrimSpace(value)

	if IsSentinel(value) {
		return nil, fmt.Sprintf("orphan %s: photo marked %q, none imported", orphanID, value)
	}
	if !IsCandidate(value) {
		return nil, fmt.Sprintf("orphan %s: photo value %q does not look like an image reference, ignored", orphanID, value)
	}

	url, viaProxy := Rewrite(value)

	var res ports.FetchResult
	var err error
	if viaProxy {
		res, err = r.fetcher.FetchViaProxy(ctx, url)
	} else {
		res, err = r.fetcher.Fetch(ctx, url)
	}
	if err != nil {
		return nil, fmt.Sprintf("orphan %s: photo fetch failed: %v", orphanID, err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Sprintf("orphan %s: photo fetch returned status %d", orphanID, res.StatusCode)
	}

	mimeType := strings.TrimSpace(strings.Split(res.ContentType, ";")[0])
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Sprintf("orphan %s: photo URL returned %q, not an image", orphanID, mimeType)
	}

	ext, ok := mimeExtensions[mimeType]
	if !ok {
		ext = "img"
	}

	return &record.PhotoAsset{
		Content:  res.Body,
		MIMEType: mimeType,
		Filename: fmt.Sprintf("orphan_%s_photo.%s", orphanID, ext),
	}, ""
}
