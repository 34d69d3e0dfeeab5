// Package testkit provides shared fixtures for pipeline tests: grid
// builders, in-memory workbooks, and a counting fake fetcher so tests
// can assert that no network call was attempted.
package testkit

import (
	"context"
	"fmt"
	"sync"

	"caseflow/adapters/excel"
	"caseflow/ports"
)

// StandardHeaders is a realistic header row covering the fields most
// tests care about. Column order matters to fixtures built on it.
var StandardHeaders = []string{
	"Orphan ID", "First Name", "Last Name", "Date of Birth",
	"Gender", "Country", "Father Name", "Father Date of Death",
	"School Name", "Photo",
}

// Row builds a data row aligned with StandardHeaders.
func Row(id, first, last, dob string, rest ...string) []string {
	row := []string{id, first, last, dob, "", "", "", "", "", ""}
	for i, v := range rest {
		if 4+i < len(row) {
			row[4+i] = v
		}
	}
	return row
}

// Workbook renders header plus data rows into xlsx bytes.
func Workbook(rows ...[]string) ([]byte, error) {
	grid := append([][]string{StandardHeaders}, rows...)
	return excel.BuildWorkbook(grid)
}

// FakeFetcher is a scripted ports.PhotoFetcher that counts calls.
// Responses are keyed by URL; unknown URLs get the Default response.
// Err, when set, fails every call.
type FakeFetcher struct {
	mu        sync.Mutex
	Responses map[string]ports.FetchResult
	Default   ports.FetchResult
	Err       error

	FetchCalls []string
	ProxyCalls []string
}

// NewFakeFetcher creates a fetcher whose default response is a small
// successful JPEG.
func NewFakeFetcher() *FakeFetcher {
	return &FakeFetcher{
		Responses: make(map[string]ports.FetchResult),
		Default: ports.FetchResult{
			StatusCode:  200,
			ContentType: "image/jpeg",
			Body:        []byte{0xFF, 0xD8, 0xFF, 0xD9},
		},
	}
}

var _ ports.PhotoFetcher = (*FakeFetcher)(nil)

func (f *FakeFetcher) Fetch(_ context.Context, url string) (ports.FetchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FetchCalls = append(f.FetchCalls, url)
	return f.respond(url)
}

func (f *FakeFetcher) FetchViaProxy(_ context.Context, url string) (ports.FetchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ProxyCalls = append(f.ProxyCalls, url)
	return f.respond(url)
}

func (f *FakeFetcher) respond(url string) (ports.FetchResult, error) {
	if f.Err != nil {
		return ports.FetchResult{}, f.Err
	}
	if res, ok := f.Responses[url]; ok {
		return res, nil
	}
	return f.Default, nil
}

// TotalCalls returns how many fetches were attempted on any path.
func (f *FakeFetcher) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.FetchCalls) + len(f.ProxyCalls)
}

// FailWith scripts a specific URL to return the given status/type.
func (f *FakeFetcher) FailWith(url string, status int, contentType string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Responses[url] = ports.FetchResult{
		StatusCode:  status,
		ContentType: contentType,
		Body:        []byte(fmt.Sprintf("status %d", status)),
	}
}
