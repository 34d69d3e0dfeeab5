// Package ports defines the interfaces the import pipeline depends on
// and the adapters implement. The pipeline only ever sees these
// contracts, which keeps every unit test free of real files, networks
// and databases.
package ports

import (
	"context"
	"io"
)

// GridSource reads a two-dimensional cell grid from an uploaded
// spreadsheet. The first row is the header row; all cells are
// delivered as trimmed strings. The grid is read in one shot and the
// source holds nothing open afterward.
type GridSource interface {
	ReadGrid(ctx context.Context, r io.Reader, filename string) ([][]string, error)
}
