// Package excel reads uploaded spreadsheet files into the raw cell
// grid the import pipeline consumes. Excel files go through excelize;
// a CSV fallback rides the same contract for exports saved as text.
package excel

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"caseflow/ports"
)

// MIME types accepted for an upload. Everything else is rejected
// before a single row is read.
const (
	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEXLS  = "application/vnd.ms-excel"
	MIMECSV  = "text/csv"
)

// AcceptedMIME reports whether the declared content type is one the
// reader understands.
func AcceptedMIME(mimeType string) bool {
	switch strings.TrimSpace(strings.Split(mimeType, ";")[0]) {
	case MIMEXLSX, MIMEXLS, MIMECSV:
		return true
	}
	return false
}

// GridReader implements ports.GridSource for xlsx/xls and csv input.
type GridReader struct{}

// NewGridReader creates a grid reader.
func NewGridReader() *GridReader {
	return &GridReader{}
}

var _ ports.GridSource = (*GridReader)(nil)

// ReadGrid reads the complete cell grid from an uploaded file. The
// filename only matters for picking the CSV path by extension; the
// content itself is what gets parsed.
func (r *GridReader) ReadGrid(ctx context.Context, src io.Reader, filename string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	var rows [][]string
	var err error
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		rows, err = readCSV(src)
	} else {
		rows, err = readExcel(src)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("[GridReader] %s read in %.2fms (%d rows)",
		filename, float64(time.Since(start).Nanoseconds())/1e6, len(rows))

	return trimCells(rows), nil
}

func readExcel(src io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	// The first sheet is the one users actually fill in; extra sheets
	// hold notes and are ignored.
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSV(src io.Reader) ([][]string, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return rows, nil
}

func trimCells(rows [][]string) [][]string {
	for _, row := range rows {
		for i, cell := range row {
			row[i] = strings.TrimSpace(cell)
		}
	}
	return rows
}

// BuildWorkbook renders a grid back into xlsx bytes. Used by the test
// fixtures and by the CLI's template subcommand.
func BuildWorkbook(rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
