// Package app orchestrates the import pipeline: file pre-validation,
// grid reading, header mapping, per-row parsing, photo resolution and
// result assembly.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"caseflow/adapters/excel"
	"caseflow/adapters/photo"
	"caseflow/domain/record"
	"caseflow/domain/schema"
	"caseflow/internal"
	"caseflow/internal/config"
	"caseflow/ports"
)

// Upload describes a file handed to the pipeline. Size is the
// declared length in bytes; content is read exactly once.
type Upload struct {
	Filename string
	MIMEType string
	Size     int64
	Content  io.Reader
}

// ImportService runs whole-file imports. One instance is safe for
// concurrent use; each Run is independent and shares no mutable state.
type ImportService struct {
	grid     ports.GridSource
	resolver *photo.Resolver
	dict     schema.Synonyms
	cfg      config.ImportConfig
	log      *internal.Logger
}

// NewImportService wires the pipeline. dict may be nil to use the
// built-in header dictionary.
func NewImportService(grid ports.GridSource, fetcher ports.PhotoFetcher, dict schema.Synonyms, cfg config.ImportConfig, log *internal.Logger) *ImportService {
	if dict == nil {
		dict = schema.DefaultSynonyms()
	}
	if log == nil {
		log = internal.DefaultLogger
	}
	return &ImportService{
		grid:     grid,
		resolver: photo.NewResolver(fetcher),
		dict:     dict,
		cfg:      cfg,
		log:      log,
	}
}

// rowState carries one data row through the pipeline phases so every
// message lands back in original row order no matter how the photo
// fetches interleave.
type rowState struct {
	outcome      record.Outcome
	photoCell    string
	photoAsset   *record.PhotoAsset
	photoWarning string
}

// Run executes one import and returns the complete result. It never
// returns an error: every failure mode is represented inside the
// result, and only file-level rejection leaves it empty of records.
func (s *ImportService) Run(ctx context.Context, up Upload) record.Result {
	importID := uuid.NewString()
	s.log.Info("import %s: starting file %s (%d bytes, %s)", importID, up.Filename, up.Size, up.MIMEType)

	if reason := s.preValidate(up); reason != "" {
		s.log.Warn("import %s: rejected: %s", importID, reason)
		return rejected(importID, reason)
	}

	rows, err := s.grid.ReadGrid(ctx, up.Content, up.Filename)
	if err != nil {
		return rejected(importID, fmt.Sprintf("unreadable file: %v", err))
	}
	if len(rows) < 2 {
		return rejected(importID, "file must contain a header row and at least one data row")
	}

	headers := schema.MapHeadersWith(rows[0], s.dict)
	s.log.Debug("import %s: mapped %d of %d header columns", importID, len(headers), len(rows[0]))

	dataRows := rows[1:]
	states := make([]*rowState, len(dataRows))
	for i, row := range dataRows {
		// Spreadsheet numbering: the first data row is row 2.
		st := &rowState{outcome: record.ParseRow(row, headers, i+2)}
		if st.outcome.Kind == record.OutcomeParsed {
			st.photoCell = record.Cell(row, headers, schema.FieldPhoto)
		}
		states[i] = st
	}

	s.resolvePhotos(ctx, importID, states)

	result := s.assemble(importID, dataRows, headers, states)
	s.log.Info("import %s: done: %d parsed, %d warnings, %d errors, %d photos",
		importID, len(result.Records), len(result.Warnings), len(result.Errors), len(result.Photos))
	return result
}

func (s *ImportService) preValidate(up Upload) string {
	if !excel.AcceptedMIME(up.MIMEType) {
		return fmt.Sprintf("unsupported file type %q: upload an .xlsx, .xls or .csv file", up.MIMEType)
	}
	if up.Size > s.cfg.MaxFileBytes {
		return fmt.Sprintf("file is %d bytes, limit is %d", up.Size, s.cfg.MaxFileBytes)
	}
	return ""
}

// resolvePhotos fetches photos for parsed rows with a bounded worker
// pool. Each failure is attributed to its own row; one row can never
// block or fail another, so worker errors are swallowed per slot.
func (s *ImportService) resolvePhotos(ctx context.Context, importID string, states []*rowState) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.PhotoWorkers)

	for _, st := range states {
		if st.outcome.Kind != record.OutcomeParsed || st.photoCell == "" {
			continue
		}
		g.Go(func() error {
			st.photoAsset, st.photoWarning = s.resolver.Resolve(gctx, st.photoCell, st.outcome.Record.OrphanID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("import %s: photo pool: %v", importID, err)
	}
}

// assemble builds the final result in row order, exactly once.
func (s *ImportService) assemble(importID string, dataRows [][]string, headers schema.HeaderMap, states []*rowState) record.Result {
	result := record.Result{
		ImportID: importID,
		Records:  []record.Parsed{},
		Warnings: []string{},
		Errors:   []string{},
		Photos:   map[string]record.PhotoAsset{},
	}

	for _, st := range states {
		out := st.outcome
		switch out.Kind {
		case record.OutcomeParsed:
			result.Records = append(result.Records, *out.Record)
			result.Warnings = append(result.Warnings, out.Warnings...)
			if st.photoAsset != nil {
				result.Photos[out.Record.OrphanID] = *st.photoAsset
			} else if st.photoWarning != "" {
				result.Warnings = append(result.Warnings, st.photoWarning)
			}
		case record.OutcomeSkipped:
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d skipped: %s", out.Row, out.Reason))
		case record.OutcomeErrored:
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %s (value %q)", out.Row, out.Reason, out.RawValue))
		}
	}

	result.Success = len(result.Errors) == 0
	result.Summary = buildSummary(dataRows, headers, states, time.Now())
	return result
}

func rejected(importID, reason string) record.Result {
	return record.Result{
		ImportID: importID,
		Success:  false,
		Records:  []record.Parsed{},
		Warnings: []string{},
		Errors:   []string{reason},
		Photos:   map[string]record.PhotoAsset{},
	}
}
