package ports

import (
	"context"

	"caseflow/domain/record"
)

// RecordStore persists validated records after the caller has
// inspected a ProcessingResult and decided the batch may proceed.
// The pipeline itself never writes; persistence is a separate,
// explicit step owned by the HTTP and CLI surfaces.
type RecordStore interface {
	SaveBatch(ctx context.Context, importID string, records []record.Parsed) error
	CountByImport(ctx context.Context, importID string) (int, error)
}
