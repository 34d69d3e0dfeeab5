// Package postgres persists validated case records. Persistence is a
// separate step from importing: callers inspect the ProcessingResult
// first and only then submit the batch.
package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"caseflow/domain/record"
	"caseflow/internal/errors"
	"caseflow/ports"
)

// Schema is the DDL for the record tables. Applied by cmd/api on boot
// when persistence is configured.
const Schema = `
CREATE TABLE IF NOT EXISTS case_records (
	orphan_id           TEXT PRIMARY KEY,
	import_id           UUID NOT NULL,
	first_name          TEXT NOT NULL,
	last_name           TEXT NOT NULL,
	dob                 DATE NOT NULL,
	place_of_birth      TEXT NOT NULL DEFAULT '',
	gender              TEXT NOT NULL DEFAULT '',
	location            TEXT NOT NULL DEFAULT '',
	country             TEXT NOT NULL DEFAULT '',
	health_status       TEXT NOT NULL DEFAULT '',
	special_needs       TEXT NOT NULL DEFAULT '',
	father_name         TEXT NOT NULL DEFAULT '',
	father_date_of_death DATE,
	mother_name         TEXT NOT NULL DEFAULT '',
	mother_date_of_death DATE,
	mother_status       TEXT NOT NULL DEFAULT '',
	guardian_name       TEXT NOT NULL DEFAULT '',
	relation_to_orphan  TEXT NOT NULL DEFAULT '',
	school_name         TEXT NOT NULL DEFAULT '',
	grade_level         TEXT NOT NULL DEFAULT '',
	favorite_subject    TEXT NOT NULL DEFAULT '',
	school_performance  TEXT NOT NULL DEFAULT '',
	created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_case_records_import ON case_records (import_id);
`

// recordRow flattens a record.Parsed for named-parameter binding.
type recordRow struct {
	OrphanID          string  `db:"orphan_id"`
	ImportID          string  `db:"import_id"`
	FirstName         string  `db:"first_name"`
	LastName          string  `db:"last_name"`
	DOB               string  `db:"dob"`
	PlaceOfBirth      string  `db:"place_of_birth"`
	Gender            string  `db:"gender"`
	Location          string  `db:"location"`
	Country           string  `db:"country"`
	HealthStatus      string  `db:"health_status"`
	SpecialNeeds      string  `db:"special_needs"`
	FatherName        string  `db:"father_name"`
	FatherDateOfDeath *string `db:"father_date_of_death"`
	MotherName        string  `db:"mother_name"`
	MotherDateOfDeath *string `db:"mother_date_of_death"`
	MotherStatus      string  `db:"mother_status"`
	GuardianName      string  `db:"guardian_name"`
	RelationToOrphan  string  `db:"relation_to_orphan"`
	SchoolName        string  `db:"school_name"`
	GradeLevel        string  `db:"grade_level"`
	FavoriteSubject   string  `db:"favorite_subject"`
	SchoolPerformance string  `db:"school_performance"`
}

// RecordRepository implements ports.RecordStore for PostgreSQL.
type RecordRepository struct {
	db *sqlx.DB
}

// NewRecordRepository creates a PostgreSQL record store.
func NewRecordRepository(db *sqlx.DB) ports.RecordStore {
	return &RecordRepository{db: db}
}

// SaveBatch upserts all records of one import in a single
// transaction. Re-importing a corrected sheet overwrites earlier rows
// for the same orphan id.
func (r *RecordRepository) SaveBatch(ctx context.Context, importID string, records []record.Parsed) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin batch transaction")
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO case_records (
			orphan_id, import_id, first_name, last_name, dob,
			place_of_birth, gender, location, country, health_status, special_needs,
			father_name, father_date_of_death, mother_name, mother_date_of_death,
			mother_status, guardian_name, relation_to_orphan,
			school_name, grade_level, favorite_subject, school_performance
		) VALUES (
			:orphan_id, :import_id, :first_name, :last_name, :dob,
			:place_of_birth, :gender, :location, :country, :health_status, :special_needs,
			:father_name, :father_date_of_death, :mother_name, :mother_date_of_death,
			:mother_status, :guardian_name, :relation_to_orphan,
			:school_name, :grade_level, :favorite_subject, :school_performance
		)
		ON CONFLICT (orphan_id) DO UPDATE SET
			import_id = EXCLUDED.import_id,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			dob = EXCLUDED.dob,
			place_of_birth = EXCLUDED.place_of_birth,
			gender = EXCLUDED.gender,
			location = EXCLUDED.location,
			country = EXCLUDED.country,
			health_status = EXCLUDED.health_status,
			special_needs = EXCLUDED.special_needs,
			father_name = EXCLUDED.father_name,
			father_date_of_death = EXCLUDED.father_date_of_death,
			mother_name = EXCLUDED.mother_name,
			mother_date_of_death = EXCLUDED.mother_date_of_death,
			mother_status = EXCLUDED.mother_status,
			guardian_name = EXCLUDED.guardian_name,
			relation_to_orphan = EXCLUDED.relation_to_orphan,
			school_name = EXCLUDED.school_name,
			grade_level = EXCLUDED.grade_level,
			favorite_subject = EXCLUDED.favorite_subject,
			school_performance = EXCLUDED.school_performance,
			updated_at = NOW()`

	for _, rec := range records {
		if _, err := tx.NamedExecContext(ctx, query, toRow(importID, rec)); err != nil {
			return errors.Wrapf(err, "failed to save record %s", rec.OrphanID)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit batch")
	}
	return nil
}

// CountByImport returns how many records an import run persisted.
func (r *RecordRepository) CountByImport(ctx context.Context, importID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM case_records WHERE import_id = $1`, importID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count records")
	}
	return count, nil
}

// EnsureSchema applies the DDL with a short timeout.
func EnsureSchema(db *sqlx.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return errors.Wrap(err, "failed to apply record schema")
	}
	return nil
}

func toRow(importID string, rec record.Parsed) recordRow {
	row := recordRow{
		OrphanID:     rec.OrphanID,
		ImportID:     importID,
		FirstName:    rec.FirstName,
		LastName:     rec.LastName,
		DOB:          rec.DOB.String(),
		PlaceOfBirth: rec.PlaceOfBirth,
		Gender:       rec.Gender,
		Location:     rec.Location,
		Country:      rec.Country,
		HealthStatus: rec.HealthStatus,
		SpecialNeeds: rec.SpecialNeeds,
	}
	if f := rec.Family; f != nil {
		row.FatherName = f.FatherName
		row.MotherName = f.MotherName
		row.MotherStatus = f.MotherStatus
		row.GuardianName = f.GuardianName
		row.RelationToOrphan = f.RelationToOrphan
		if f.FatherDateOfDeath != nil {
			s := f.FatherDateOfDeath.String()
			row.FatherDateOfDeath = &s
		}
		if f.MotherDateOfDeath != nil {
			s := f.MotherDateOfDeath.String()
			row.MotherDateOfDeath = &s
		}
	}
	if e := rec.Education; e != nil {
		row.SchoolName = e.SchoolName
		row.GradeLevel = e.GradeLevel
		row.FavoriteSubject = e.FavoriteSubject
		row.SchoolPerformance = e.SchoolPerformance
	}
	return row
}
