// Package record holds the validated case-record shapes produced by
// an import run and the per-row parser that builds them.
package record

import (
	"caseflow/domain/dates"
	"caseflow/domain/schema"
)

// Parsed is a fully validated beneficiary record assembled from one
// spreadsheet row. It is created once and never mutated.
type Parsed struct {
	OrphanID  string          `json:"orphanId" db:"orphan_id"`
	FirstName string          `json:"firstName" db:"first_name"`
	LastName  string          `json:"lastName" db:"last_name"`
	DOB       dates.Canonical `json:"dob" db:"dob"`

	PlaceOfBirth string `json:"placeOfBirth,omitempty" db:"place_of_birth"`
	Gender       string `json:"gender,omitempty" db:"gender"`
	Location     string `json:"location,omitempty" db:"location"`
	Country      string `json:"country,omitempty" db:"country"`
	HealthStatus string `json:"healthStatus,omitempty" db:"health_status"`
	SpecialNeeds string `json:"specialNeeds,omitempty" db:"special_needs"`

	Family    *FamilyInfo    `json:"family,omitempty"`
	Education *EducationInfo `json:"education,omitempty"`
}

// FamilyInfo is present iff at least one of father, mother or guardian
// name was supplied on the row.
type FamilyInfo struct {
	FatherName        string           `json:"fatherName,omitempty"`
	FatherDateOfDeath *dates.Canonical `json:"fatherDateOfDeath,omitempty"`
	MotherName        string           `json:"motherName,omitempty"`
	MotherDateOfDeath *dates.Canonical `json:"motherDateOfDeath,omitempty"`
	MotherStatus      string           `json:"motherStatus,omitempty"`
	GuardianName      string           `json:"guardianName,omitempty"`
	RelationToOrphan  string           `json:"relationToOrphan,omitempty"`
}

// EducationInfo is present iff school name or grade level was supplied.
type EducationInfo struct {
	SchoolName        string `json:"schoolName,omitempty"`
	GradeLevel        string `json:"gradeLevel,omitempty"`
	FavoriteSubject   string `json:"favoriteSubject,omitempty"`
	SchoolPerformance string `json:"schoolPerformance,omitempty"`
}

// PhotoAsset is a fetched image belonging to one record.
type PhotoAsset struct {
	Content  []byte `json:"-"`
	MIMEType string `json:"mimeType"`
	Filename string `json:"filename"`
}

// OutcomeKind classifies how a single row was handled.
type OutcomeKind string

const (
	OutcomeParsed  OutcomeKind = "parsed"
	OutcomeSkipped OutcomeKind = "skipped"
	OutcomeErrored OutcomeKind = "errored"
)

// Outcome is the tagged per-row result. Exactly one kind applies to
// each input row; rows are independent of each other.
//
// Row carries the spreadsheet row number (first data row is 2) for
// human-readable reporting. Warnings carries non-fatal field
// degradations discovered while parsing an otherwise valid row.
type Outcome struct {
	Kind     OutcomeKind
	Record   *Parsed
	Row      int
	Reason   string
	RawValue string
	Warnings []string
}

// BatchSummary is an after-the-fact profile of an import run: how the
// rows fared, how well each canonical column was populated, and the
// age distribution of the parsed records.
type BatchSummary struct {
	RowsTotal   int `json:"rowsTotal"`
	RowsParsed  int `json:"rowsParsed"`
	RowsSkipped int `json:"rowsSkipped"`
	RowsErrored int `json:"rowsErrored"`

	FieldFillRates map[schema.Field]float64 `json:"fieldFillRates,omitempty"`

	AgeMean   float64 `json:"ageMean,omitempty"`
	AgeMedian float64 `json:"ageMedian,omitempty"`
	AgeQ1     float64 `json:"ageQ1,omitempty"`
	AgeQ3     float64 `json:"ageQ3,omitempty"`
}

// Result is the sole artifact of an import run. It is assembled once,
// after the last row settles, and is read-only from then on. Records,
// warnings and errors keep row order; partial results are always
// returned so a failed batch can still be inspected.
type Result struct {
	ImportID string                `json:"importId"`
	Success  bool                  `json:"success"`
	Records  []Parsed              `json:"records"`
	Warnings []string              `json:"warnings"`
	Errors   []string              `json:"errors"`
	Photos   map[string]PhotoAsset `json:"photos,omitempty"`
	Summary  *BatchSummary         `json:"summary,omitempty"`
}
