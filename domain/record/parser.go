package record

import (
	"fmt"
	"strings"

	"caseflow/domain/dates"
	"caseflow/domain/schema"
)

// Cell extracts a trimmed cell value for a canonical field, returning
// "" when the field is unmapped or the row is shorter than its column.
func Cell(row []string, headers schema.HeaderMap, field schema.Field) string {
	col, ok := headers.Column(field)
	if !ok || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// ParseRow validates one data row against a resolved header map.
//
// rowNum is the spreadsheet row number used in messages (the first
// data row is 2). A row missing any of orphanId, firstName or lastName
// is skipped: most such rows are blank padding or subtotal lines, not
// data-entry mistakes. A present-but-unparseable date of birth errors
// the row instead, because that is almost always a mistake the
// importer needs to see. Unparseable optional death dates degrade to
// nil with a warning and never fail the row.
func ParseRow(row []string, headers schema.HeaderMap, rowNum int) Outcome {
	orphanID := Cell(row, headers, schema.FieldOrphanID)
	lastName := Cell(row, headers, schema.FieldLastName)
	firstName := Cell(row, headers, schema.FieldFirstName)
	if orphanID == "" || lastName == "" || firstName == "" {
		return Outcome{
			Kind:   OutcomeSkipped,
			Row:    rowNum,
			Reason: fmt.Sprintf("missing required field (%s)", missingRequired(orphanID, firstName, lastName)),
		}
	}

	// A record is only usable with a real date of birth: an absent one
	// errors the row just like an unparseable one, since every
	// downstream consumer keys off age.
	rawDOB := Cell(row, headers, schema.FieldDOB)
	dob, err := dates.Parse(rawDOB)
	if err != nil || dob.IsZero() {
		reason := "invalid date of birth"
		if rawDOB == "" {
			reason = "missing date of birth"
		}
		return Outcome{
			Kind:     OutcomeErrored,
			Row:      rowNum,
			Reason:   reason,
			RawValue: rawDOB,
		}
	}

	rec := &Parsed{
		OrphanID:     orphanID,
		FirstName:    firstName,
		LastName:     lastName,
		DOB:          dob,
		PlaceOfBirth: Cell(row, headers, schema.FieldPlaceOfBirth),
		Gender:       Cell(row, headers, schema.FieldGender),
		Location:     Cell(row, headers, schema.FieldLocation),
		Country:      Cell(row, headers, schema.FieldCountry),
		HealthStatus: Cell(row, headers, schema.FieldHealthStatus),
		SpecialNeeds: Cell(row, headers, schema.FieldSpecialNeeds),
	}

	var warnings []string

	fatherName := Cell(row, headers, schema.FieldFatherName)
	motherName := Cell(row, headers, schema.FieldMotherName)
	guardianName := Cell(row, headers, schema.FieldGuardianName)
	if fatherName != "" || motherName != "" || guardianName != "" {
		family := &FamilyInfo{
			FatherName:       fatherName,
			MotherName:       motherName,
			MotherStatus:     Cell(row, headers, schema.FieldMotherStatus),
			GuardianName:     guardianName,
			RelationToOrphan: Cell(row, headers, schema.FieldRelationToOrphan),
		}
		family.FatherDateOfDeath, warnings = parseDeathDate(row, headers, schema.FieldFatherDateOfDeath, "father", orphanID, rowNum, warnings)
		family.MotherDateOfDeath, warnings = parseDeathDate(row, headers, schema.FieldMotherDateOfDeath, "mother", orphanID, rowNum, warnings)
		rec.Family = family
	}

	schoolName := Cell(row, headers, schema.FieldSchoolName)
	gradeLevel := Cell(row, headers, schema.FieldGradeLevel)
	if schoolName != "" || gradeLevel != "" {
		rec.Education = &EducationInfo{
			SchoolName:        schoolName,
			GradeLevel:        gradeLevel,
			FavoriteSubject:   Cell(row, headers, schema.FieldFavoriteSubject),
			SchoolPerformance: Cell(row, headers, schema.FieldSchoolPerformance),
		}
	}

	return Outcome{Kind: OutcomeParsed, Record: rec, Row: rowNum, Warnings: warnings}
}

// parseDeathDate resolves an optional death-date cell. Failures are
// non-critical metadata: the field stays nil and a warning is added.
func parseDeathDate(row []string, headers schema.HeaderMap, field schema.Field, parent, orphanID string, rowNum int, warnings []string) (*dates.Canonical, []string) {
	raw := Cell(row, headers, field)
	if raw == "" {
		return nil, warnings
	}
	parsed, err := dates.Parse(raw)
	if err != nil {
		return nil, append(warnings, fmt.Sprintf("row %d (orphan %s): unparseable %s date of death %q ignored", rowNum, orphanID, parent, raw))
	}
	return &parsed, warnings
}

func missingRequired(orphanID, firstName, lastName string) string {
	var missing []string
	if orphanID == "" {
		missing = append(missing, "orphanId")
	}
	if firstName == "" {
		missing = append(missing, "firstName")
	}
	if lastName == "" {
		missing = append(missing, "lastName")
	}
	return strings.Join(missing, ", ")
}
