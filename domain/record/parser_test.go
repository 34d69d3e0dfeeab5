package record

import (
	"strings"
	"testing"

	"caseflow/domain/schema"
)

var testHeaders = schema.MapHeaders([]string{
	"Orphan ID", "First Name", "Last Name", "Date of Birth",
	"Gender", "Father Name", "Father Date of Death", "Mother Name",
	"Guardian Name", "School Name", "Grade",
})

func testRow(overrides map[int]string) []string {
	row := []string{"O-100", "Amina", "Hassan", "23/02/2015", "F", "", "", "", "", "", ""}
	for col, v := range overrides {
		row[col] = v
	}
	return row
}

// TestParseRowValid tests a fully populated valid row.
func TestParseRowValid(t *testing.T) {
	out := ParseRow(testRow(nil), testHeaders, 2)
	if out.Kind != OutcomeParsed {
		t.Fatalf("kind = %s, expected parsed (%s)", out.Kind, out.Reason)
	}
	rec := out.Record
	if rec.OrphanID != "O-100" || rec.FirstName != "Amina" || rec.LastName != "Hassan" {
		t.Errorf("identity fields wrong: %+v", rec)
	}
	if rec.DOB != "2015-02-23" {
		t.Errorf("dob = %q, expected 2015-02-23", rec.DOB)
	}
	if rec.Family != nil {
		t.Error("family info present with no family names supplied")
	}
	if rec.Education != nil {
		t.Error("education info present with no school fields supplied")
	}
}

// TestParseRowMissingRequired tests the skip path for each required
// field.
func TestParseRowMissingRequired(t *testing.T) {
	for col, name := range map[int]string{0: "orphanId", 1: "firstName", 2: "lastName"} {
		out := ParseRow(testRow(map[int]string{col: "  "}), testHeaders, 3)
		if out.Kind != OutcomeSkipped {
			t.Errorf("blank %s: kind = %s, expected skipped", name, out.Kind)
			continue
		}
		if out.Row != 3 {
			t.Errorf("blank %s: row = %d, expected 3", name, out.Row)
		}
		if !strings.Contains(out.Reason, name) {
			t.Errorf("blank %s: reason %q does not name the field", name, out.Reason)
		}
	}
}

// TestParseRowInvalidDOB tests that a malformed date of birth errors
// the row and preserves the raw value for reporting.
func TestParseRowInvalidDOB(t *testing.T) {
	out := ParseRow(testRow(map[int]string{3: "31/02/2015"}), testHeaders, 5)
	if out.Kind != OutcomeErrored {
		t.Fatalf("kind = %s, expected errored", out.Kind)
	}
	if out.Row != 5 || out.RawValue != "31/02/2015" {
		t.Errorf("outcome = row %d raw %q, expected row 5 raw 31/02/2015", out.Row, out.RawValue)
	}
	if !strings.Contains(out.Reason, "date of birth") {
		t.Errorf("reason = %q, expected a date-of-birth message", out.Reason)
	}
}

// TestParseRowMissingDOB tests that an absent date of birth also
// errors the row.
func TestParseRowMissingDOB(t *testing.T) {
	out := ParseRow(testRow(map[int]string{3: ""}), testHeaders, 4)
	if out.Kind != OutcomeErrored {
		t.Fatalf("kind = %s, expected errored", out.Kind)
	}
	if out.Reason != "missing date of birth" {
		t.Errorf("reason = %q", out.Reason)
	}
}

// TestParseRowFamilyPresence tests the FamilyInfo presence rule.
func TestParseRowFamilyPresence(t *testing.T) {
	for col, who := range map[int]string{5: "father", 7: "mother", 8: "guardian"} {
		out := ParseRow(testRow(map[int]string{col: "Somebody"}), testHeaders, 2)
		if out.Kind != OutcomeParsed {
			t.Fatalf("%s name: kind = %s", who, out.Kind)
		}
		if out.Record.Family == nil {
			t.Errorf("%s name supplied but family info absent", who)
		}
	}
}

// TestParseRowDeathDateDegrades tests that a bad optional death date
// nils the field, warns, and does not fail the row.
func TestParseRowDeathDateDegrades(t *testing.T) {
	out := ParseRow(testRow(map[int]string{5: "Yusuf", 6: "not-a-date"}), testHeaders, 7)
	if out.Kind != OutcomeParsed {
		t.Fatalf("kind = %s, expected parsed", out.Kind)
	}
	if out.Record.Family == nil || out.Record.Family.FatherDateOfDeath != nil {
		t.Errorf("family = %+v, expected nil father death date", out.Record.Family)
	}
	if len(out.Warnings) != 1 {
		t.Fatalf("warnings = %v, expected exactly one", out.Warnings)
	}
	if !strings.Contains(out.Warnings[0], "row 7") || !strings.Contains(out.Warnings[0], "not-a-date") {
		t.Errorf("warning %q missing row or raw value", out.Warnings[0])
	}
}

// TestParseRowDeathDateValid tests a parseable death date.
func TestParseRowDeathDateValid(t *testing.T) {
	out := ParseRow(testRow(map[int]string{5: "Yusuf", 6: "10/01/2020"}), testHeaders, 2)
	if out.Kind != OutcomeParsed {
		t.Fatalf("kind = %s, expected parsed", out.Kind)
	}
	dod := out.Record.Family.FatherDateOfDeath
	if dod == nil || *dod != "2020-10-01" {
		t.Errorf("father death date = %v, expected 2020-10-01", dod)
	}
	if len(out.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", out.Warnings)
	}
}

// TestParseRowEducationPresence tests the EducationInfo presence rule.
func TestParseRowEducationPresence(t *testing.T) {
	out := ParseRow(testRow(map[int]string{9: "Hope Primary"}), testHeaders, 2)
	if out.Record.Education == nil || out.Record.Education.SchoolName != "Hope Primary" {
		t.Errorf("education = %+v", out.Record.Education)
	}

	out = ParseRow(testRow(map[int]string{10: "4"}), testHeaders, 2)
	if out.Record.Education == nil || out.Record.Education.GradeLevel != "4" {
		t.Errorf("education = %+v", out.Record.Education)
	}
}

// TestParseRowShortRow tests rows with fewer cells than headers.
func TestParseRowShortRow(t *testing.T) {
	out := ParseRow([]string{"O-1", "A", "B", "2010-04-05"}, testHeaders, 2)
	if out.Kind != OutcomeParsed {
		t.Fatalf("kind = %s, expected parsed", out.Kind)
	}
	if out.Record.Gender != "" || out.Record.Family != nil {
		t.Errorf("short row produced phantom optional data: %+v", out.Record)
	}
}

// TestCellUnmappedField tests Cell against an unmapped field.
func TestCellUnmappedField(t *testing.T) {
	if got := Cell([]string{"x"}, testHeaders, schema.FieldCountry); got != "" {
		t.Errorf("Cell(unmapped) = %q, expected empty", got)
	}
}
