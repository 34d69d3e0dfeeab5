// Package schema defines the canonical column vocabulary of a case
// spreadsheet and maps free-form header rows onto it.
package schema

// Field is a canonical logical column name. The pipeline only ever
// works in terms of Fields; raw header spellings are resolved once
// per import and never consulted again.
type Field string

const (
	FieldOrphanID          Field = "orphanId"
	FieldFirstName         Field = "firstName"
	FieldLastName          Field = "lastName"
	FieldDOB               Field = "dob"
	FieldPlaceOfBirth      Field = "placeOfBirth"
	FieldGender            Field = "gender"
	FieldLocation          Field = "location"
	FieldCountry           Field = "country"
	FieldHealthStatus      Field = "healthStatus"
	FieldSpecialNeeds      Field = "specialNeeds"
	FieldPhoto             Field = "photo"
	FieldFatherName        Field = "fatherName"
	FieldFatherDateOfDeath Field = "fatherDateOfDeath"
	FieldMotherName        Field = "motherName"
	FieldMotherDateOfDeath Field = "motherDateOfDeath"
	FieldMotherStatus      Field = "motherStatus"
	FieldGuardianName      Field = "guardianName"
	FieldRelationToOrphan  Field = "relationToOrphan"
	FieldSchoolName        Field = "schoolName"
	FieldGradeLevel        Field = "gradeLevel"
	FieldFavoriteSubject   Field = "favoriteSubject"
	FieldSchoolPerformance Field = "schoolPerformance"
)

// fieldOrder fixes the matching priority between fields. When a header
// could belong to more than one field within the same specificity
// pass, the earlier field claims it.
var fieldOrder = []Field{
	FieldOrphanID,
	FieldFirstName,
	FieldLastName,
	FieldDOB,
	FieldPlaceOfBirth,
	FieldGender,
	FieldLocation,
	FieldCountry,
	FieldHealthStatus,
	FieldSpecialNeeds,
	FieldPhoto,
	FieldFatherName,
	FieldFatherDateOfDeath,
	FieldMotherName,
	FieldMotherDateOfDeath,
	FieldMotherStatus,
	FieldGuardianName,
	FieldRelationToOrphan,
	FieldSchoolName,
	FieldGradeLevel,
	FieldFavoriteSubject,
	FieldSchoolPerformance,
}

// Fields returns all canonical fields in matching priority order.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// String returns the canonical field name.
func (f Field) String() string { return string(f) }
