package schema

// Synonyms maps each canonical field to its accepted header spellings.
// Spellings are stored in normalized form (see Normalize): lower case,
// with whitespace, hyphen and underscore runs collapsed to "_".
type Synonyms map[Field][]string

// DefaultSynonyms returns the built-in header dictionary. Deployments
// can extend it with a YAML overrides file (see internal/config);
// overrides are appended after the built-ins so the stock spellings
// keep their priority.
func DefaultSynonyms() Synonyms {
	return Synonyms{
		FieldOrphanID:          {"orphan_id", "orphanid", "id", "case_id", "case_no", "beneficiary_id"},
		FieldFirstName:         {"first_name", "firstname", "given_name", "fname"},
		FieldLastName:          {"last_name", "lastname", "family_name", "surname", "lname"},
		FieldDOB:               {"dob", "date_of_birth", "birth_date", "birthdate", "born"},
		FieldPlaceOfBirth:      {"place_of_birth", "birth_place", "birthplace", "pob"},
		FieldGender:            {"gender", "sex"},
		FieldLocation:          {"location", "city", "village", "area", "region"},
		FieldCountry:           {"country", "nationality"},
		FieldHealthStatus:      {"health_status", "health", "medical_status", "medical_condition"},
		FieldSpecialNeeds:      {"special_needs", "specialneeds", "disability", "disabilities"},
		FieldPhoto:             {"photo", "photo_url", "picture", "image", "image_url", "photo_link"},
		FieldFatherName:        {"father_name", "fathers_name", "father"},
		FieldFatherDateOfDeath: {"father_date_of_death", "father_death_date", "father_dod", "date_of_death_father"},
		FieldMotherName:        {"mother_name", "mothers_name", "mother"},
		FieldMotherDateOfDeath: {"mother_date_of_death", "mother_death_date", "mother_dod", "date_of_death_mother"},
		FieldMotherStatus:      {"mother_status", "mothers_status", "mother_alive"},
		FieldGuardianName:      {"guardian_name", "guardian", "caregiver_name", "caregiver"},
		FieldRelationToOrphan:  {"relation_to_orphan", "relationship", "relation", "guardian_relation"},
		FieldSchoolName:        {"school_name", "schoolname", "school"},
		FieldGradeLevel:        {"grade_level", "grade", "class_level", "class"},
		FieldFavoriteSubject:   {"favorite_subject", "favourite_subject", "best_subject"},
		FieldSchoolPerformance: {"school_performance", "academic_performance", "performance"},
	}
}

// Merge appends extra spellings to the dictionary, normalizing them
// and skipping duplicates. Unknown field names in extra are ignored:
// the canonical vocabulary is fixed.
func (s Synonyms) Merge(extra map[string][]string) Synonyms {
	known := make(map[Field]map[string]bool, len(s))
	for field, spellings := range s {
		seen := make(map[string]bool, len(spellings))
		for _, sp := range spellings {
			seen[sp] = true
		}
		known[field] = seen
	}

	for _, field := range fieldOrder {
		for _, sp := range extra[string(field)] {
			norm := Normalize(sp)
			if norm == "" || known[field][norm] {
				continue
			}
			s[field] = append(s[field], norm)
			if known[field] == nil {
				known[field] = make(map[string]bool)
			}
			known[field][norm] = true
		}
	}
	return s
}
