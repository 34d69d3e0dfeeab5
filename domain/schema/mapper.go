package schema

import "strings"

// HeaderMap maps canonical fields to zero-based column indexes.
// Built once per import from the header row; read-only afterward.
// A field missing from the sheet is simply absent from the map.
type HeaderMap map[Field]int

// Column returns the column index for a field and whether the sheet
// provides it.
func (m HeaderMap) Column(f Field) (int, bool) {
	idx, ok := m[f]
	return idx, ok
}

// Has reports whether the sheet provides the field at all.
func (m HeaderMap) Has(f Field) bool {
	_, ok := m[f]
	return ok
}

// Normalize canonicalizes a raw header spelling: lower case, trimmed,
// with any run of whitespace, hyphens or underscores collapsed into a
// single underscore. "Date of Birth", "date-of-birth" and
// "DATE__OF__BIRTH" all normalize identically.
func Normalize(header string) string {
	header = strings.ToLower(strings.TrimSpace(header))
	var b strings.Builder
	b.Grow(len(header))
	pendingSep := false
	for _, r := range header {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '-' || r == '_':
			pendingSep = true
		default:
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MapHeaders resolves a raw header row against the default dictionary.
func MapHeaders(headers []string) HeaderMap {
	return MapHeadersWith(headers, DefaultSynonyms())
}

// MapHeadersWith resolves a raw header row against an explicit
// dictionary.
//
// Each non-empty header is normalized and matched in three passes of
// decreasing specificity: exact synonym, then synonym plus "_" prefix,
// then bare synonym prefix. The pass ordering keeps a broad synonym
// like "school" from swallowing "school_performance" before the exact
// "school_performance" spelling gets its turn. Within a pass, fields
// are tried in canonical priority order and the first match wins.
//
// Columns are scanned left to right and the first column matched to a
// field keeps it; later duplicates never overwrite. Unmatched headers
// and unmatched fields are both legal and raise nothing.
func MapHeadersWith(headers []string, dict Synonyms) HeaderMap {
	out := make(HeaderMap)
	for col, raw := range headers {
		norm := Normalize(raw)
		if norm == "" {
			continue
		}
		field, ok := matchField(norm, dict)
		if !ok {
			continue
		}
		if _, taken := out[field]; taken {
			continue
		}
		out[field] = col
	}
	return out
}

func matchField(norm string, dict Synonyms) (Field, bool) {
	type matcher func(header, synonym string) bool
	passes := []matcher{
		func(h, s string) bool { return h == s },
		func(h, s string) bool { return strings.HasPrefix(h, s+"_") },
		strings.HasPrefix,
	}
	for _, match := range passes {
		for _, field := range fieldOrder {
			for _, synonym := range dict[field] {
				if match(norm, synonym) {
					return field, true
				}
			}
		}
	}
	return "", false
}
