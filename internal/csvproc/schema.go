// Package csvproc validates uploaded CSV files against the predefined user
// data schema, builds bounded previews, and extracts the rows worth
// persisting.
package csvproc

import (
	"sort"
	"strings"

	"github.com/nemoai/user-data-api/internal/models"
)

// MaxFileSizeBytes is the upload size ceiling (5MB).
const MaxFileSizeBytes = 5 * 1024 * 1024

// MaxPreviewRows bounds the number of rows returned in a preview.
const MaxPreviewRows = 10

// MaxErrorMessages bounds the number of row errors returned in a preview.
const MaxErrorMessages = 10

// predefinedColumns is the fixed set of recognized column names. Headers are
// matched case-insensitively against it; it is never mutated at runtime.
var predefinedColumns = map[string]struct{}{
	models.FieldUserID:         {},
	models.FieldName:           {},
	models.FieldEmail:          {},
	models.FieldPhoneNumber:    {},
	models.FieldCountry:        {},
	models.FieldState:          {},
	models.FieldCity:           {},
	models.FieldSignupDate:     {},
	models.FieldLastActiveDate: {},
}

// ParsedRow maps canonical field names to trimmed cell values.
type ParsedRow map[string]string

// columnMapping is the reusable header classification computed once per file
// and applied to every data row.
type columnMapping struct {
	fields   []string // canonical field per header position, "" when unrecognized
	accepted []string // recognized headers, original casing, sorted
	rejected []string // unrecognized headers, original casing, sorted
}

// mapColumns classifies the header row against the predefined schema.
func mapColumns(headers []string) columnMapping {
	m := columnMapping{
		fields:   make([]string, len(headers)),
		accepted: make([]string, 0, len(headers)),
		rejected: make([]string, 0),
	}
	seen := make(map[string]struct{}, len(headers))
	for i, h := range headers {
		lower := strings.ToLower(h)
		if _, ok := predefinedColumns[lower]; ok {
			m.fields[i] = lower
			if _, dup := seen[h]; !dup {
				seen[h] = struct{}{}
				m.accepted = append(m.accepted, h)
			}
			continue
		}
		if _, dup := seen[h]; !dup {
			seen[h] = struct{}{}
			m.rejected = append(m.rejected, h)
		}
	}
	sort.Strings(m.accepted)
	sort.Strings(m.rejected)
	return m
}

// empty reports whether no header matched the schema.
func (m columnMapping) empty() bool {
	return len(m.accepted) == 0
}

// parseRow builds a ParsedRow from one record using the precomputed mapping.
// Cells missing from a short record become empty strings; when two headers
// map to the same field the rightmost column wins.
func (m columnMapping) parseRow(record []string) ParsedRow {
	row := make(ParsedRow, len(m.accepted))
	for idx, field := range m.fields {
		if field == "" {
			continue
		}
		var val string
		if idx < len(record) {
			val = strings.TrimSpace(record[idx])
		}
		row[field] = val
	}
	return row
}

// canonical normalizes a header name to its schema field name.
func canonical(header string) string {
	return strings.ToLower(header)
}

// expectedColumnList renders the schema for user-facing error messages.
func expectedColumnList() string {
	cols := make([]string, 0, len(predefinedColumns))
	for c := range predefinedColumns {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return strings.Join(cols, ", ")
}
