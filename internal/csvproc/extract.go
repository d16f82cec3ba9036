package csvproc

import (
	"bytes"
	"encoding/csv"
	"unicode/utf8"

	"github.com/nemoai/user-data-api/internal/models"
)

// ExtractRows returns every schema-conformant row worth persisting: mapped,
// trimmed, carrying at least one non-empty field, and passing per-field
// validation. Rows failing validation are dropped silently; this feeds bulk
// persistence, not user feedback. Any decode failure yields an empty slice.
func ExtractRows(content []byte) []ParsedRow {
	rows := make([]ParsedRow, 0)

	if !utf8.Valid(content) {
		return rows
	}

	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil || len(records) == 0 {
		return rows
	}

	mapping := mapColumns(records[0])
	for _, record := range records[1:] {
		row := mapping.parseRow(record)
		if !hasValue(row) {
			continue
		}
		if err := models.NewUserDataRow(row).Validate(); err != nil {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func hasValue(row ParsedRow) bool {
	for _, v := range row {
		if v != "" {
			return true
		}
	}
	return false
}
