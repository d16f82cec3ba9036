package csvproc

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"unicode/utf8"

	"github.com/nemoai/user-data-api/internal/models"
)

// StatusSuccess and friends are the preview outcome markers.
const (
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusError   = "error"
)

// PreviewResult summarizes an upload's validity without persisting anything.
// Field names match the wire contract of the preview endpoint.
type PreviewResult struct {
	Status         string              `json:"status"`
	Message        string              `json:"message"`
	ValidColumns   []string            `json:"valid_columns"`
	InvalidColumns []string            `json:"invalid_columns"`
	TotalRows      int                 `json:"total_rows"`
	ValidRows      int                 `json:"valid_rows"`
	PreviewData    []map[string]string `json:"preview_data"`
	Errors         []string            `json:"errors"`
}

// Preview classifies the file's columns against the predefined schema,
// validates every data row, and returns a bounded preview with aggregate
// counts. It never fails; every failure mode surfaces as a StatusError
// result. Identical bytes always produce an identical result.
func Preview(content []byte) PreviewResult {
	if !utf8.Valid(content) {
		return errorResult("Failed to parse CSV file", "Parse error: file is not valid UTF-8")
	}

	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return errorResult("Failed to parse CSV file", fmt.Sprintf("Parse error: %v", err))
	}

	var headers []string
	if len(records) > 0 {
		headers = records[0]
	}
	mapping := mapColumns(headers)

	if mapping.empty() {
		res := errorResult("No valid columns found",
			"No valid columns found. Expected columns: "+expectedColumnList())
		res.InvalidColumns = mapping.rejected
		return res
	}

	result := PreviewResult{
		ValidColumns:   mapping.accepted,
		InvalidColumns: mapping.rejected,
		PreviewData:    make([]map[string]string, 0, MaxPreviewRows),
		Errors:         make([]string, 0),
	}

	for i, record := range records[1:] {
		result.TotalRows++

		row := mapping.parseRow(record)
		if err := models.NewUserDataRow(row).Validate(); err != nil {
			// Header line plus 0-based index makes row numbers match the file.
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+2, err))
			continue
		}

		result.ValidRows++
		if len(result.PreviewData) < MaxPreviewRows {
			display := make(map[string]string, len(mapping.accepted))
			for _, col := range mapping.accepted {
				display[col] = row[canonical(col)]
			}
			result.PreviewData = append(result.PreviewData, display)
		}
	}

	if len(result.Errors) > MaxErrorMessages {
		result.Errors = result.Errors[:MaxErrorMessages]
	}

	result.Status = StatusWarning
	if result.ValidRows > 0 {
		result.Status = StatusSuccess
	}
	result.Message = fmt.Sprintf("Found %d valid rows out of %d total rows",
		result.ValidRows, result.TotalRows)
	return result
}

func errorResult(message string, errs ...string) PreviewResult {
	return PreviewResult{
		Status:         StatusError,
		Message:        message,
		ValidColumns:   make([]string, 0),
		InvalidColumns: make([]string, 0),
		PreviewData:    make([]map[string]string, 0),
		Errors:         append(make([]string, 0, len(errs)), errs...),
	}
}
