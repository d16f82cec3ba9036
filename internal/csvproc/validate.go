package csvproc

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Validate checks an uploaded file before any semantic processing: extension,
// size ceiling, UTF-8 encoding, and structural parseability of at least the
// header row. Checks short-circuit in that order. The returned reason is
// empty only when the file is acceptable.
func Validate(content []byte, filename string) (bool, string) {
	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return false, "Only .csv files are accepted"
	}

	if len(content) > MaxFileSizeBytes {
		return false, fmt.Sprintf("File size exceeds 5MB limit (current: %.2fMB)",
			float64(len(content))/1024/1024)
	}

	if !utf8.Valid(content) {
		return false, "File encoding not supported. Please use UTF-8 encoding"
	}

	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return false, "Empty CSV file"
		}
		return false, fmt.Sprintf("Invalid CSV format: %v", err)
	}

	return true, ""
}
