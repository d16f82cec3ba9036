package csvproc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_RejectsNonCSVExtension(t *testing.T) {
	content := []byte("user_id,name\n1,John")

	for _, filename := range []string{"data.txt", "data.csv.xlsx", "data", "csv"} {
		ok, reason := Validate(content, filename)
		assert.False(t, ok, "filename %q should be rejected", filename)
		assert.Equal(t, "Only .csv files are accepted", reason)
	}
}

func TestValidate_ExtensionCaseInsensitive(t *testing.T) {
	content := []byte("user_id,name\n1,John")

	ok, reason := Validate(content, "DATA.CSV")
	assert.True(t, ok)
	assert.Empty(t, reason)
}

func TestValidate_RejectsOversizedFile(t *testing.T) {
	header := []byte("user_id,name,email\n")
	row := bytes.Repeat([]byte("1,John,john@test.com\n"), 300000)
	content := append(header, row...)
	assert.Greater(t, len(content), MaxFileSizeBytes)

	ok, reason := Validate(content, "big.csv")
	assert.False(t, ok)
	assert.Contains(t, reason, "File size exceeds 5MB limit")
	assert.Contains(t, reason, "MB)")
}

func TestValidate_RejectsNonUTF8(t *testing.T) {
	content := []byte{0xff, 0xfe, 0x41, 0x42}

	ok, reason := Validate(content, "data.csv")
	assert.False(t, ok)
	assert.Equal(t, "File encoding not supported. Please use UTF-8 encoding", reason)
}

func TestValidate_RejectsEmptyFile(t *testing.T) {
	ok, reason := Validate([]byte{}, "data.csv")
	assert.False(t, ok)
	assert.Equal(t, "Empty CSV file", reason)
}

func TestValidate_RejectsMalformedCSV(t *testing.T) {
	content := []byte("user_id,\"name\n")

	ok, reason := Validate(content, "data.csv")
	assert.False(t, ok)
	assert.True(t, strings.HasPrefix(reason, "Invalid CSV format:"), "got reason %q", reason)
}

func TestValidate_AcceptsValidFile(t *testing.T) {
	content := []byte("user_id,name,email\n1,John Doe,john@example.com\n2,Jane Smith,jane@example.com")

	ok, reason := Validate(content, "test.csv")
	assert.True(t, ok)
	assert.Empty(t, reason)
}
