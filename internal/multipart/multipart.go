// Package multipart extracts the uploaded file from a multipart/form-data
// request body. Parsing is byte-exact: the payload is never decoded to text,
// so non-UTF-8 file content survives extraction untouched.
package multipart

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"strings"
)

const fileFieldName = "file"

// ExtractFile locates the first form part named "file" that carries a
// filename and returns its raw bytes and filename. ok is false when the
// content type carries no boundary or no such part exists.
func ExtractFile(body []byte, contentType string) (content []byte, filename string, ok bool) {
	boundary := extractBoundary(contentType)
	if boundary == "" {
		return nil, "", false
	}

	mr := multipart.NewReader(bytes.NewReader(body), boundary)
	for {
		part, err := mr.NextPart()
		if err != nil {
			return nil, "", false
		}
		if part.FormName() != fileFieldName {
			continue
		}
		fn := partFilename(part)
		if fn == "" {
			continue
		}
		data, err := io.ReadAll(part)
		if err != nil {
			return nil, "", false
		}
		return data, fn, true
	}
}

// extractBoundary pulls the boundary parameter out of a Content-Type header.
// mime.ParseMediaType handles quoting; the manual scan covers headers too
// malformed for it that still carry a usable boundary.
func extractBoundary(contentType string) string {
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		if b := params["boundary"]; b != "" {
			return b
		}
	}
	idx := strings.Index(contentType, "boundary=")
	if idx < 0 {
		return ""
	}
	b := contentType[idx+len("boundary="):]
	if semi := strings.IndexByte(b, ';'); semi >= 0 {
		b = b[:semi]
	}
	return strings.Trim(strings.TrimSpace(b), `"'`)
}

// partFilename returns the part's filename, tolerating single-quoted values
// some clients produce.
func partFilename(p *multipart.Part) string {
	return strings.Trim(p.FileName(), "'")
}
