package api

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/nemoai/user-data-api/internal/csvproc"
	"github.com/nemoai/user-data-api/internal/httpx"
	"github.com/nemoai/user-data-api/internal/multipart"
)

// uploadedFile is the extracted and validated request payload shared by the
// two CSV endpoints.
type uploadedFile struct {
	content  []byte
	filename string
}

func (a *App) csvPreview(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	file, errResp, ok := a.uploadFromRequest(req)
	if !ok {
		return errResp, nil
	}
	return httpx.JSON(http.StatusOK, csvproc.Preview(file.content))
}

func (a *App) csvSubmit(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	file, errResp, ok := a.uploadFromRequest(req)
	if !ok {
		return errResp, nil
	}

	// Archive first so every submit leaves an audit trail even when the row
	// write fails afterwards.
	key, err := a.svc.Archive.Archive(ctx, file.content, file.filename)
	if err != nil {
		a.log.Error().Err(err).Str("filename", file.filename).Msg("archive failed")
		return httpx.Error(http.StatusInternalServerError, "ProcessingError")
	}

	rows := csvproc.ExtractRows(file.content)
	written, err := a.svc.Records.WriteRows(ctx, rows, key)
	if err != nil {
		a.log.Error().Err(err).Str("key", key).Int("written", written).Msg("record write failed")
		return httpx.Error(http.StatusInternalServerError, "ProcessingError")
	}

	return httpx.JSON(http.StatusOK, UploadResponse{
		Status:                 "success",
		Message:                fmt.Sprintf("Successfully processed %d rows", written),
		S3FileKey:              key,
		DynamoDBRecordsWritten: written,
	})
}

// uploadFromRequest runs the shared preconditions of the CSV endpoints:
// service readiness, content type, multipart extraction, file validation.
func (a *App) uploadFromRequest(req events.APIGatewayV2HTTPRequest) (uploadedFile, events.APIGatewayV2HTTPResponse, bool) {
	if a.svc == nil || a.initErr != nil {
		resp, _ := httpx.Error(http.StatusServiceUnavailable, "ServiceUnavailable")
		return uploadedFile{}, resp, false
	}

	contentType := header(req.Headers, "content-type")
	if !strings.Contains(strings.ToLower(contentType), "multipart/form-data") {
		resp, _ := httpx.Error(http.StatusBadRequest, "InvalidContentType")
		return uploadedFile{}, resp, false
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			a.log.Error().Err(err).Msg("base64 decode of request body failed")
			resp, _ := httpx.Error(http.StatusInternalServerError, "ProcessingError")
			return uploadedFile{}, resp, false
		}
		body = decoded
	}

	content, filename, ok := multipart.ExtractFile(body, contentType)
	if !ok {
		resp, _ := httpx.Error(http.StatusBadRequest, "NoFileProvided")
		return uploadedFile{}, resp, false
	}

	if valid, reason := csvproc.Validate(content, filename); !valid {
		resp, _ := httpx.ErrorMessage(http.StatusBadRequest, "InvalidFile", reason)
		return uploadedFile{}, resp, false
	}

	return uploadedFile{content: content, filename: filename}, events.APIGatewayV2HTTPResponse{}, true
}
