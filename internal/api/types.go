// Package api routes API Gateway requests to their handlers.
package api

// PingResponse is the health check payload.
type PingResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HelloResponse is the greeting payload. Name is null when the caller sent none.
type HelloResponse struct {
	Message string  `json:"message"`
	Name    *string `json:"name"`
}

// StatusResponse is the detailed system status payload. Services is present
// only when the store clients initialized.
type StatusResponse struct {
	Status      string          `json:"status"`
	Timestamp   string          `json:"timestamp"`
	Version     string          `json:"version"`
	Uptime      string          `json:"uptime"`
	Environment string          `json:"environment"`
	Services    map[string]bool `json:"services,omitempty"`
}

// CreateUserRequest is the expected body for user creation.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// CreateUserResponse confirms user creation.
type CreateUserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// UploadResponse reports a completed CSV submit: the archive key and the
// number of records written.
type UploadResponse struct {
	Status                 string `json:"status"`
	Message                string `json:"message"`
	S3FileKey              string `json:"s3_file_key"`
	DynamoDBRecordsWritten int    `json:"dynamodb_records_written"`
}
