// Package httpx provides helper functions for creating HTTP responses.
package httpx

import (
	"github.com/aws/aws-lambda-go/events"
	json "github.com/goccy/go-json"
)

// JSON creates a JSON HTTP response with the given status code and value.
func JSON(status int, v any) (events.APIGatewayV2HTTPResponse, error) {
	b, _ := json.Marshal(v)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: string(b),
	}, nil
}

// HTML creates an HTML response with the given status code and body.
func HTML(status int, body string) (events.APIGatewayV2HTTPResponse, error) {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type": "text/html",
		},
		Body: body,
	}, nil
}

// Error creates a JSON error response carrying a machine-readable error code.
func Error(status int, code string) (events.APIGatewayV2HTTPResponse, error) {
	return JSON(status, map[string]string{"error": code})
}

// ErrorMessage creates a JSON error response with a code and a human-readable message.
func ErrorMessage(status int, code, msg string) (events.APIGatewayV2HTTPResponse, error) {
	return JSON(status, map[string]string{"error": code, "message": msg})
}
