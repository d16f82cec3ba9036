package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	"github.com/nemoai/user-data-api/internal/httpx"
	"github.com/nemoai/user-data-api/internal/web"
)

const serviceVersion = "1.0.0"

var requestValidator = validator.New()

// index serves the API documentation homepage.
func (a *App) index() (events.APIGatewayV2HTTPResponse, error) {
	body, err := web.RenderIndex()
	if err != nil {
		a.log.Error().Err(err).Msg("render index")
		return httpx.ErrorMessage(http.StatusInternalServerError,
			"InternalServerError", "An unexpected error occurred")
	}
	return httpx.HTML(http.StatusOK, body)
}

func (a *App) ping() (events.APIGatewayV2HTTPResponse, error) {
	return httpx.JSON(http.StatusOK, PingResponse{Message: "pong", Status: "healthy"})
}

func (a *App) hello(req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	resp := HelloResponse{Message: "Hello, World!"}
	if name := req.QueryStringParameters["name"]; name != "" {
		resp.Message = fmt.Sprintf("Hello, %s!", name)
		resp.Name = &name
	}
	return httpx.JSON(http.StatusOK, resp)
}

// status reports system health. Store readiness is included when the
// services initialized; these probes never run on the upload path.
func (a *App) status(ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	resp := StatusResponse{
		Status:      "healthy",
		Timestamp:   time.Now().Format(time.RFC3339),
		Version:     serviceVersion,
		Uptime:      "Running",
		Environment: a.cfg.Environment,
	}
	if a.svc != nil {
		resp.Services = map[string]bool{
			"s3":       a.svc.Archive.Exists(ctx),
			"dynamodb": a.svc.Records.IsReady(ctx),
		}
	}
	return httpx.JSON(http.StatusOK, resp)
}

// getUser returns a user as JSON, or as an HTML profile page when the Accept
// header asks for text/html.
func (a *App) getUser(req events.APIGatewayV2HTTPRequest, id string) (events.APIGatewayV2HTTPResponse, error) {
	wantsHTML := strings.Contains(header(req.Headers, "accept"), "text/html")

	user, ok := a.users.Get(id)
	if !ok {
		if wantsHTML {
			return httpx.HTML(http.StatusNotFound, web.NotFoundPage)
		}
		return httpx.ErrorMessage(http.StatusNotFound, "NotFound", "User not found")
	}

	if wantsHTML {
		body, err := web.RenderUserProfile(user)
		if err != nil {
			a.log.Error().Err(err).Str("user_id", id).Msg("render user profile")
			return httpx.ErrorMessage(http.StatusInternalServerError,
				"InternalServerError", "An unexpected error occurred")
		}
		return httpx.HTML(http.StatusOK, body)
	}
	return httpx.JSON(http.StatusOK, user)
}

func (a *App) createUser(req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	var body CreateUserRequest
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return httpx.ErrorMessage(http.StatusBadRequest, "ValidationError",
			fmt.Sprintf("Invalid request data: %v", err))
	}
	if err := requestValidator.Struct(body); err != nil {
		return httpx.ErrorMessage(http.StatusBadRequest, "ValidationError",
			fmt.Sprintf("Invalid request data: %v", err))
	}

	user := a.users.Create(body.Name, body.Email)
	return httpx.JSON(http.StatusOK, CreateUserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Message: "User created successfully",
	})
}
