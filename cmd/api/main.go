// Package main runs the user data API: mock user endpoints plus CSV upload
// preview and submit.
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/nemoai/user-data-api/internal/api"
	"github.com/nemoai/user-data-api/internal/awsutil"
	"github.com/nemoai/user-data-api/internal/config"
	"github.com/nemoai/user-data-api/internal/ddb"
	"github.com/nemoai/user-data-api/internal/s3io"
	"github.com/nemoai/user-data-api/internal/users"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "user-data-api").Logger()
	lambda.Start(buildApp(context.Background(), logger).Handle)
}

// buildApp wires the application once at cold start. Store initialization
// failure is captured, not fatal: the app starts degraded and the CSV
// endpoints answer ServiceUnavailable while the rest of the API stays up.
func buildApp(ctx context.Context, logger zerolog.Logger) *api.App {
	userStore := users.NewMemoryStore()

	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("service initialization failed")
		return api.New(config.Config{}, logger, userStore, nil, err)
	}

	if lvl, lerr := zerolog.ParseLevel(cfg.LogLevel); lerr == nil {
		logger = logger.Level(lvl)
	}

	awsCfg, err := awsutil.Load(ctx, cfg.Region, cfg.EndpointURL)
	if err != nil {
		logger.Error().Err(err).Msg("aws configuration failed")
		return api.New(cfg, logger, userStore, nil, err)
	}

	s3c := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.UsePathStyle = true // localstack/dev friendliness
		}
	})

	svc := &api.Services{
		Archive: s3io.New(s3c, cfg.Bucket, logger),
		Records: ddb.New(dynamodb.NewFromConfig(awsCfg), cfg.Table, logger),
	}
	return api.New(cfg, logger, userStore, svc, nil)
}
