// Package awsutil provides utilities for loading AWS configuration.
package awsutil

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
)

// Load loads the AWS configuration for the given region. When endpoint is
// non-empty (e.g. http://localstack:4566) all service calls are routed there.
func Load(ctx context.Context, region, endpoint string) (aws.Config, error) {
	if endpoint == "" {
		return awsCfg.LoadDefaultConfig(ctx, awsCfg.WithRegion(region))
	}
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, r string, _ ...any) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:               endpoint,
			HostnameImmutable: true,
			PartitionID:       "aws",
		}, nil
	})
	return awsCfg.LoadDefaultConfig(ctx, awsCfg.WithRegion(region), awsCfg.WithEndpointResolverWithOptions(resolver))
}
