// Package s3io archives raw uploaded CSV files to S3 for audit and
// traceability.
package s3io

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// API is the slice of the S3 client the archive store uses.
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// Store writes archive objects into a fixed bucket.
type Store struct {
	Client API
	Bucket string

	log zerolog.Logger
	now func() time.Time
}

// New returns a Store backed by the given client and bucket.
func New(client API, bucket string, log zerolog.Logger) *Store {
	return &Store{
		Client: client,
		Bucket: bucket,
		log:    log,
		now:    time.Now,
	}
}

// Archive persists the raw uploaded bytes under a time-derived key and
// returns that key. Metadata carries the original filename, the upload
// timestamp, and the byte length.
func (s *Store) Archive(ctx context.Context, content []byte, filename string) (string, error) {
	t := s.now()
	ts := t.Format(KeyTimeLayout)
	key := BuildKey(t)

	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(ContentTypeCSV),
		Metadata: map[string]string{
			"original_filename": filename,
			"upload_timestamp":  ts,
			"content_length":    strconv.Itoa(len(content)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload to s3: %w", err)
	}

	s.log.Info().Str("key", key).Int("bytes", len(content)).Msg("archived csv file")
	return key, nil
}

// Exists reports whether the configured bucket is reachable. Readiness
// reporting only; never called on the write path.
func (s *Store) Exists(ctx context.Context) bool {
	_, err := s.Client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.Bucket)})
	return err == nil
}
