// Package ddb bulk-persists normalized user data rows to DynamoDB.
package ddb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/nemoai/user-data-api/internal/csvproc"
)

// DynamoDB caps BatchWriteItem at 25 items per request.
const maxBatchSize = 25

// maxFlushAttempts bounds resubmission of unprocessed items within one flush.
const maxFlushAttempts = 3

// API is the slice of the DynamoDB client the record store uses.
type API interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// Repo wraps a DynamoDB client and table name for user data operations.
type Repo struct {
	DB    API
	Table string

	log zerolog.Logger
	now func() time.Time
}

// New returns a Repo backed by the given client and table.
func New(db API, table string, log zerolog.Logger) *Repo {
	return &Repo{
		DB:    db,
		Table: table,
		log:   log,
		now:   time.Now,
	}
}

// WriteRows persists one item per row, each under a freshly generated entry
// id and linked to the source archive key. All items in a call share one
// created_at timestamp. Writes go out in batches; a failed later batch can
// leave earlier batches persisted. The returned count is the number of rows
// submitted; an empty input is a no-op returning 0.
func (r *Repo) WriteRows(ctx context.Context, rows []csvproc.ParsedRow, sourceKey string) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	createdAt := NowISO(r.now())

	requests := make([]types.WriteRequest, 0, len(rows))
	for _, row := range rows {
		item := map[string]string{
			"entry_id":    ulid.Make().String(),
			"source_file": sourceKey,
			"created_at":  createdAt,
		}
		for field, value := range row {
			if v := strings.TrimSpace(value); v != "" {
				item[field] = v
			}
		}
		av, err := attributevalue.MarshalMap(item)
		if err != nil {
			return 0, fmt.Errorf("marshal item: %w", err)
		}
		requests = append(requests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: av},
		})
	}

	written := 0
	for start := 0; start < len(requests); start += maxBatchSize {
		end := min(start+maxBatchSize, len(requests))
		if err := r.flush(ctx, requests[start:end]); err != nil {
			return written, fmt.Errorf("batch write to dynamodb: %w", err)
		}
		written += end - start
	}

	r.log.Info().Int("records", written).Str("table", r.Table).Msg("wrote csv rows")
	return written, nil
}

// flush submits one batch, resubmitting unprocessed items a bounded number
// of times before reporting the flush as failed.
func (r *Repo) flush(ctx context.Context, requests []types.WriteRequest) error {
	pending := requests
	for attempt := 0; attempt < maxFlushAttempts && len(pending) > 0; attempt++ {
		out, err := r.DB.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{r.Table: pending},
		})
		if err != nil {
			return err
		}
		pending = out.UnprocessedItems[r.Table]
	}
	if len(pending) > 0 {
		return fmt.Errorf("%d items unprocessed after %d attempts", len(pending), maxFlushAttempts)
	}
	return nil
}

// IsReady reports whether the configured table exists and is ACTIVE.
// Readiness reporting only; never called on the write path.
func (r *Repo) IsReady(ctx context.Context) bool {
	out, err := r.DB.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: &r.Table})
	if err != nil || out.Table == nil {
		return false
	}
	return out.Table.TableStatus == types.TableStatusActive
}

// NowISO formats t as UTC ISO8601.
func NowISO(t time.Time) string { return t.UTC().Format(time.RFC3339) }
