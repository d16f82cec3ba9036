package ddb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemoai/user-data-api/internal/csvproc"
)

type mockDynamo struct {
	batches     [][]types.WriteRequest
	batchErr    error
	unprocessed []map[string][]types.WriteRequest // consumed one per call
	tableStatus types.TableStatus
	describeErr error
}

func (m *mockDynamo) BatchWriteItem(_ context.Context, params *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	for _, reqs := range params.RequestItems {
		m.batches = append(m.batches, reqs)
	}
	if m.batchErr != nil {
		return nil, m.batchErr
	}
	out := &dynamodb.BatchWriteItemOutput{}
	if len(m.unprocessed) > 0 {
		out.UnprocessedItems = m.unprocessed[0]
		m.unprocessed = m.unprocessed[1:]
	}
	return out, nil
}

func (m *mockDynamo) DescribeTable(_ context.Context, _ *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if m.describeErr != nil {
		return nil, m.describeErr
	}
	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{TableStatus: m.tableStatus},
	}, nil
}

func newTestRepo(db *mockDynamo) *Repo {
	r := New(db, "user-data", zerolog.Nop())
	r.now = func() time.Time {
		return time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)
	}
	return r
}

func itemString(t *testing.T, item map[string]types.AttributeValue, key string) string {
	t.Helper()
	av, ok := item[key]
	require.True(t, ok, "item missing attribute %q", key)
	s, ok := av.(*types.AttributeValueMemberS)
	require.True(t, ok, "attribute %q is not a string", key)
	return s.Value
}

func TestWriteRows_EmptyInputIsNoOp(t *testing.T) {
	db := &mockDynamo{}
	repo := newTestRepo(db)

	count, err := repo.WriteRows(context.Background(), nil, "user_data_2024-03-15_09-30-45.csv")

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, db.batches, "store must not be invoked for empty input")
}

func TestWriteRows_WritesItems(t *testing.T) {
	db := &mockDynamo{}
	repo := newTestRepo(db)
	rows := []csvproc.ParsedRow{
		{"user_id": "1", "name": "John Doe", "email": "john@example.com", "phone_number": ""},
		{"user_id": "2", "name": "Jane Smith"},
	}

	count, err := repo.WriteRows(context.Background(), rows, "user_data_2024-03-15_09-30-45.csv")

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, db.batches, 1)
	require.Len(t, db.batches[0], 2)

	first := db.batches[0][0].PutRequest.Item
	assert.Len(t, itemString(t, first, "entry_id"), 26)
	assert.Equal(t, "user_data_2024-03-15_09-30-45.csv", itemString(t, first, "source_file"))
	assert.Equal(t, "2024-03-15T09:30:45Z", itemString(t, first, "created_at"))
	assert.Equal(t, "John Doe", itemString(t, first, "name"))
	assert.NotContains(t, first, "phone_number", "empty fields must be omitted")

	second := db.batches[0][1].PutRequest.Item
	assert.NotEqual(t, itemString(t, first, "entry_id"), itemString(t, second, "entry_id"))
	assert.Equal(t, itemString(t, first, "created_at"), itemString(t, second, "created_at"),
		"all rows of one call share a timestamp")
}

func TestWriteRows_ChunksAt25(t *testing.T) {
	db := &mockDynamo{}
	repo := newTestRepo(db)

	rows := make([]csvproc.ParsedRow, 60)
	for i := range rows {
		rows[i] = csvproc.ParsedRow{"user_id": "u"}
	}

	count, err := repo.WriteRows(context.Background(), rows, "key.csv")

	require.NoError(t, err)
	assert.Equal(t, 60, count)
	require.Len(t, db.batches, 3)
	assert.Len(t, db.batches[0], 25)
	assert.Len(t, db.batches[1], 25)
	assert.Len(t, db.batches[2], 10)
}

func TestWriteRows_RetriesUnprocessedItems(t *testing.T) {
	leftover := []types.WriteRequest{{PutRequest: &types.PutRequest{
		Item: map[string]types.AttributeValue{"entry_id": &types.AttributeValueMemberS{Value: "x"}},
	}}}
	db := &mockDynamo{unprocessed: []map[string][]types.WriteRequest{
		{"user-data": leftover},
		{}, // second attempt clears
	}}
	repo := newTestRepo(db)

	count, err := repo.WriteRows(context.Background(), []csvproc.ParsedRow{{"user_id": "1"}}, "key.csv")

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Len(t, db.batches, 2)
}

func TestWriteRows_GivesUpOnPersistentUnprocessed(t *testing.T) {
	leftover := map[string][]types.WriteRequest{"user-data": {{PutRequest: &types.PutRequest{
		Item: map[string]types.AttributeValue{"entry_id": &types.AttributeValueMemberS{Value: "x"}},
	}}}}
	db := &mockDynamo{unprocessed: []map[string][]types.WriteRequest{leftover, leftover, leftover}}
	repo := newTestRepo(db)

	_, err := repo.WriteRows(context.Background(), []csvproc.ParsedRow{{"user_id": "1"}}, "key.csv")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unprocessed")
}

func TestWriteRows_PropagatesClientError(t *testing.T) {
	db := &mockDynamo{batchErr: errors.New("throughput exceeded")}
	repo := newTestRepo(db)

	count, err := repo.WriteRows(context.Background(), []csvproc.ParsedRow{{"user_id": "1"}}, "key.csv")

	assert.Error(t, err)
	assert.Zero(t, count)
}

func TestIsReady(t *testing.T) {
	assert.True(t, newTestRepo(&mockDynamo{tableStatus: types.TableStatusActive}).IsReady(context.Background()))
	assert.False(t, newTestRepo(&mockDynamo{tableStatus: types.TableStatusCreating}).IsReady(context.Background()))
	assert.False(t, newTestRepo(&mockDynamo{describeErr: errors.New("not found")}).IsReady(context.Background()))
}
