package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Seeds(t *testing.T) {
	s := NewMemoryStore()

	john, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, "John Doe", john.Name)
	assert.Equal(t, "john@example.com", john.Email)
	assert.True(t, john.Active)
	assert.Len(t, john.RecentActivity, 3)

	jane, ok := s.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Jane Smith", jane.Name)
	assert.Len(t, jane.RecentActivity, 2)

	_, ok = s.Get("99")
	assert.False(t, ok)
}

func TestMemoryStore_Create(t *testing.T) {
	s := NewMemoryStore()

	u := s.Create("Alice", "alice@example.com")

	assert.Equal(t, "3", u.ID)
	assert.True(t, u.Active)
	assert.NotEmpty(t, u.CreatedAt)
	assert.Equal(t, []string{"Account created"}, u.RecentActivity)

	got, ok := s.Get("3")
	require.True(t, ok)
	assert.Equal(t, u, got)

	next := s.Create("Bob", "bob@example.com")
	assert.Equal(t, "4", next.ID)
}
