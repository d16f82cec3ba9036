// Package users provides the repository behind the mock user endpoints.
// Production would back this with a real store; the in-memory implementation
// ships seeded demo data and is what tests inject.
package users

import (
	"strconv"
	"sync"
	"time"

	"github.com/nemoai/user-data-api/internal/models"
)

// Store is the repository contract the request handlers depend on.
type Store interface {
	Get(id string) (models.User, bool)
	Create(name, email string) models.User
}

// MemoryStore is a mutex-guarded in-memory Store.
type MemoryStore struct {
	mu     sync.Mutex
	users  map[string]models.User
	nextID int
	now    func() time.Time
}

// NewMemoryStore returns a store seeded with the demo users.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		users:  make(map[string]models.User),
		nextID: 1,
		now:    time.Now,
	}
	now := s.now()
	s.seed(models.User{
		Name:           "John Doe",
		Email:          "john@example.com",
		Active:         true,
		CreatedAt:      now.AddDate(0, 0, -30).Format(time.RFC3339),
		RecentActivity: []string{"Logged in", "Updated profile", "Viewed dashboard"},
	})
	s.seed(models.User{
		Name:           "Jane Smith",
		Email:          "jane@example.com",
		Active:         true,
		CreatedAt:      now.AddDate(0, 0, -15).Format(time.RFC3339),
		RecentActivity: []string{"Created account", "Completed onboarding"},
	})
	return s
}

func (s *MemoryStore) seed(u models.User) {
	u.ID = strconv.Itoa(s.nextID)
	s.nextID++
	s.users[u.ID] = u
}

// Get returns the user with the given id.
func (s *MemoryStore) Get(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

// Create adds a new active user with a sequential id and returns it.
func (s *MemoryStore) Create(name, email string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := models.User{
		ID:             strconv.Itoa(s.nextID),
		Name:           name,
		Email:          email,
		Active:         true,
		CreatedAt:      s.now().Format(time.RFC3339),
		RecentActivity: []string{"Account created"},
	}
	s.nextID++
	s.users[u.ID] = u
	return u
}
