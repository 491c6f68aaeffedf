package store

import (
	"sync"
	"time"

	"lunvee/internal/domain"
)

// MemoryUserStore keeps users in memory. Used by tests and as a reference
// implementation of the store contract.
type MemoryUserStore struct {
	mu    sync.Mutex
	users []domain.User // Insertion order preserved
}

// NewMemoryUserStore returns an empty in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

// GetAll returns a copy of every user in insertion order.
func (s *MemoryUserStore) GetAll() ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// GetByID returns the user with the given id.
func (s *MemoryUserStore) GetByID(id string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, ErrNotFound
}

// GetByEmail returns the user with the given email (case-sensitive).
func (s *MemoryUserStore) GetByEmail(email string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, ErrNotFound
}

// Append inserts a new user, rejecting duplicate ids and emails.
func (s *MemoryUserStore) Append(u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.ID == u.ID || existing.Email == u.Email {
			return ErrDuplicate
		}
	}
	s.users = append(s.users, u)
	return nil
}

// MemoryEventStore keeps events in memory.
type MemoryEventStore struct {
	mu     sync.Mutex
	events []domain.Event // Insertion order preserved
}

// NewMemoryEventStore returns an empty in-memory event store.
func NewMemoryEventStore() *MemoryEventStore {
	return &MemoryEventStore{}
}

// GetAll returns a copy of every event in insertion order.
func (s *MemoryEventStore) GetAll() ([]domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

// GetByID returns the event with the given id.
func (s *MemoryEventStore) GetByID(id string) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Event{}, ErrNotFound
}

// Append inserts a new event, rejecting duplicate ids.
func (s *MemoryEventStore) Append(e domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.events {
		if existing.ID == e.ID {
			return ErrDuplicate
		}
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().UnixMilli()
	}
	s.events = append(s.events, e)
	return nil
}

// UpdateByID replaces the event matching id, keeping id and creation time.
func (s *MemoryEventStore) UpdateByID(id string, e domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.events {
		if existing.ID == id {
			e.ID = id
			e.CreatedAt = existing.CreatedAt
			s.events[i] = e
			return nil
		}
	}
	return ErrNotFound
}
