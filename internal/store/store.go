// Package store persists users and events. The interfaces mirror the simple
// record-store contract the application needs (get-all, append, update-by-id);
// a gorm/MySQL implementation backs production and an in-memory one backs tests.
package store

import (
	"errors"

	"lunvee/internal/domain"
)

var (
	// ErrNotFound is returned when no record matches the given id or key.
	ErrNotFound = errors.New("store: record not found")
	// ErrDuplicate is returned when appending would violate an identifier
	// or email uniqueness constraint.
	ErrDuplicate = errors.New("store: duplicate record")
)

// UserStore holds registered users. Users are never updated or deleted.
type UserStore interface {
	GetAll() ([]domain.User, error)
	GetByID(id string) (domain.User, error)
	GetByEmail(email string) (domain.User, error)
	Append(u domain.User) error
}

// EventStore holds events. Events are never deleted.
type EventStore interface {
	GetAll() ([]domain.Event, error)
	GetByID(id string) (domain.Event, error)
	Append(e domain.Event) error
	UpdateByID(id string, e domain.Event) error
}
