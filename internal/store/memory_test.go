package store

import (
	"errors"
	"testing"

	"lunvee/internal/domain"
)

func TestMemoryUserStoreAppendAndLookup(t *testing.T) {
	s := NewMemoryUserStore()
	u := domain.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: domain.RoleClient}
	if err := s.Append(u); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := s.GetByID("u1")
	if err != nil || got.Email != "ada@example.com" {
		t.Fatalf("GetByID = %+v, %v", got, err)
	}
	got, err = s.GetByEmail("ada@example.com")
	if err != nil || got.ID != "u1" {
		t.Fatalf("GetByEmail = %+v, %v", got, err)
	}

	all, err := s.GetAll()
	if err != nil || len(all) != 1 {
		t.Fatalf("GetAll = %v, %v", all, err)
	}
}

func TestMemoryUserStoreRejectsDuplicates(t *testing.T) {
	s := NewMemoryUserStore()
	if err := s.Append(domain.User{ID: "u1", Email: "ada@example.com"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append(domain.User{ID: "u2", Email: "ada@example.com"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate email err = %v, want ErrDuplicate", err)
	}
	if err := s.Append(domain.User{ID: "u1", Email: "other@example.com"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate id err = %v, want ErrDuplicate", err)
	}
}

func TestMemoryUserStoreEmailIsCaseSensitive(t *testing.T) {
	s := NewMemoryUserStore()
	if err := s.Append(domain.User{ID: "u1", Email: "Ada@example.com"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := s.GetByEmail("ada@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("lower-cased lookup err = %v, want ErrNotFound", err)
	}
}

func TestMemoryEventStoreUpdateByID(t *testing.T) {
	s := NewMemoryEventStore()
	e := domain.Event{ID: "ev1", ClientID: "u1", Status: domain.StatusCreated, CreatedAt: 42}
	if err := s.Append(e); err != nil {
		t.Fatalf("append: %v", err)
	}

	e.Status = domain.StatusExecution
	e.CreatedAt = 999 // Must be ignored; creation time is immutable
	if err := s.UpdateByID("ev1", e); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := s.GetByID("ev1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.StatusExecution {
		t.Errorf("status = %q, want %q", got.Status, domain.StatusExecution)
	}
	if got.CreatedAt != 42 {
		t.Errorf("created_at = %d, want 42", got.CreatedAt)
	}
}

func TestMemoryEventStoreUpdateMissingIsNotFound(t *testing.T) {
	s := NewMemoryEventStore()
	err := s.UpdateByID("missing", domain.Event{ID: "missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryEventStoreRejectsDuplicateID(t *testing.T) {
	s := NewMemoryEventStore()
	if err := s.Append(domain.Event{ID: "ev1"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append(domain.Event{ID: "ev1"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate id err = %v, want ErrDuplicate", err)
	}
}
