package identity

import (
	"errors"
	"testing"

	"lunvee/internal/domain"
	"lunvee/internal/store"
)

func newService() *Service {
	return NewService(store.NewMemoryUserStore())
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newService()
	u, err := svc.Register("Ada", "ada@example.com", "secret123", "+1 234", domain.RoleClient)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.ID == "" {
		t.Fatal("registered user has no id")
	}
	if u.Role != domain.RoleClient {
		t.Fatalf("role = %q, want %q", u.Role, domain.RoleClient)
	}
	if u.Password == "secret123" {
		t.Fatal("password stored in plaintext")
	}

	got, err := svc.Authenticate("ada@example.com", "secret123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("authenticated id = %q, want %q", got.ID, u.ID)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := newService()
	if _, err := svc.Register("Ada", "ada@example.com", "secret123", "", domain.RoleClient); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Authenticate("ada@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate("nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newService()
	if _, err := svc.Register("Ada", "ada@example.com", "secret123", "", domain.RoleClient); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Register("Imposter", "ada@example.com", "other", "", domain.RoleManager)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("duplicate register err = %v, want ErrDuplicateEmail", err)
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc := newService()
	_, err := svc.Register("Eve", "eve@example.com", "secret123", "", domain.RoleAdmin)
	if !errors.Is(err, ErrRoleNotAllowed) {
		t.Fatalf("admin register err = %v, want ErrRoleNotAllowed", err)
	}
}

func TestRegisteredUserIsRetrievable(t *testing.T) {
	users := store.NewMemoryUserStore()
	svc := NewService(users)
	u, err := svc.Register("Mia", "mia@example.com", "secret123", "", domain.RoleManager)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	all, err := users.GetAll()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	found := false
	for _, stored := range all {
		if stored.ID == u.ID && stored.Email == "mia@example.com" {
			found = true
		}
	}
	if !found {
		t.Fatal("registered user not retrievable via GetAll")
	}
}

func TestEnsureAdminSeed(t *testing.T) {
	users := store.NewMemoryUserStore()
	svc := NewService(users)
	if err := svc.EnsureAdminSeed(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Seeding again must not create a second admin.
	if err := svc.EnsureAdminSeed(); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	all, _ := users.GetAll()
	admins := 0
	for _, u := range all {
		if u.Role == domain.RoleAdmin {
			admins++
		}
	}
	if admins != 1 {
		t.Fatalf("admin count = %d, want 1", admins)
	}

	// The documented credentials must work.
	admin, err := svc.Authenticate(SeedAdminEmail, SeedAdminPassword)
	if err != nil {
		t.Fatalf("seed admin login: %v", err)
	}
	if admin.ID != SeedAdminID {
		t.Fatalf("seed admin id = %q, want %q", admin.ID, SeedAdminID)
	}
}
