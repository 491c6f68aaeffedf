// Package identity handles registration, login and the seeded admin account.
package identity

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"lunvee/internal/domain"
	"lunvee/internal/store"
)

var (
	// ErrInvalidCredentials is returned when email or password do not match.
	ErrInvalidCredentials = errors.New("identity: invalid credentials")
	// ErrDuplicateEmail is returned when registering an email already in use.
	ErrDuplicateEmail = errors.New("identity: email already exists")
	// ErrRoleNotAllowed is returned when registering with a role other than
	// client or manager. Admin cannot self-register.
	ErrRoleNotAllowed = errors.New("identity: role not allowed at registration")
)

// Seeded administrator account. The credentials are documented to the end
// user and bootstrap admin access with no separate provisioning flow.
const (
	SeedAdminID       = "admin-001"
	SeedAdminName     = "Lunvée Admin"
	SeedAdminEmail    = "admin@lunvee.com"
	SeedAdminPassword = "admin"
)

// Service validates credentials and creates users.
type Service struct {
	users store.UserStore // Backing user store
}

// NewService returns an identity service over the given user store.
func NewService(users store.UserStore) *Service {
	return &Service{users: users}
}

// Authenticate matches email and password against the stored users.
// The email comparison is exact and case-sensitive; the password is
// verified against the stored bcrypt hash.
func (s *Service) Authenticate(email, password string) (domain.User, error) {
	u, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Register creates a new client or manager account. The email must be
// unused; the role is restricted at registration time.
func (s *Service) Register(name, email, password, phone, role string) (domain.User, error) {
	if role != domain.RoleClient && role != domain.RoleManager {
		return domain.User{}, ErrRoleNotAllowed
	}
	if _, err := s.users.GetByEmail(email); err == nil {
		return domain.User{}, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	u := domain.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Role:     role,
		Password: string(hash),
	}
	if err := s.users.Append(u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return domain.User{}, ErrDuplicateEmail
		}
		return domain.User{}, err
	}
	return u, nil
}

// EnsureAdminSeed inserts the fixed administrator account if no user with
// the admin role exists yet. Idempotent; must run at startup before any
// authentication call.
func (s *Service) EnsureAdminSeed() error {
	users, err := s.users.GetAll()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Role == domain.RoleAdmin {
			return nil // Admin already present
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := domain.User{
		ID:       SeedAdminID,
		Name:     SeedAdminName,
		Email:    SeedAdminEmail,
		Role:     domain.RoleAdmin,
		Password: string(hash),
	}
	if err := s.users.Append(admin); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"admin_id": SeedAdminID,    // Seeded account id
		"email":    SeedAdminEmail, // Documented login
	}).Info("Seeded administrator account")
	return nil
}
