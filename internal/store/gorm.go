package store

import (
	"errors"

	"gorm.io/gorm"

	"lunvee/internal/domain"
)

// GormUserStore is the MySQL-backed UserStore.
type GormUserStore struct {
	db *gorm.DB // GORM database handle
}

// NewGormUserStore wraps db in a UserStore.
func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

// GetAll returns every user.
func (s *GormUserStore) GetAll() ([]domain.User, error) {
	var users []domain.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID returns the user with the given id.
func (s *GormUserStore) GetByID(id string) (domain.User, error) {
	var u domain.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

// GetByEmail returns the user with the given email (exact,
// case-sensitive match on the stored value).
func (s *GormUserStore) GetByEmail(email string) (domain.User, error) {
	var u domain.User
	if err := s.db.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

// Append inserts a new user. A duplicate id or email is ErrDuplicate.
func (s *GormUserStore) Append(u domain.User) error {
	var count int64
	if err := s.db.Model(&domain.User{}).Where("id = ? OR email = ?", u.ID, u.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	return s.db.Create(&u).Error
}

// GormEventStore is the MySQL-backed EventStore.
type GormEventStore struct {
	db *gorm.DB // GORM database handle
}

// NewGormEventStore wraps db in an EventStore.
func NewGormEventStore(db *gorm.DB) *GormEventStore {
	return &GormEventStore{db: db}
}

// GetAll returns every event, oldest first.
func (s *GormEventStore) GetAll() ([]domain.Event, error) {
	var events []domain.Event
	if err := s.db.Order("created_at asc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetByID returns the event with the given id.
func (s *GormEventStore) GetByID(id string) (domain.Event, error) {
	var e domain.Event
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Event{}, ErrNotFound
		}
		return domain.Event{}, err
	}
	return e, nil
}

// Append inserts a new event. A duplicate id is ErrDuplicate.
func (s *GormEventStore) Append(e domain.Event) error {
	var count int64
	if err := s.db.Model(&domain.Event{}).Where("id = ?", e.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	return s.db.Create(&e).Error
}

// UpdateByID replaces the event matching id. A missing record is
// ErrNotFound rather than a silent no-op.
func (s *GormEventStore) UpdateByID(id string, e domain.Event) error {
	var count int64
	if err := s.db.Model(&domain.Event{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	e.ID = id // The identifier itself is immutable
	return s.db.Model(&domain.Event{}).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(&e).Error
}
