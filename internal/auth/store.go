package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/mandarin-prep/backend/internal/models"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUserNotFound   = errors.New("user not found")
)

// Store is the in-memory user registry. Accounts live for the lifetime
// of the process; durable storage is out of scope for this service.
type Store struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
	byID    map[int64]*models.User
	nextID  int64
}

func NewStore() *Store {
	return &Store{
		byEmail: make(map[string]*models.User),
		byID:    make(map[int64]*models.User),
		nextID:  1,
	}
}

// Create registers a new account. The email must be unique.
func (s *Store) Create(email, name, hashedPassword string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return models.User{}, ErrDuplicateEmail
	}

	now := time.Now()
	user := &models.User{
		ID:        s.nextID,
		Email:     email,
		Name:      name,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextID++
	s.byEmail[email] = user
	s.byID[user.ID] = user
	return *user, nil
}

func (s *Store) GetByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byEmail[email]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return *user, nil
}

func (s *Store) GetByID(id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return *user, nil
}
