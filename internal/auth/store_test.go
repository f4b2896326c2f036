package auth

import (
	"errors"
	"testing"
)

func TestStore_CreateAndLookup(t *testing.T) {
	s := NewStore()

	user, err := s.Create("li@example.com", "Li Wei", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 {
		t.Errorf("first user should get id 1, got %d", user.ID)
	}

	byEmail, err := s.GetByEmail("li@example.com")
	if err != nil || byEmail.ID != user.ID {
		t.Errorf("lookup by email failed: %v", err)
	}
	byID, err := s.GetByID(user.ID)
	if err != nil || byID.Email != "li@example.com" {
		t.Errorf("lookup by id failed: %v", err)
	}
}

func TestStore_DuplicateEmailRejected(t *testing.T) {
	s := NewStore()

	if _, err := s.Create("li@example.com", "Li Wei", "hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := s.Create("li@example.com", "Someone Else", "hash2")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_UnknownUser(t *testing.T) {
	s := NewStore()

	if _, err := s.GetByEmail("nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := s.GetByID(99); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestStore_IDsIncrement(t *testing.T) {
	s := NewStore()

	a, _ := s.Create("a@example.com", "A", "hash")
	b, _ := s.Create("b@example.com", "B", "hash")
	if b.ID != a.ID+1 {
		t.Errorf("ids should increment, got %d then %d", a.ID, b.ID)
	}
}
