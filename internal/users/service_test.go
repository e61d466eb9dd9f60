package users

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	user, err := svc.Register(context.Background(), "Planner@Example.com", "s3cret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected generated user id")
	}
	if user.Email != "planner@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if !user.IsActive {
		t.Fatal("expected new user to be active")
	}
	if user.HashedPassword == "s3cret" {
		t.Fatal("password must not be stored in plain text")
	}

	got, err := svc.Authenticate(context.Background(), "planner@example.com", "s3cret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected user %q, got %q", user.ID, got.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.Register(context.Background(), "planner@example.com", "s3cret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Register(context.Background(), "planner@example.com", "other")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.Register(context.Background(), "planner@example.com", "s3cret"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "planner@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody@example.com", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestResolveEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	user, err := svc.Register(context.Background(), "planner@example.com", "s3cret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	id, err := svc.ResolveEmail(context.Background(), "planner@example.com")
	if err != nil {
		t.Fatalf("resolve email: %v", err)
	}
	if id != user.ID {
		t.Fatalf("expected %q, got %q", user.ID, id)
	}

	if _, err := svc.ResolveEmail(context.Background(), "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
