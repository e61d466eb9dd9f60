package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventplanner-backend/internal/shared/auth"
)

// ErrInvalidCredentials is returned for bad email/password pairs.
var ErrInvalidCredentials = errors.New("incorrect username or password")

// Service contains account business logic.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Register creates a new active account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, email, password string) (User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return User{}, errors.New("email and password are required")
	}

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:             uuid.NewString(),
		Email:          email,
		HashedPassword: hash,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Authenticate verifies an email/password pair. Unknown emails and wrong
// passwords return the same error.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if !auth.CheckPassword(password, user.HashedPassword) {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID returns the user with the given ID.
func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

// ResolveEmail maps a verified token subject to a stored user ID for the auth
// middleware.
func (s *Service) ResolveEmail(ctx context.Context, email string) (string, error) {
	user, err := s.Repo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return "", err
	}
	return user.ID, nil
}
