package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dan9191/auth-service/internal/models"
	"github.com/Dan9191/auth-service/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrDuplicateUser means another account already holds the username
	// or email.
	ErrDuplicateUser = errors.New("username or email already exists")
	// ErrInvalidCredentials covers both an unknown identifier and a wrong
	// password; callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository is the persistence surface the service depends on.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	FindByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	DeleteUser(ctx context.Context, id int) error
}

// Service handles business logic
type Service struct {
	repo UserRepository
	log  *logrus.Logger
}

// NewService initializes a new service
func NewService(repo UserRepository, log *logrus.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Register creates a new user with a hashed password. The email is
// normalized to lowercase before the duplicate check and storage.
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	email = strings.ToLower(email)

	_, err := s.repo.FindByUsernameOrEmail(ctx, username, email)
	if err == nil {
		return nil, ErrDuplicateUser
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	// A concurrent registration can still win between the pre-check and
	// the insert; the unique constraint reports it as a duplicate.
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Authenticate verifies the identifier (email or username) and password
// and returns the matching user.
func (s *Service) Authenticate(ctx context.Context, identifier, password string) (*models.User, error) {
	user, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.log.Infof("User logged in: %s", user.Email)
	return user, nil
}

// DeleteAccount removes the user. A user already deleted through another
// path is treated as success.
func (s *Service) DeleteAccount(ctx context.Context, id int) error {
	err := s.repo.DeleteUser(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	s.log.Infof("User deleted: %d", id)
	return nil
}
