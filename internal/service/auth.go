package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/repository"
	"github.com/focusflow/focusflow/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepository repository.UserRepository
	tokens         TokenScheme
}

func NewAuthService(userRepository repository.UserRepository, tokens TokenScheme) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		tokens:         tokens,
	}
}

func (s *AuthService) Register(username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)

	err := validation.ValidateUsername(username)
	if err != nil {
		return nil, validationError(err)
	}

	err = validation.ValidatePassword(password)
	if err != nil {
		return nil, validationError(err)
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	err = s.userRepository.Create(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login verifies the credentials and returns the user together with a
// bearer token from the configured scheme.
func (s *AuthService) Login(username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)

	user, err := s.userRepository.ByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}

	err = s.ComparePassword(password, user.PasswordHash)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)
	return user, token, nil
}

// ResolveToken maps a bearer token to an authenticated user id. Tokens that
// do not parse or do not reference an existing user are ErrInvalidToken; the
// two cases are indistinguishable to the caller.
func (s *AuthService) ResolveToken(token string) (int64, error) {
	userID, err := s.tokens.Resolve(token)
	if err != nil {
		return 0, ErrInvalidToken
	}

	_, err = s.userRepository.ByID(userID)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return userID, nil
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
