package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks caller-correctable input problems.
	ErrValidation = errors.New("invalid input")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidToken       = errors.New("invalid token")
)

func validationError(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
