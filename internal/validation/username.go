package validation

import (
	"errors"
	"strings"
)

// ValidateUsername checks that a username is present and fits the column.
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)

	if username == "" {
		return errors.New("username is required")
	}

	if len(username) > 80 {
		return errors.New("username must not exceed 80 characters")
	}

	return nil
}
