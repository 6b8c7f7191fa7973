package validation

import (
	"errors"
	"strings"
)

// ValidateTitle checks goal and milestone titles.
func ValidateTitle(title string) error {
	title = strings.TrimSpace(title)

	if title == "" {
		return errors.New("title is required")
	}

	if len(title) > 200 {
		return errors.New("title must not exceed 200 characters")
	}

	return nil
}
