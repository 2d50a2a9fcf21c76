// Package validate holds request-level field checks shared by the
// HTTP handlers. Entity invariants live on the model types; these are
// the checks that only make sense at the transport boundary.
package validate

import (
	"fmt"
	"regexp"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// usernameRx keeps usernames to a predictable shape: letters, digits,
// underscore and hyphen, 1-30 chars.
var usernameRx = regexp.MustCompile(`^[A-Za-z0-9_-]{1,30}$`)

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func Username(v string) error {
	if v == "" {
		return fmt.Errorf("username is required")
	}
	if !usernameRx.MatchString(v) {
		return fmt.Errorf("username must be 1-30 letters, digits, underscore or hyphen")
	}
	return nil
}

func Email(v string) error {
	if v == "" {
		return fmt.Errorf("email is required")
	}
	if len(v) > 320 || !emailRx.MatchString(v) {
		return fmt.Errorf("invalid email")
	}
	return nil
}

func Password(v string) error {
	if v == "" {
		return fmt.Errorf("password is required")
	}
	if len(v) > 72 {
		// bcrypt truncates beyond 72 bytes; reject instead
		return fmt.Errorf("password exceeds 72 characters")
	}
	return nil
}
