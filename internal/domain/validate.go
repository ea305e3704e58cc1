package domain

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrWeakPassword = errors.New("password does not meet security requirements")
)

var emailRx = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) error {
	if !emailRx.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

var (
	upperRx  = regexp.MustCompile(`[A-Z]`)
	lowerRx  = regexp.MustCompile(`[a-z]`)
	digitRx  = regexp.MustCompile(`[0-9]`)
	symbolRx = regexp.MustCompile(`[!@#$%^&*]`)
)

// ValidatePassword enforces the admin password policy: at least 8
// characters with an upper, a lower, a digit and a symbol from !@#$%^&*.
func ValidatePassword(password string) error {
	switch {
	case len(password) < 8:
		return fmt.Errorf("%w: must be at least 8 characters long", ErrWeakPassword)
	case !upperRx.MatchString(password):
		return fmt.Errorf("%w: must contain at least one uppercase letter", ErrWeakPassword)
	case !lowerRx.MatchString(password):
		return fmt.Errorf("%w: must contain at least one lowercase letter", ErrWeakPassword)
	case !digitRx.MatchString(password):
		return fmt.Errorf("%w: must contain at least one number", ErrWeakPassword)
	case !symbolRx.MatchString(password):
		return fmt.Errorf("%w: must contain at least one special character (!@#$%%^&*)", ErrWeakPassword)
	}
	return nil
}
