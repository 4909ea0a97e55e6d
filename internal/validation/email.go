package validation

import (
	"errors"
	"net/mail"
)

// ValidateEmail checks that the address parses under RFC 5322 and fits the
// RFC 5321 length cap of 254 characters.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email address is required")
	}
	if len(email) > 254 {
		return errors.New("email address is too long (max 254 characters)")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.New("invalid email address format")
	}
	return nil
}
