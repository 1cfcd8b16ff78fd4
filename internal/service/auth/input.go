package auth

import (
	"strings"
	"unicode"

	"github.com/kagehisa/animemo-backend/internal/domain"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 32
	minPasswordLen = 8
	maxPasswordLen = 128
)

// RegisterInput holds the parameters for creating an account.
type RegisterInput struct {
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (i *RegisterInput) Validate() error {
	var errs []domain.FieldError

	username := strings.TrimSpace(i.Username)
	switch {
	case username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case len(username) < minUsernameLen || len(username) > maxUsernameLen:
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be 3-32 characters"})
	case !isUsername(username):
		errs = append(errs, domain.FieldError{Field: "username", Message: "only letters, digits, '-' and '_'"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < minPasswordLen || len(i.Password) > maxPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be 8-128 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds credentials for logging in.
type LoginInput struct {
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (i *LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func isUsername(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}
