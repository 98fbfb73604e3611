package utils

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword enforces the signup password policy: at least 8
// characters with an upper-case letter, a lower-case letter and a digit.
// Returns the list of unmet requirements; empty means valid.
func ValidatePassword(password string) []string {
	var errs []string

	if len(password) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLower {
		errs = append(errs, "password must contain a lower-case letter")
	}
	if !hasUpper {
		errs = append(errs, "password must contain an upper-case letter")
	}
	if !hasDigit {
		errs = append(errs, "password must contain a number")
	}
	return errs
}

func PasswordErrorMessage(errs []string) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return "password must meet the following requirements: " + strings.Join(errs, "; ")
}
