package password

import (
	"errors"
	"unicode"

	"github.com/savioruz/geoapi/pkg/failure"
	"golang.org/x/crypto/bcrypt"
)

const Field = "Password"

var (
	ErrNoUpper = errors.New("Password must contain one uppercase letter.")
	ErrNoLower = errors.New("Password must contain one lowercase letter.")
	ErrNoDigit = errors.New("Password must contain one number.")
)

// Validate checks the character classes a password must contain and reports each missing
// class as a separate validation failure on the Password field.
func Validate(password string) error {
	var hasUpper, hasLower, hasDigit bool

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}

	var errs []error

	if !hasUpper {
		errs = append(errs, failure.Validation(Field, ErrNoUpper.Error()))
	}

	if !hasLower {
		errs = append(errs, failure.Validation(Field, ErrNoLower.Error()))
	}

	if !hasDigit {
		errs = append(errs, failure.Validation(Field, ErrNoDigit.Error()))
	}

	return failure.Join(errs...)
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func Check(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
