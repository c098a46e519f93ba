package adapters

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/pocket-ledger/backend/internal/application/adapter"
)

const (
	defaultBcryptCost = 12
	minPasswordLength = 8

	// bcrypt ignores input past 72 bytes.
	maxPasswordLength = 72
)

var (
	errPasswordTooShort = errors.New("password must be at least 8 characters long")
	errPasswordTooLong  = errors.New("password must be at most 72 bytes long")
	errPasswordNoDigit  = errors.New("password must contain a letter and a digit")
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates the account password hasher.
func NewBcryptHasher() adapter.PasswordHasher {
	return &bcryptHasher{cost: defaultBcryptCost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// CheckStrength requires 8 to 72 bytes with at least one letter and one digit.
func (h *bcryptHasher) CheckStrength(password string) error {
	switch {
	case len(password) < minPasswordLength:
		return errPasswordTooShort
	case len(password) > maxPasswordLength:
		return errPasswordTooLong
	}

	var letter, digit bool
	for _, r := range password {
		letter = letter || unicode.IsLetter(r)
		digit = digit || unicode.IsDigit(r)
	}
	if !letter || !digit {
		return errPasswordNoDigit
	}
	return nil
}
