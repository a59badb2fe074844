// Package encrypter hashes and checks user passwords with bcrypt.
package encrypter

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

var ErrMismatch = errors.New("password does not match")

// Encrypter hashes passwords and compares them against stored hashes.
type Encrypter interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) error
}

type bcryptEncrypter struct {
	cost int
}

// New returns a bcrypt Encrypter. A cost outside bcrypt's range falls back to bcrypt.DefaultCost.
func New(cost int) Encrypter {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptEncrypter{cost: cost}
}

func (e *bcryptEncrypter) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (e *bcryptEncrypter) ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
