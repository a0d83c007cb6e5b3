// Package admin is the operator surface: one configured credential
// pair, short-lived bearer tokens, and the content-mutation endpoints.
// There is no user registration; the site has a single operator.
package admin

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials is the operator login configured through the environment.
// PasswordHash is a bcrypt hash, never the plaintext.
type Credentials struct {
	Email        string
	PasswordHash []byte
}

// Verify checks an attempted login against the configured pair.
func (c Credentials) Verify(email, password string) error {
	if email != c.Email {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
