package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost 12 keeps a single hash in the tens of milliseconds, slow enough
// to resist offline brute force on leaked rows.
const bcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt. The salt is embedded
// in the returned hash string; the plaintext is never stored anywhere.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// A mismatch is (false, nil); a malformed or truncated hash is an error.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
