package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher is the credential hasher injected into the user service
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the default bcrypt cost
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash returns the one-way hash of a plaintext password
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether the plaintext matches the stored hash
func (h *BcryptHasher) Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
