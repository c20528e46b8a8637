package hash

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is tuned to resist brute force while staying practical for
// interactive login.
const DefaultCost = 12

func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultCost)
}

func HashPasswordWithCost(password string, cost int) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether password matches the bcrypt digest. The salt
// and cost are embedded in the digest itself, and a malformed digest is
// treated as a mismatch rather than an error.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
