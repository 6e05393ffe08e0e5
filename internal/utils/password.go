package utils

import "golang.org/x/crypto/bcrypt" // Password hashing

// HashSecret returns a salted bcrypt hash of the secret using the given cost
func HashSecret(secret string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost // Fall back on out-of-range configuration
	}
	b, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifySecret recomputes the hash of secret and compares it with hash
func VerifySecret(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
