package token

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Fixed low cost, matching the other benchmark variants. Not a production
// setting.
const bcryptCost = 10

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %v", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash. Any bcrypt failure,
// mismatch or otherwise, is a plain false so callers can't distinguish the
// cases.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
