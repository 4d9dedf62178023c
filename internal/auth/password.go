package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// maxPasswordBytes is the bcrypt primitive's input limit. Longer input is
// truncated before hashing, on both the hash and verify paths. This mirrors
// the limit of the underlying algorithm and is intentional; recent
// x/crypto/bcrypt versions reject longer input outright.
const maxPasswordBytes = 72

// HashPassword hashes a plaintext password for credential storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored hash.
// A malformed stored hash yields false, never an error.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(plain)) == nil
}

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
