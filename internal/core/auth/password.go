package auth

import "golang.org/x/crypto/bcrypt"

// HashCost matches the work factor the original deployment used. Raising it
// only affects newly created hashes; existing ones keep their embedded cost.
const HashCost = 10

// HashPassword returns a salted bcrypt hash of plain. Two calls on the same
// input produce different hashes.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
// Any failure, including a malformed hash string, is reported as a mismatch
// so callers never branch on hashing internals.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
