package password

import "golang.org/x/crypto/bcrypt"

// Hash produces a bcrypt digest with a fresh random salt. Two calls with
// the same plaintext never produce the same digest.
func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches digest. Malformed digests are a
// non-match, never an error to the caller.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
