// Package password provides one-way hashing and verification of plaintext
// passwords using argon2id. Unlike bcrypt there is no 72-byte input limit,
// so long passphrases are never silently truncated before hashing.
package password

import "github.com/matthewhartstonge/argon2"

var cfg = argon2.DefaultConfig()

// Hash produces an encoded argon2id digest with a fresh random salt.
// The same plaintext hashed twice yields different digests.
func Hash(plaintext string) (string, error) {
	encoded, err := cfg.HashEncoded([]byte(plaintext))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Verify reports whether plaintext reproduces the stored digest. It returns
// false for malformed digests rather than propagating a decode error, so a
// corrupted stored hash behaves like a failed match.
func Verify(plaintext, encoded string) bool {
	ok, err := argon2.VerifyEncoded([]byte(plaintext), []byte(encoded))
	return err == nil && ok
}
