package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomToken returns a hex-encoded random string of the given
// byte length.
func GenerateRandomToken(length int) (string, error) {
	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// GenerateSessionToken returns an opaque session token. The token carries
// no user information; the session store maps it to a user id.
func GenerateSessionToken() (string, error) {
	return GenerateRandomToken(32)
}
