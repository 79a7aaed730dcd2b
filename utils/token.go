package utils

import "math/rand"

const joinCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateJoinCode builds a 6-character uppercase alphanumeric code a coach
// shares with students at registration.
func GenerateJoinCode() string {
	code := make([]byte, 6)
	for i := range code {
		code[i] = joinCodeCharset[rand.Intn(len(joinCodeCharset))]
	}
	return string(code)
}

// GenerateRandomToken returns a mixed-case alphanumeric token, used for
// password reset codes.
func GenerateRandomToken(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	token := make([]byte, length)
	for i := range token {
		token[i] = charset[rand.Intn(len(charset))]
	}
	return string(token)
}
