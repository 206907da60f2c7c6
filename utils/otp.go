package utils

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
)

// GenerateGuestID "guest:" + 16 url-safe символов
func GenerateGuestID() string {
	b := make([]byte, 12)
	rand.Read(b)
	return GuestPrefix + base64.RawURLEncoding.EncodeToString(b)
}

func GenerateSessionID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
