package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID - случайный идентификатор из 16 hex-символов.
// Используется для маркировки websocket-клиентов в логах.
func GenerateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}
