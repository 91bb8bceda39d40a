package testutil

import (
	"pastebin-go/internal/encryption"
	"pastebin-go/internal/pastebin"
)

// NewTestEncryptor creates a new test encryptor for testing.
func NewTestEncryptor() pastebin.Encryptor {
	return encryption.NewTestEncryptor()
}
