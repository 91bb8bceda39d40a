package encryption

import (
	"fmt"

	"pastebin-go/internal/config"
	"pastebin-go/internal/pastebin"
)

// NewEncryptorFromConfig creates an Encryptor based on the configuration type.
func NewEncryptorFromConfig(cfg config.EncryptionConfig) (pastebin.Encryptor, error) {
	switch cfg.Type {
	case "age", "":
		return NewAgeEncryptor(), nil
	case "test":
		return NewTestEncryptor(), nil
	default:
		return nil, fmt.Errorf("unknown encryption type: %q", cfg.Type)
	}
}
