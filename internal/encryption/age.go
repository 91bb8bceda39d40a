package encryption

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"filippo.io/age"
	"filippo.io/age/armor"

	"pastebin-go/internal/pastebin"
)

// AgeEncryptor implements pastebin.Encryptor with age scrypt passphrase
// recipients. Output is ASCII armored so it can be stored as paste text.
type AgeEncryptor struct {
	// workFactor overrides the scrypt work factor when non-zero.
	workFactor int
}

var _ pastebin.Encryptor = (*AgeEncryptor)(nil)

// NewAgeEncryptor creates an AgeEncryptor with age's default work factor.
func NewAgeEncryptor() *AgeEncryptor {
	return &AgeEncryptor{}
}

// Encrypt reads plaintext from r and writes armored ciphertext to w.
func (e *AgeEncryptor) Encrypt(r io.Reader, w io.Writer, passphrase string) error {
	if passphrase == "" {
		return pastebin.ErrPassphraseRequired
	}

	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return fmt.Errorf("creating scrypt recipient: %w", err)
	}
	if e.workFactor > 0 {
		recipient.SetWorkFactor(e.workFactor)
	}

	armorWriter := armor.NewWriter(w)
	encWriter, err := age.Encrypt(armorWriter, recipient)
	if err != nil {
		return fmt.Errorf("creating encrypted writer: %w", err)
	}

	if _, err := io.Copy(encWriter, r); err != nil {
		return fmt.Errorf("encrypting data: %w", err)
	}

	if err := encWriter.Close(); err != nil {
		return fmt.Errorf("finalizing encryption: %w", err)
	}
	if err := armorWriter.Close(); err != nil {
		return fmt.Errorf("finalizing armor: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("writing trailing newline: %w", err)
	}

	return nil
}

// Decrypt reads armored ciphertext from r and writes plaintext to w.
func (e *AgeEncryptor) Decrypt(r io.Reader, w io.Writer, passphrase string) error {
	if passphrase == "" {
		return pastebin.ErrPassphraseRequired
	}

	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return fmt.Errorf("creating scrypt identity: %w", err)
	}
	if e.workFactor > 0 {
		identity.SetMaxWorkFactor(e.workFactor)
	}

	decReader, err := age.Decrypt(armor.NewReader(bufio.NewReader(r)), identity)
	if err != nil {
		return fmt.Errorf("creating decrypted reader: %w", err)
	}

	if _, err := io.Copy(w, decReader); err != nil {
		return fmt.Errorf("decrypting data: %w", err)
	}

	return nil
}

// IsEncrypted reports whether text begins with the age armor header.
func (e *AgeEncryptor) IsEncrypted(text string) bool {
	return strings.HasPrefix(strings.TrimLeft(text, " \t\r\n"), armor.Header)
}

