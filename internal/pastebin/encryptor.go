package pastebin

import "io"

// Encryptor protects paste bodies with a passphrase before upload.
// Ciphertext must be printable text so it survives a paste round trip.
type Encryptor interface {
	// Encrypt reads plaintext from r and writes armored ciphertext to w.
	Encrypt(r io.Reader, w io.Writer, passphrase string) error

	// Decrypt reads armored ciphertext from r and writes plaintext to w.
	// Returns an error if the passphrase is incorrect.
	Decrypt(r io.Reader, w io.Writer, passphrase string) error

	// IsEncrypted reports whether text looks like this encryptor's output.
	IsEncrypted(text string) bool
}
