package encryption

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"pastebin-go/internal/pastebin"
)

// testHeader starts every body produced by TestEncryptor.
const testHeader = "PBENC:"

// TestEncryptor is a simple, deterministic encryptor for testing.
// It writes the header, the passphrase and the base64 plaintext on one line,
// and refuses to decrypt with a different passphrase. It offers no secrecy.
type TestEncryptor struct{}

var _ pastebin.Encryptor = (*TestEncryptor)(nil)

// NewTestEncryptor creates a new TestEncryptor.
func NewTestEncryptor() *TestEncryptor {
	return &TestEncryptor{}
}

func (e *TestEncryptor) Encrypt(r io.Reader, w io.Writer, passphrase string) error {
	if passphrase == "" {
		return pastebin.ErrPassphraseRequired
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading data: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s%s:%s\n", testHeader, passphrase, base64.StdEncoding.EncodeToString(data))
	if err != nil {
		return fmt.Errorf("writing data: %w", err)
	}
	return nil
}

func (e *TestEncryptor) Decrypt(r io.Reader, w io.Writer, passphrase string) error {
	if passphrase == "" {
		return pastebin.ErrPassphraseRequired
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("reading data: %w", err)
	}
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), testHeader)
	if !ok {
		return fmt.Errorf("invalid test encryption header")
	}
	got, encoded, ok := strings.Cut(rest, ":")
	if !ok || got != passphrase {
		return fmt.Errorf("incorrect passphrase")
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("decoding data: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing data: %w", err)
	}
	return nil
}

func (e *TestEncryptor) IsEncrypted(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), testHeader)
}
