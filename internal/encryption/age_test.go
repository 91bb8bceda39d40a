package encryption

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"pastebin-go/internal/pastebin"
)

func newTestAgeEncryptor() *AgeEncryptor {
	// Low scrypt work factor keeps the tests fast.
	return &AgeEncryptor{workFactor: 10}
}

func printable(b []byte) bool {
	return bytes.IndexFunc(b, func(r rune) bool {
		return r != '\n' && r != '\r' && (r < 0x20 || r > 0x7e)
	}) == -1
}

func TestAgeEncryptor_EncryptDecryptRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "simple text", input: []byte("hello world")},
		{name: "empty", input: []byte{}},
		{name: "multi-line source", input: []byte("package main\n\nfunc main() {}\n")},
		{name: "large data", input: bytes.Repeat([]byte("abcdef"), 10000)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newTestAgeEncryptor()

			var ciphertext bytes.Buffer
			if err := e.Encrypt(bytes.NewReader(tt.input), &ciphertext, "hunter2"); err != nil {
				t.Fatalf("Encrypt() error = %v", err)
			}

			if !printable(ciphertext.Bytes()) {
				t.Error("Encrypt() output is not printable ASCII")
			}
			if !e.IsEncrypted(ciphertext.String()) {
				t.Error("IsEncrypted() = false for Encrypt() output")
			}

			var plaintext bytes.Buffer
			if err := e.Decrypt(bytes.NewReader(ciphertext.Bytes()), &plaintext, "hunter2"); err != nil {
				t.Fatalf("Decrypt() error = %v", err)
			}
			if !bytes.Equal(plaintext.Bytes(), tt.input) {
				t.Errorf("round trip mismatch: got %d bytes, want %d", plaintext.Len(), len(tt.input))
			}
		})
	}
}

func TestAgeEncryptor_WrongPassphrase(t *testing.T) {
	t.Parallel()
	e := newTestAgeEncryptor()

	var ciphertext bytes.Buffer
	if err := e.Encrypt(strings.NewReader("secret"), &ciphertext, "right"); err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	var plaintext bytes.Buffer
	if err := e.Decrypt(&ciphertext, &plaintext, "wrong"); err == nil {
		t.Error("Decrypt() with wrong passphrase expected error")
	}
}

func TestAgeEncryptor_RequiresPassphrase(t *testing.T) {
	t.Parallel()
	e := newTestAgeEncryptor()

	var out bytes.Buffer
	if err := e.Encrypt(strings.NewReader("x"), &out, ""); !errors.Is(err, pastebin.ErrPassphraseRequired) {
		t.Errorf("Encrypt() error = %v, want ErrPassphraseRequired", err)
	}
	if err := e.Decrypt(strings.NewReader("x"), &out, ""); !errors.Is(err, pastebin.ErrPassphraseRequired) {
		t.Errorf("Decrypt() error = %v, want ErrPassphraseRequired", err)
	}
}

func TestAgeEncryptor_IsEncrypted(t *testing.T) {
	e := NewAgeEncryptor()

	tests := []struct {
		text string
		want bool
	}{
		{text: "-----BEGIN AGE ENCRYPTED FILE-----\nYWdl\n-----END AGE ENCRYPTED FILE-----\n", want: true},
		{text: "\n  -----BEGIN AGE ENCRYPTED FILE-----\n", want: true},
		{text: "plain paste", want: false},
		{text: "", want: false},
	}

	for _, tt := range tests {
		if got := e.IsEncrypted(tt.text); got != tt.want {
			t.Errorf("IsEncrypted(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
