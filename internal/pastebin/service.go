package pastebin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultListLimit matches the provider's default api_results_limit.
	DefaultListLimit = 50
	// MaxListLimit is the largest api_results_limit the provider accepts.
	MaxListLimit = 1000
)

// Service performs the client's operations on top of an API transport.
// It turns provider replies into typed values and provider error strings
// into *APIError.
type Service struct {
	api       API
	encryptor Encryptor
	history   History
	logger    Logger
}

// NewService creates a Service. encryptor and history may be nil when the
// caller does not use encrypted pastes or operation history.
func NewService(api API, encryptor Encryptor, history History, logger Logger) *Service {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Service{
		api:       api,
		encryptor: encryptor,
		history:   history,
		logger:    logger,
	}
}

// AccountInfo fetches and decodes the user's account details.
func (s *Service) AccountInfo(ctx context.Context) (*AccountInfo, error) {
	body, err := s.api.UserDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("requesting user details: %w", err)
	}
	if err := ParseAPIError(string(body)); err != nil {
		return nil, err
	}

	info, err := DecodeAccountInfo(body)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("account info decoded", "user", info.Name)
	return info, nil
}

// ListPastes fetches up to limit of the user's pastes in provider order.
// A limit of 0 uses DefaultListLimit.
func (s *Service) ListPastes(ctx context.Context, limit int) ([]PasteSummary, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 1 || limit > MaxListLimit {
		return nil, fmt.Errorf("list limit must be between 1 and %d, got %d", MaxListLimit, limit)
	}

	body, err := s.api.ListPastes(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("requesting paste list: %w", err)
	}
	if err := ParseAPIError(string(body)); err != nil {
		return nil, err
	}

	pastes, err := DecodePasteList(body)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("paste list decoded", "count", len(pastes))
	return pastes, nil
}

// GetPaste returns a paste's text. When the user key may not read the paste,
// the public raw endpoint is tried once instead.
func (s *Service) GetPaste(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.New("paste key is required")
	}

	body, err := s.api.ShowPaste(ctx, key)
	if err != nil {
		return "", fmt.Errorf("requesting paste %s: %w", key, err)
	}

	text := DecodeRawText(body)
	if IsPermissionDenied(text) {
		s.logger.Info("paste not readable with user key, trying public endpoint", "key", key)
		raw, err := s.api.RawPaste(ctx, key)
		if err != nil {
			return "", fmt.Errorf("requesting public paste %s: %w", key, err)
		}
		return DecodeRawText(raw), nil
	}

	if err := ParseShowPasteError(text); err != nil {
		return "", err
	}
	return text, nil
}

// CreatePaste uploads a paste and returns its URL.
func (s *Service) CreatePaste(ctx context.Context, p NewPaste) (string, error) {
	if p.Content == "" {
		return "", ErrEmptyContent
	}

	if p.Encrypt {
		armored, err := s.encrypt(p.Content, p.Passphrase)
		if err != nil {
			return "", err
		}
		p.Content = armored
		p.Format = DefaultFormat
	}

	body, err := s.api.CreatePaste(ctx, p)
	if err != nil {
		return "", fmt.Errorf("creating paste: %w", err)
	}
	text := DecodeRawText(body)
	if err := ParseAPIError(text); err != nil {
		return "", err
	}

	pasteURL := strings.TrimSpace(text)
	s.logger.Info("paste created", "url", pasteURL, "encrypted", p.Encrypt)
	return pasteURL, nil
}

// ReplacePaste deletes the user's pastes titled p.Title, then creates p.
// Returns the new URL and the number of pastes deleted.
func (s *Service) ReplacePaste(ctx context.Context, p NewPaste) (string, int, error) {
	if p.Title == "" {
		return "", 0, errors.New("replacing a paste requires a title")
	}
	if p.Content == "" {
		return "", 0, ErrEmptyContent
	}

	pastes, err := s.ListPastes(ctx, MaxListLimit)
	if err != nil {
		return "", 0, fmt.Errorf("finding existing pastes: %w", err)
	}

	deleted := 0
	for _, existing := range pastes {
		if existing.Title != p.Title {
			continue
		}
		if _, err := s.DeletePaste(ctx, existing.Key); err != nil {
			return "", deleted, fmt.Errorf("deleting existing paste %s: %w", existing.Key, err)
		}
		deleted++
	}

	pasteURL, err := s.CreatePaste(ctx, p)
	if err != nil {
		return "", deleted, err
	}
	return pasteURL, deleted, nil
}

// DeletePaste removes a paste and returns the provider's confirmation.
func (s *Service) DeletePaste(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.New("paste key is required")
	}

	body, err := s.api.DeletePaste(ctx, key)
	if err != nil {
		return "", fmt.Errorf("deleting paste %s: %w", key, err)
	}
	text := DecodeRawText(body)
	if err := ParseAPIError(text); err != nil {
		return "", err
	}

	s.logger.Info("paste deleted", "key", key)
	return strings.TrimSpace(text), nil
}

// Login exchanges credentials for a user key.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", errors.New("username and password are required")
	}

	body, err := s.api.Login(ctx, username, password)
	if err != nil {
		return "", fmt.Errorf("logging in: %w", err)
	}
	text := DecodeRawText(body)
	if err := ParseAPIError(text); err != nil {
		return "", err
	}

	s.logger.Info("logged in", "user", username)
	return strings.TrimSpace(text), nil
}

// IsEncrypted reports whether text is an encrypted paste body.
func (s *Service) IsEncrypted(text string) bool {
	return s.encryptor != nil && s.encryptor.IsEncrypted(text)
}

// DecryptPaste decrypts an encrypted paste body.
func (s *Service) DecryptPaste(text, passphrase string) (string, error) {
	if s.encryptor == nil {
		return "", errors.New("encryption is not configured")
	}
	if passphrase == "" {
		return "", ErrPassphraseRequired
	}

	var out bytes.Buffer
	if err := s.encryptor.Decrypt(strings.NewReader(text), &out, passphrase); err != nil {
		return "", fmt.Errorf("decrypting paste: %w", err)
	}
	return out.String(), nil
}

func (s *Service) encrypt(content, passphrase string) (string, error) {
	if s.encryptor == nil {
		return "", errors.New("encryption is not configured")
	}
	if passphrase == "" {
		return "", ErrPassphraseRequired
	}

	var out bytes.Buffer
	if err := s.encryptor.Encrypt(strings.NewReader(content), &out, passphrase); err != nil {
		return "", fmt.Errorf("encrypting paste: %w", err)
	}
	return out.String(), nil
}

// History returns the most recent recorded operations, newest first.
func (s *Service) History(limit int) ([]*Operation, error) {
	if s.history == nil {
		return nil, errors.New("operation history is not configured")
	}
	ops, err := s.history.ListOperations(limit)
	if err != nil {
		return nil, fmt.Errorf("listing operations: %w", err)
	}
	return ops, nil
}
