package pastebin

import "context"

// API is the provider's HTTP interface. Implementations return response
// bodies untouched; interpretation is left to the Service.
type API interface {
	// UserDetails fetches the <user> document for the configured user key.
	UserDetails(ctx context.Context) ([]byte, error)

	// ListPastes fetches up to limit <paste> elements.
	ListPastes(ctx context.Context, limit int) ([]byte, error)

	// ShowPaste fetches a paste body with the user key, which also covers
	// private pastes owned by the user.
	ShowPaste(ctx context.Context, key string) ([]byte, error)

	// RawPaste fetches a public or unlisted paste without authentication.
	RawPaste(ctx context.Context, key string) ([]byte, error)

	// CreatePaste uploads a paste and returns the provider's reply, which is
	// the new paste URL on success.
	CreatePaste(ctx context.Context, p NewPaste) ([]byte, error)

	// DeletePaste removes a paste owned by the user.
	DeletePaste(ctx context.Context, key string) ([]byte, error)

	// Login exchanges a username and password for a user key.
	Login(ctx context.Context, username, password string) ([]byte, error)
}
