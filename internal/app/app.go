package app

import (
	"context"
	"fmt"
	"os"

	"pastebin-go/internal/api"
	"pastebin-go/internal/config"
	"pastebin-go/internal/database"
	"pastebin-go/internal/encryption"
	"pastebin-go/internal/pastebin"
)

// migrationChecker is implemented by history stores with a versioned schema.
type migrationChecker interface {
	CheckMigrations() error
}

// PastebinApp is the application layer between the CLI and pastebin.Service.
// It constructs all dependencies from config, fills in configured defaults,
// records mutating operations and manages the history DB lifecycle on Close.
type PastebinApp struct {
	cfg       *config.Config
	history   pastebin.History
	encryptor pastebin.Encryptor
	service   *pastebin.Service
	clock     pastebin.Clock
	logger    pastebin.Logger
	op        *Operation
	logFile   *os.File
}

// NewPastebinApp creates a fully wired PastebinApp from the given config.
// operation identifies the CLI command being run (e.g. "new", "delete").
// The caller must call Close when done.
func NewPastebinApp(cfg *config.Config, operation string, verbose bool) (*PastebinApp, error) {
	ids := pastebin.UUIDGenerator{}
	opID := ids.New()

	logger, logFile, err := newLogger(cfg.LogDir, opID, verbose)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	log := &slogAdapter{l: logger}

	client := api.NewClient(cfg.API, cfg.DevKey, cfg.UserKey, log)
	a, err := newPastebinApp(cfg, client, log, pastebin.RealClock{}, NewOperation(opID, operation, ""))
	if err != nil {
		logFile.Close()
		return nil, err
	}
	a.logFile = logFile
	return a, nil
}

// newPastebinApp wires the app around an existing transport.
func newPastebinApp(cfg *config.Config, transport pastebin.API, logger pastebin.Logger, clock pastebin.Clock, op *Operation) (*PastebinApp, error) {
	history, err := database.NewDatabaseFromConfig(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("creating database: %w", err)
	}

	if mc, ok := history.(migrationChecker); ok {
		if err := mc.CheckMigrations(); err != nil {
			history.Close()
			return nil, fmt.Errorf("database schema out of date: %w", err)
		}
	}

	enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
	if err != nil {
		history.Close()
		return nil, fmt.Errorf("creating encryptor: %w", err)
	}

	return &PastebinApp{
		cfg:       cfg,
		history:   history,
		encryptor: enc,
		service:   pastebin.NewService(transport, enc, history, logger),
		clock:     clock,
		logger:    logger,
		op:        op,
	}, nil
}

// persistOperation saves the operation to the database, giving it an auto-increment ID.
// This should only be called for commands that change remote state.
func (a *PastebinApp) persistOperation(parameters string) error {
	if a.op.Persisted() {
		return nil
	}
	a.op.Parameters = parameters
	dbOp, err := a.history.CreateOperation(a.op.UUID, a.op.Operation, a.op.Parameters, a.clock.Now())
	if err != nil {
		return fmt.Errorf("persisting operation: %w", err)
	}
	a.op.ID = dbOp.ID
	return nil
}

// PasteDefaults returns the configured privacy and expiry for new pastes.
func (a *PastebinApp) PasteDefaults() (pastebin.Privacy, pastebin.Expiration, error) {
	privacy, err := pastebin.ParsePrivacy(a.cfg.Paste.Privacy)
	if err != nil {
		return 0, "", fmt.Errorf("paste.privacy: %w", err)
	}
	expire, err := pastebin.ParseExpiration(a.cfg.Paste.Expire)
	if err != nil {
		return 0, "", fmt.Errorf("paste.expire: %w", err)
	}
	return privacy, expire, nil
}

// AccountInfo returns the logged-in user's account details.
func (a *PastebinApp) AccountInfo(ctx context.Context) (*pastebin.AccountInfo, error) {
	return a.service.AccountInfo(ctx)
}

// ListPastes returns the user's pastes. A limit of 0 uses paste.list_limit.
func (a *PastebinApp) ListPastes(ctx context.Context, limit int) ([]pastebin.PasteSummary, error) {
	if limit == 0 {
		limit = a.cfg.Paste.ListLimit
	}
	return a.service.ListPastes(ctx, limit)
}

// GetPaste returns a paste's text, falling back to the public endpoint.
func (a *PastebinApp) GetPaste(ctx context.Context, key string) (string, error) {
	return a.service.GetPaste(ctx, key)
}

// IsEncrypted reports whether text is an encrypted paste body.
func (a *PastebinApp) IsEncrypted(text string) bool {
	return a.service.IsEncrypted(text)
}

// DecryptPaste decrypts an encrypted paste body.
func (a *PastebinApp) DecryptPaste(text, passphrase string) (string, error) {
	return a.service.DecryptPaste(text, passphrase)
}

// CreatePaste uploads p and returns its URL. With replace set, the user's
// pastes with the same title are deleted first and their count returned.
func (a *PastebinApp) CreatePaste(ctx context.Context, p pastebin.NewPaste, replace bool) (string, int, error) {
	params := fmt.Sprintf("title=%q format=%s privacy=%s expire=%s encrypt=%t replace=%t",
		p.Title, p.Format, p.Privacy, p.Expiration, p.Encrypt, replace)
	if err := a.persistOperation(params); err != nil {
		return "", 0, err
	}

	var (
		url     string
		deleted int
		err     error
	)
	if replace {
		url, deleted, err = a.service.ReplacePaste(ctx, p)
	} else {
		url, err = a.service.CreatePaste(ctx, p)
	}
	a.op.Finish(url, err)
	return url, deleted, err
}

// DeletePaste removes a paste and returns the provider's confirmation.
func (a *PastebinApp) DeletePaste(ctx context.Context, key string) (string, error) {
	if err := a.persistOperation("key=" + key); err != nil {
		return "", err
	}
	msg, err := a.service.DeletePaste(ctx, key)
	a.op.Finish(msg, err)
	return msg, err
}

// Login exchanges credentials for a user key.
func (a *PastebinApp) Login(ctx context.Context, username, password string) (string, error) {
	return a.service.Login(ctx, username, password)
}

// History returns the most recent recorded operations.
func (a *PastebinApp) History(limit int) ([]*pastebin.Operation, error) {
	return a.service.History(limit)
}

// Close finalizes a persisted operation record and closes all resources.
func (a *PastebinApp) Close() error {
	var firstErr error

	if a.op.Persisted() {
		if err := a.history.FinishOperation(a.op.ID, a.op.Status, a.op.Result, a.clock.Now()); err != nil {
			firstErr = fmt.Errorf("finishing operation: %w", err)
		}
	}

	if err := a.history.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("closing database: %w", err)
	}

	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}
