package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"pastebin-go/internal/config"
	"pastebin-go/internal/pastebin"
)

// readContent returns the paste body and the file name it came from. With
// no file argument the body is read from stdin, which must not be a terminal.
func readContent(args []string, stdin *os.File) (string, string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}

	if term.IsTerminal(int(stdin.Fd())) {
		return "", "", errors.New("no file given and standard input is a terminal")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", "", fmt.Errorf("reading standard input: %w", err)
	}
	return string(data), "", nil
}

// pasteDefaults supplies the configured privacy and expiry.
type pasteDefaults interface {
	PasteDefaults() (pastebin.Privacy, pastebin.Expiration, error)
}

// buildNewPaste fills a NewPaste from flags, falling back to values inferred
// from the file name and then to configured defaults.
func buildNewPaste(d pasteDefaults, content, name, title, format, privacy, expire string) (pastebin.NewPaste, error) {
	p := pastebin.NewPaste{Content: content, Title: title, Format: format}

	if name != "" {
		if p.Title == "" {
			p.Title = pastebin.TitleForFile(name)
		}
		if p.Format == "" {
			p.Format = pastebin.FormatForFile(name)
		}
	}

	defPrivacy, defExpire, err := d.PasteDefaults()
	if err != nil {
		return p, err
	}

	p.Privacy = defPrivacy
	if privacy != "" {
		if p.Privacy, err = pastebin.ParsePrivacy(privacy); err != nil {
			return p, err
		}
	}

	p.Expiration = defExpire
	if expire != "" {
		if p.Expiration, err = pastebin.ParseExpiration(expire); err != nil {
			return p, err
		}
	}
	return p, nil
}

// readSecret returns envVar when set, otherwise prompts on the terminal
// without echo.
func readSecret(prompt, envVar string) (string, error) {
	if v := os.Getenv(envVar); v != "" {
		return v, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("%s is not set and standard input is not a terminal", envVar)
	}

	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", strings.TrimSuffix(strings.ToLower(prompt), ": "), err)
	}
	return string(secret), nil
}

// maskKey hides all but the last four characters of an API key.
func maskKey(key string) string {
	if key == "" {
		return "<not set>"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

// renderConfig formats the effective configuration with keys masked.
func renderConfig(cfg *config.Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dev Key:    %s\n", maskKey(cfg.DevKey))
	fmt.Fprintf(&b, "User Key:   %s\n", maskKey(cfg.UserKey))
	fmt.Fprintf(&b, "Username:   %s\n", cfg.Username)
	fmt.Fprintf(&b, "Base Dir:   %s\n", cfg.BaseDir)
	fmt.Fprintf(&b, "Log Dir:    %s\n", cfg.LogDir)
	fmt.Fprintf(&b, "Post URL:   %s\n", cfg.API.PostURL)
	fmt.Fprintf(&b, "Privacy:    %s\n", cfg.Paste.Privacy)
	fmt.Fprintf(&b, "Expire:     %s\n", cfg.Paste.Expire)
	fmt.Fprintf(&b, "List Limit: %d\n", cfg.Paste.ListLimit)
	fmt.Fprintf(&b, "Encryption: %s\n", cfg.Encryption.Type)
	fmt.Fprintf(&b, "Database:   %s\n", cfg.Database.Type)
	return b.String()
}

// formatOperation renders one history line.
func formatOperation(op *pastebin.Operation) string {
	duration := ""
	if op.FinishedAt.Valid {
		d := op.FinishedAt.Time.Sub(op.StartedAt)
		duration = d.Truncate(time.Millisecond).String()
	}
	return fmt.Sprintf("#%d  %-8s  %s  %-8s  %-8s  %s",
		op.ID,
		op.Operation,
		op.StartedAt.Format("2006-01-02 15:04:05"),
		op.Status,
		duration,
		op.Result,
	)
}
