package testutil

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"sync"

	"pastebin-go/internal/pastebin"
)

// FakePaste is a paste held by FakeAPI.
type FakePaste struct {
	Key     string
	Title   string
	Content string
	Format  string
	Privacy pastebin.Privacy
	Public  bool // readable through RawPaste
	Owned   bool // readable through ShowPaste
}

// FakeAPI is an in-memory pastebin.API. Responses mimic the provider's
// bodies. Safe for concurrent use.
type FakeAPI struct {
	mu sync.Mutex

	UserDetailsBody string
	ListBody        string
	// Err, when set, is returned from every call.
	Err error

	pastes  map[string]*FakePaste
	order   []string
	nextKey int
	calls   []string
	created []pastebin.NewPaste
}

// NewFakeAPI creates an empty FakeAPI.
func NewFakeAPI() *FakeAPI {
	return &FakeAPI{pastes: make(map[string]*FakePaste)}
}

// AddPaste stores a paste.
func (f *FakeAPI) AddPaste(p FakePaste) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.pastes[p.Key]; !ok {
		f.order = append(f.order, p.Key)
	}
	f.pastes[p.Key] = &p
}

// Calls returns the names of the methods invoked so far, in order.
func (f *FakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Created returns the pastes passed to CreatePaste.
func (f *FakeAPI) Created() []pastebin.NewPaste {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]pastebin.NewPaste(nil), f.created...)
}

// Has reports whether a paste with key exists.
func (f *FakeAPI) Has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.pastes[key]
	return ok
}

func (f *FakeAPI) record(call string) error {
	f.calls = append(f.calls, call)
	return f.Err
}

func (f *FakeAPI) UserDetails(ctx context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UserDetails"); err != nil {
		return nil, err
	}
	return []byte(f.UserDetailsBody), nil
}

// ListPastes returns ListBody when set, and otherwise renders the owned
// pastes as <paste> elements.
func (f *FakeAPI) ListPastes(ctx context.Context, limit int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListPastes"); err != nil {
		return nil, err
	}
	if f.ListBody != "" {
		return []byte(f.ListBody), nil
	}

	var b strings.Builder
	n := 0
	for _, key := range f.order {
		p, ok := f.pastes[key]
		if !ok || !p.Owned {
			continue
		}
		if n == limit {
			break
		}
		n++
		fmt.Fprintf(&b, "<paste><paste_key>%s</paste_key><paste_date>1700000000</paste_date>"+
			"<paste_title>%s</paste_title><paste_size>%d</paste_size><paste_expire_date>0</paste_expire_date>"+
			"<paste_private>%s</paste_private><paste_format_long>%s</paste_format_long>"+
			"<paste_url>https://pastebin.com/%s</paste_url><paste_hits>0</paste_hits></paste>\n",
			p.Key, escape(p.Title), len(p.Content), p.Privacy.FormValue(), p.Format, p.Key)
	}
	if n == 0 {
		return []byte("No pastes found."), nil
	}
	return []byte(b.String()), nil
}

func escape(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}

func (f *FakeAPI) ShowPaste(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ShowPaste"); err != nil {
		return nil, err
	}
	p, ok := f.pastes[key]
	if !ok || !p.Owned {
		return []byte(pastebin.PermissionDeniedMessage), nil
	}
	return []byte(p.Content), nil
}

func (f *FakeAPI) RawPaste(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("RawPaste"); err != nil {
		return nil, err
	}
	p, ok := f.pastes[key]
	if !ok || !p.Public {
		return nil, fmt.Errorf("request failed with status 404")
	}
	return []byte(p.Content), nil
}

func (f *FakeAPI) CreatePaste(ctx context.Context, np pastebin.NewPaste) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreatePaste"); err != nil {
		return nil, err
	}
	f.created = append(f.created, np)

	f.nextKey++
	key := fmt.Sprintf("new%05d", f.nextKey)
	f.pastes[key] = &FakePaste{
		Key:     key,
		Title:   np.Title,
		Content: np.Content,
		Format:  np.Format,
		Privacy: np.Privacy,
		Public:  np.Privacy != pastebin.PrivacyPrivate,
		Owned:   true,
	}
	f.order = append(f.order, key)
	return []byte("https://pastebin.com/" + key), nil
}

func (f *FakeAPI) DeletePaste(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeletePaste"); err != nil {
		return nil, err
	}
	p, ok := f.pastes[key]
	if !ok || !p.Owned {
		return []byte("Bad API request, invalid permission to remove paste"), nil
	}
	delete(f.pastes, key)
	return []byte("Paste Removed"), nil
}

func (f *FakeAPI) Login(ctx context.Context, username, password string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("Login"); err != nil {
		return nil, err
	}
	if password != "correct" {
		return []byte("Bad API request, invalid login"), nil
	}
	return []byte("user-key-for-" + username), nil
}

var _ pastebin.API = (*FakeAPI)(nil)
