package pastebin

import (
	"net/url"
	"strings"
)

// NoWebsite is rendered when an account has no website.
const NoWebsite = "<No website>"

// Website is an optional absolute URL. The zero value is absent.
type Website struct {
	raw string
	u   *url.URL
}

// ParseWebsite treats an empty string as absent and otherwise requires an
// absolute URL with a host.
func ParseWebsite(s string) (Website, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Website{}, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Website{}, &ValueError{Kind: "website", Value: s, Reason: err.Error()}
	}
	if !u.IsAbs() || u.Host == "" {
		return Website{}, &ValueError{Kind: "website", Value: s, Reason: "not an absolute URL"}
	}
	return Website{raw: raw, u: u}, nil
}

// Present reports whether a URL was given.
func (w Website) Present() bool { return w.u != nil }

// URL returns the parsed URL, or nil when absent.
func (w Website) URL() *url.URL {
	if w.u == nil {
		return nil
	}
	u := *w.u
	return &u
}

func (w Website) String() string {
	if w.u == nil {
		return NoWebsite
	}
	return w.raw
}
