package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"pastebin-go/internal/config"
	"pastebin-go/internal/pastebin"
)

// maxBodySize caps how much of a response is read. The provider limits
// paste bodies to 512KB for free accounts and 10MB for pro accounts.
const maxBodySize = 16 << 20

// ErrBodyTooLarge is returned when a response exceeds the body size limit.
var ErrBodyTooLarge = errors.New("response body too large")

// StatusError is returned for responses outside the 2xx range.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request failed with status %d", e.Code)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Code, e.Body)
}

// Client implements pastebin.API over HTTP.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     pastebin.Logger
	maxBody    int64

	postURL  string
	loginURL string
	rawURL   string
	devKey   string
	userKey  string
}

var _ pastebin.API = (*Client)(nil)

// NewClient creates a Client for the given endpoints and keys.
func NewClient(cfg config.APIConfig, devKey, userKey string, logger pastebin.Logger) *Client {
	if logger == nil {
		logger = pastebin.NewNopLogger()
	}

	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}

	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
		maxBody:    maxBodySize,
		postURL:    cfg.PostURL,
		loginURL:   cfg.LoginURL,
		rawURL:     strings.TrimSuffix(cfg.RawURL, "/"),
		devKey:     devKey,
		userKey:    userKey,
	}
}

// UserDetails requests api_option=userdetails.
func (c *Client) UserDetails(ctx context.Context) ([]byte, error) {
	return c.post(ctx, c.postURL, "userdetails", url.Values{
		"api_user_key": {c.userKey},
	})
}

// ListPastes requests api_option=list.
func (c *Client) ListPastes(ctx context.Context, limit int) ([]byte, error) {
	return c.post(ctx, c.postURL, "list", url.Values{
		"api_user_key":      {c.userKey},
		"api_results_limit": {strconv.Itoa(limit)},
	})
}

// ShowPaste requests api_option=show_paste.
func (c *Client) ShowPaste(ctx context.Context, key string) ([]byte, error) {
	return c.post(ctx, c.postURL, "show_paste", url.Values{
		"api_user_key":  {c.userKey},
		"api_paste_key": {key},
	})
}

// RawPaste fetches <raw_url>/<key> without credentials.
func (c *Client) RawPaste(ctx context.Context, key string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.rawURL+"/"+url.PathEscape(key), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	return c.do(req, "raw")
}

// CreatePaste requests api_option=paste. The user key is sent only when
// configured; without it the paste is created as a guest.
func (c *Client) CreatePaste(ctx context.Context, p pastebin.NewPaste) ([]byte, error) {
	form := url.Values{
		"api_paste_code":    {p.Content},
		"api_paste_private": {p.Privacy.FormValue()},
	}
	if c.userKey != "" {
		form.Set("api_user_key", c.userKey)
	}
	if p.Title != "" {
		form.Set("api_paste_name", p.Title)
	}
	if p.Format != "" {
		form.Set("api_paste_format", p.Format)
	}
	if p.Expiration != "" {
		form.Set("api_paste_expire_date", p.Expiration.FormValue())
	}
	return c.post(ctx, c.postURL, "paste", form)
}

// DeletePaste requests api_option=delete.
func (c *Client) DeletePaste(ctx context.Context, key string) ([]byte, error) {
	return c.post(ctx, c.postURL, "delete", url.Values{
		"api_user_key":  {c.userKey},
		"api_paste_key": {key},
	})
}

// Login posts credentials to the login endpoint.
func (c *Client) Login(ctx context.Context, username, password string) ([]byte, error) {
	form := url.Values{
		"api_dev_key":       {c.devKey},
		"api_user_name":     {username},
		"api_user_password": {password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, "login")
}

// post sends an api_post.php request for option with the dev key added.
func (c *Client) post(ctx context.Context, endpoint, option string, form url.Values) ([]byte, error) {
	form.Set("api_dev_key", c.devKey)
	form.Set("api_option", option)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, option)
}

func (c *Client) do(req *http.Request, option string) ([]byte, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending %s request: %w", option, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", option, err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("%w: %s response exceeds %d bytes", ErrBodyTooLarge, option, c.maxBody)
	}

	c.logger.Debug("api request", "option", option, "status", resp.StatusCode,
		"bytes", len(body), "duration", time.Since(start).Truncate(time.Millisecond).String())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}
