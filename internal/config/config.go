package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"pastebin-go/internal/pastebin"
)

// Provider endpoints used when the config leaves them empty.
const (
	DefaultPostURL  = "https://pastebin.com/api/api_post.php"
	DefaultLoginURL = "https://pastebin.com/api/api_login.php"
	DefaultRawURL   = "https://pastebin.com/raw"
)

// Config represents the main configuration for pastebin.
type Config struct {
	DevKey     string           `toml:"dev_key"`
	UserKey    string           `toml:"user_key"`
	Username   string           `toml:"username,omitempty"`
	BaseDir    string           `toml:"base_dir"`
	LogDir     string           `toml:"log_dir"`
	API        APIConfig        `toml:"api"`
	Paste      PasteConfig      `toml:"paste"`
	Encryption EncryptionConfig `toml:"encryption"`
	Database   DatabaseConfig   `toml:"database"`
}

// APIConfig holds provider endpoints and client-side request limits.
type APIConfig struct {
	PostURL           string `toml:"post_url"`
	LoginURL          string `toml:"login_url"`
	RawURL            string `toml:"raw_url"`
	TimeoutSeconds    int    `toml:"timeout_seconds"`
	RequestsPerMinute int    `toml:"requests_per_minute"`
}

// PasteConfig holds defaults for new pastes and listings.
type PasteConfig struct {
	Privacy   string `toml:"privacy"` // "public", "unlisted" or "private"
	Expire    string `toml:"expire"`  // provider expiry code, e.g. "N" or "1W"
	ListLimit int    `toml:"list_limit"`
}

// EncryptionConfig selects the paste encryption backend.
type EncryptionConfig struct {
	Type string `toml:"type"` // "age" (default) or "test"
}

// DatabaseConfig represents configuration for the operation history database.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type DatabaseConfig struct {
	Type    string `toml:"type"`               // "sqlite" or "memory"
	DataDir string `toml:"data_dir,omitempty"` // only used for type=sqlite
}

// NewConfig creates a new Config with default endpoints and paths under baseDir.
func NewConfig(devKey, baseDir string) *Config {
	cfg := &Config{
		DevKey:  devKey,
		BaseDir: baseDir,
		LogDir:  filepath.Join(baseDir, "log"),
		Database: DatabaseConfig{
			Type:    "sqlite",
			DataDir: filepath.Join(baseDir, "db"),
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero-valued settings with their defaults. Paths left
// empty are derived from base_dir when it is set.
func (c *Config) ApplyDefaults() {
	if c.BaseDir != "" {
		if c.LogDir == "" {
			c.LogDir = filepath.Join(c.BaseDir, "log")
		}
		if c.Database.Type == "" {
			c.Database.Type = "sqlite"
		}
		if c.Database.Type == "sqlite" && c.Database.DataDir == "" {
			c.Database.DataDir = filepath.Join(c.BaseDir, "db")
		}
	}
	if c.API.PostURL == "" {
		c.API.PostURL = DefaultPostURL
	}
	if c.API.LoginURL == "" {
		c.API.LoginURL = DefaultLoginURL
	}
	if c.API.RawURL == "" {
		c.API.RawURL = DefaultRawURL
	}
	if c.API.TimeoutSeconds == 0 {
		c.API.TimeoutSeconds = 30
	}
	if c.API.RequestsPerMinute == 0 {
		c.API.RequestsPerMinute = 30
	}
	if c.Paste.Privacy == "" {
		c.Paste.Privacy = "unlisted"
	}
	if c.Paste.Expire == "" {
		c.Paste.Expire = "N"
	}
	if c.Paste.ListLimit == 0 {
		c.Paste.ListLimit = 50
	}
	if c.Encryption.Type == "" {
		c.Encryption.Type = "age"
	}
	if c.Database.Type == "" {
		c.Database.Type = "memory"
	}
}

// ApplyEnv overrides keys from the environment. The APIUSERDEVKEY and
// APIUSERKEY names are accepted for existing .env files.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := firstNonEmpty(getenv("PASTEBIN_DEV_KEY"), getenv("APIUSERDEVKEY")); v != "" {
		c.DevKey = v
	}
	if v := firstNonEmpty(getenv("PASTEBIN_USER_KEY"), getenv("APIUSERKEY")); v != "" {
		c.UserKey = v
	}
	if v := getenv("PASTEBIN_USERNAME"); v != "" {
		c.Username = v
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Validate checks the settings every command relies on.
func (c *Config) Validate() error {
	if c.DevKey == "" {
		return fmt.Errorf("dev_key is not set (config file or PASTEBIN_DEV_KEY)")
	}
	if c.Paste.ListLimit < 1 || c.Paste.ListLimit > 1000 {
		return fmt.Errorf("paste.list_limit must be between 1 and 1000, got %d", c.Paste.ListLimit)
	}
	if _, err := pastebin.ParsePrivacy(c.Paste.Privacy); err != nil {
		return fmt.Errorf("paste.privacy: %w", err)
	}
	if _, err := pastebin.ParseExpiration(c.Paste.Expire); err != nil {
		return fmt.Errorf("paste.expire: %w", err)
	}
	if c.LogDir == "" {
		return fmt.Errorf("log_dir is not set (set base_dir or log_dir)")
	}
	if c.Database.Type == "sqlite" && c.Database.DataDir == "" {
		return fmt.Errorf("database.data_dir is not set (set base_dir or database.data_dir)")
	}
	if c.API.TimeoutSeconds < 0 {
		return fmt.Errorf("api.timeout_seconds must not be negative")
	}
	if c.API.RequestsPerMinute < 0 {
		return fmt.Errorf("api.requests_per_minute must not be negative")
	}
	return nil
}

// LoadDotEnv loads KEY=value files into the process environment. Missing
// files are skipped and variables already set are left untouched.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader and applies defaults.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// writeToFile writes a Config to the specified file path.
// The file holds API keys, so it is created readable by the owner only.
func writeToFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}

// Save overwrites the config file at path.
func Save(path string, cfg *Config) error {
	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}
