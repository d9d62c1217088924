package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

const (
	DefaultBaseURL           = "http://localhost:8081/api"
	defaultTimeout           = 10 * time.Second
	defaultRequestsPerSecond = 10.0

	envBaseURL  = "API_BASE_URL"
	envLogLevel = "NOTEPAD_LOG_LEVEL"
)

type Config struct {
	API     APIConfig     `toml:"api"`
	Logging LoggingConfig `toml:"logging"`
	UI      UIConfig      `toml:"ui"`
	Drafts  DraftsConfig  `toml:"drafts"`
}

type APIConfig struct {
	BaseURL           string  `toml:"base_url"`
	Timeout           string  `toml:"timeout"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type UIConfig struct {
	DateLocale string `toml:"date_locale"`
	Markdown   *bool  `toml:"markdown"`
}

type DraftsConfig struct {
	Enabled *bool  `toml:"enabled"`
	Path    string `toml:"path"`
}

func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:           DefaultBaseURL,
			Timeout:           defaultTimeout.String(),
			RequestsPerSecond: defaultRequestsPerSecond,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the config file from the data directory on the OS filesystem
// and applies environment overrides.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(afero.NewOsFs(), path, os.LookupEnv)
}

// LoadFrom reads path from fs. A missing or empty file yields the defaults.
// lookupEnv may be nil to skip environment overrides.
func LoadFrom(fs afero.Fs, path string, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if err := readTOML(fs, path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if lookupEnv != nil {
		if v, ok := lookupEnv(envBaseURL); ok && strings.TrimSpace(v) != "" {
			cfg.API.BaseURL = v
		}
		if v, ok := lookupEnv(envLogLevel); ok && strings.TrimSpace(v) != "" {
			cfg.Logging.Level = v
		}
	}
	if _, err := time.ParseDuration(strings.TrimSpace(cfg.API.Timeout)); cfg.API.Timeout != "" && err != nil {
		return Config{}, fmt.Errorf("invalid api.timeout %q: %w", cfg.API.Timeout, err)
	}
	return cfg, nil
}

func readTOML(fs afero.Fs, path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func (c Config) BaseURL() string {
	base := strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if base == "" {
		return DefaultBaseURL
	}
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	return base
}

func (c Config) Timeout() time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(c.API.Timeout))
	if err != nil || d <= 0 {
		return defaultTimeout
	}
	return d
}

func (c Config) RequestsPerSecond() float64 {
	if c.API.RequestsPerSecond <= 0 {
		return defaultRequestsPerSecond
	}
	return c.API.RequestsPerSecond
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return "info"
	}
	return level
}

func (c Config) LogFile() (string, error) {
	if path, err := resolvePath(c.Logging.File); err != nil || path != "" {
		return path, err
	}
	return LogPath()
}

func (c Config) DateLocale() string {
	if locale := strings.TrimSpace(c.UI.DateLocale); locale != "" {
		return locale
	}
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" && v != "C" && v != "POSIX" {
			return v
		}
	}
	return "en-US"
}

func (c Config) MarkdownEnabled() bool {
	if c.UI.Markdown == nil {
		return true
	}
	return *c.UI.Markdown
}

func (c Config) DraftsEnabled() bool {
	if c.Drafts.Enabled == nil {
		return true
	}
	return *c.Drafts.Enabled
}

func (c Config) DraftsFile() (string, error) {
	if path, err := resolvePath(c.Drafts.Path); err != nil || path != "" {
		return path, err
	}
	return DraftsPath()
}

// Encode renders the resolved configuration as TOML.
func (c Config) Encode() ([]byte, error) {
	resolved := c
	resolved.API.BaseURL = c.BaseURL()
	resolved.API.Timeout = c.Timeout().String()
	resolved.API.RequestsPerSecond = c.RequestsPerSecond()
	resolved.Logging.Level = c.LogLevel()
	markdown := c.MarkdownEnabled()
	resolved.UI.Markdown = &markdown
	drafts := c.DraftsEnabled()
	resolved.Drafts.Enabled = &drafts
	return toml.Marshal(resolved)
}
