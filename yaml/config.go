// Package yaml loads spy configuration files.
package yaml

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/spy"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk configuration schema. Zero values and nil
// pointers leave the corresponding setting untouched.
type FileConfig struct {
	UserAgent   string        `yaml:"user_agent"`
	Timeout     time.Duration `yaml:"timeout"`
	Template    string        `yaml:"template"`
	Extractor   string        `yaml:"extractor"`
	Markdown    *bool         `yaml:"markdown"`
	Browser     *bool         `yaml:"browser"`
	Concurrency int           `yaml:"concurrency"`
	RateLimit   *float64      `yaml:"rate"`
	Retries     *int          `yaml:"retries"`
	DB          string        `yaml:"db"`
}

// DefaultPath returns ~/.config/spy/config.yaml, or "" when the home
// directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "spy", "config.yaml")
}

// LoadConfig reads the file at path.
// Returns ENOTFOUND if the file does not exist and EINVALID if it cannot be
// parsed or names unknown keys.
func LoadConfig(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, spy.Errorf(spy.ENOTFOUND, "config file %s not found", path)
	}
	if err != nil {
		return nil, spy.WrapError(spy.EINTERNAL, err, "failed to open config file %s", path)
	}
	defer f.Close()

	return DecodeConfig(f, path)
}

// DecodeConfig parses a configuration document from r. name is used in
// error messages.
func DecodeConfig(r io.Reader, name string) (*FileConfig, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fc FileConfig
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, spy.WrapError(spy.EINVALID, err, "failed to parse config file %s", name)
	}
	return &fc, nil
}

// Apply overlays the settings present in the file onto cfg.
func (fc *FileConfig) Apply(cfg *spy.Config) {
	if fc == nil {
		return
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if fc.Timeout != 0 {
		cfg.Timeout = fc.Timeout
	}
	if fc.Template != "" {
		cfg.Template = fc.Template
	}
	if fc.Extractor != "" {
		cfg.Extractor = fc.Extractor
	}
	if fc.Markdown != nil {
		cfg.Markdown = *fc.Markdown
	}
	if fc.Browser != nil {
		cfg.Browser = *fc.Browser
	}
	if fc.Concurrency != 0 {
		cfg.Concurrency = fc.Concurrency
	}
	if fc.RateLimit != nil {
		cfg.RateLimit = *fc.RateLimit
	}
	if fc.Retries != nil {
		cfg.Retries = *fc.Retries
	}
	if fc.DB != "" {
		cfg.DBPath = fc.DB
	}
}
