// Package config loads settings from the stay.yaml file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"go.trai.ch/stay/internal/core/domain"
	"go.trai.ch/stay/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader. Settings are resolved from the
// defaults, then the settings file, then a .env file, then the process
// environment.
type Loader struct {
	logger  ports.Logger
	lookup  LookupFunc
	dotenvs []string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLookup replaces the process environment.
func WithLookup(lookup LookupFunc) LoaderOption {
	return func(l *Loader) {
		l.lookup = lookup
	}
}

// WithDotenv sets the .env files read before the environment. Missing files are skipped.
func WithDotenv(files ...string) LoaderOption {
	return func(l *Loader) {
		l.dotenvs = files
	}
}

// NewLoader creates a new settings loader.
func NewLoader(log ports.Logger, opts ...LoaderOption) *Loader {
	l := &Loader{
		logger:  log,
		lookup:  os.LookupEnv,
		dotenvs: []string{".env"},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the defaults overlaid with the file at path and the environment.
func (l *Loader) Load(path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if path != "" {
		file, err := readFile(path)
		if err != nil {
			return settings, err
		}
		if file != nil {
			file.apply(&settings)
		}
	}

	lookup, err := l.environment()
	if err != nil {
		return settings, err
	}
	if err := applyEnv(&settings, lookup); err != nil {
		return settings, err
	}

	normalized := settings.Normalize()
	if normalized.RestoreDelay != settings.RestoreDelay {
		l.logger.Warn(fmt.Sprintf("restore delay %s clamped to %s", settings.RestoreDelay, normalized.RestoreDelay))
	}
	return normalized, nil
}

// environment merges the .env files under the process environment.
func (l *Loader) environment() (LookupFunc, error) {
	dotenv := make(map[string]string)
	for _, name := range l.dotenvs {
		values, err := godotenv.Read(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", name)
		}
		for k, v := range values {
			if _, ok := dotenv[k]; !ok {
				dotenv[k] = v
			}
		}
	}

	return func(key string) (string, bool) {
		if v, ok := l.lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}, nil
}

func readFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "file", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", path)
	}
	return &file, nil
}
