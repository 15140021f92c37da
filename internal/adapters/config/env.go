package config

import (
	"strconv"
	"strings"
	"time"

	"go.trai.ch/stay/internal/core/domain"
	"go.trai.ch/zerr"
)

// Environment variables overriding the settings file.
const (
	EnvRestoreCursor = "STAY_RESTORE_CURSOR"
	EnvRespectLinks  = "STAY_RESPECT_LINKS"
	EnvMaxPositions  = "STAY_MAX_POSITIONS"
	EnvPersist       = "STAY_PERSIST"
	EnvRestoreDelay  = "STAY_RESTORE_DELAY"
	EnvFile          = "STAY_FILE"
)

// LookupFunc returns the value of an environment variable.
type LookupFunc func(key string) (string, bool)

func applyEnv(s *domain.Settings, lookup LookupFunc) error {
	for _, b := range []struct {
		key string
		dst *bool
	}{
		{EnvRestoreCursor, &s.RestoreCursor},
		{EnvRespectLinks, &s.RespectLinks},
		{EnvPersist, &s.PersistToDisk},
	} {
		raw, ok := lookupTrimmed(lookup, b.key)
		if !ok {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return invalid(err, b.key, raw)
		}
		*b.dst = v
	}

	if raw, ok := lookupTrimmed(lookup, EnvMaxPositions); ok {
		v, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			return invalid(err, EnvMaxPositions, raw)
		}
		s.MaxPositions = uint(v)
	}

	if raw, ok := lookupTrimmed(lookup, EnvRestoreDelay); ok {
		d, err := parseDelay(raw)
		if err != nil {
			return invalid(err, EnvRestoreDelay, raw)
		}
		s.RestoreDelay = d
	}

	if raw, ok := lookupTrimmed(lookup, EnvFile); ok {
		s.FilePath = raw
	}
	return nil
}

// parseDelay accepts plain milliseconds ("75") or a duration ("75ms").
func parseDelay(raw string) (time.Duration, error) {
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(raw)
}

func lookupTrimmed(lookup LookupFunc, key string) (string, bool) {
	raw, ok := lookup(key)
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

func invalid(err error, key, value string) error {
	err = zerr.Wrap(err, domain.ErrInvalidSetting.Error())
	err = zerr.With(err, "variable", key)
	return zerr.With(err, "value", value)
}
