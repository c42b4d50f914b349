// Package config reads typed settings from prefixed environment variables.
// Required values panic through the root logger; optional values fall back to a
// default and log a warning when the env holds something unparsable
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"filmnames/internal/platform/logger"
)

// Conf is a view over the environment scoped by a key prefix such as "CORE_RECONCILE_"
type Conf struct{ prefix string }

// New returns the unprefixed root view
func New() Conf { return Conf{} }

// Prefix nests p under the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the full env var name for k
func (c Conf) Key(k string) string { return c.prefix + k }

func (c Conf) get(k string) string { return strings.TrimSpace(os.Getenv(c.Key(k))) }

// optional parses the value at key with conv, returning def when unset or invalid
func optional[T any](c Conf, key string, def T, conv func(string) (T, error)) T {
	s := c.get(key)
	if s == "" {
		return def
	}
	v, err := conv(s)
	if err != nil {
		logger.Get().Warn().
			Str("key", c.Key(key)).
			Str("value", s).
			Interface("default", def).
			Err(err).
			Msg("invalid env value; using default")
		return def
	}
	return v
}

// MustString returns the value at key and panics when it is unset or blank
func (c Conf) MustString(key string) string {
	s := c.get(key)
	if s == "" {
		logger.Get().Panic().Str("key", c.Key(key)).Msg("missing required env")
	}
	return s
}

// MayString returns the trimmed value or def
func (c Conf) MayString(key, def string) string {
	return optional(c, key, def, func(s string) (string, error) { return s, nil })
}

// MayInt parses a base-10 int
func (c Conf) MayInt(key string, def int) int {
	return optional(c, key, def, strconv.Atoi)
}

// MayPositiveInt is MayInt restricted to values >= 1
func (c Conf) MayPositiveInt(key string, def int) int {
	return optional(c, key, def, func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, err
		}
		if n < 1 {
			return 0, fmt.Errorf("%d is not positive", n)
		}
		return n, nil
	})
}

// MayBool accepts anything strconv.ParseBool does
func (c Conf) MayBool(key string, def bool) bool {
	return optional(c, key, def, strconv.ParseBool)
}

// MayDuration accepts Go duration strings such as 250ms or 5m
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return optional(c, key, def, time.ParseDuration)
}

// MayCSV splits a comma separated list, dropping blank items; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	return optional(c, key, def, func(s string) ([]string, error) {
		var out []string
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) == 0 {
			return def, nil
		}
		return out, nil
	})
}
