// Package config reads application settings from environment variables
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"readathon/internal/platform/logger"
)

// Conf is a namespaced view over the environment. New("") is the root;
// Prefix("PG_") scopes a module to its own variables
type Conf struct{ prefix string }

// New creates a root Conf with no prefix
func New() Conf { return Conf{} }

// Prefix derives a child Conf whose lookups prepend p
func (c Conf) Prefix(p string) Conf {
	return Conf{prefix: c.prefix + p}
}

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) raw(key string) string {
	return strings.TrimSpace(os.Getenv(c.key(key)))
}

func (c Conf) missing(key string) {
	logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
}

func (c Conf) invalid(key, value, want string) {
	logger.Get().Panic().
		Str("key", c.key(key)).
		Str("value", value).
		Msg("invalid env value, want " + want)
}

func (c Conf) fallback(key, value, kind string) {
	logger.Get().Warn().
		Str("key", c.key(key)).
		Str("value", value).
		Msg("invalid " + kind + "; using default")
}

// MayString returns the value, or def when missing or empty
func (c Conf) MayString(key, def string) string {
	v := c.raw(key)
	if v == "" {
		return def
	}
	return v
}

// MayInt returns the value as an int; malformed values log and fall back to def
func (c Conf) MayInt(key string, def int) int {
	s := c.raw(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		c.fallback(key, s, "int")
		return def
	}
	return v
}

// MayBool returns the value as a bool; malformed values log and fall back to def
func (c Conf) MayBool(key string, def bool) bool {
	s := c.raw(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		c.fallback(key, s, "bool")
		return def
	}
	return v
}

// MayDuration returns the value as a duration; malformed values log and fall back to def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s := c.raw(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		c.fallback(key, s, "duration")
		return def
	}
	return d
}

// MayCSV splits a comma-separated value, dropping blanks; def when nothing survives
func (c Conf) MayCSV(key string, def []string) []string {
	s := c.raw(key)
	if s == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value when it case-insensitively matches one of allowed,
// def when empty, and panics on anything else
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return v
		}
	}
	logger.Get().Panic().
		Str("key", c.key(key)).
		Str("value", v).
		Strs("allowed", allowed).
		Msg("invalid enum value")
	return ""
}

// Require panics unless every key is present and non-empty
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		if c.raw(k) == "" {
			c.missing(k)
		}
	}
}

// MustString returns the value, panicking when missing or empty
func (c Conf) MustString(key string) string {
	v := c.raw(key)
	if v == "" {
		c.missing(key)
	}
	return v
}

// MustInt returns the value as an int, panicking when missing or malformed
func (c Conf) MustInt(key string) int {
	s := c.MustString(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		c.invalid(key, s, "an integer")
	}
	return v
}

// MustBool returns the value as a bool, panicking when missing or malformed
func (c Conf) MustBool(key string) bool {
	s := c.MustString(key)
	v, err := strconv.ParseBool(s)
	if err != nil {
		c.invalid(key, s, "a bool")
	}
	return v
}

// MustDuration returns the value as a time.Duration, panicking when missing or malformed
func (c Conf) MustDuration(key string) time.Duration {
	s := c.MustString(key)
	d, err := time.ParseDuration(s)
	if err != nil {
		c.invalid(key, s, "a duration such as 250ms or 2s")
	}
	return d
}

// MustURL returns the value as an absolute URL, panicking otherwise
func (c Conf) MustURL(key string) *url.URL {
	s := c.MustString(key)
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		c.invalid(key, s, "an absolute URL")
	}
	return u
}

// MustPort validates a TCP port and returns it as a listen addr like ":4000"
func (c Conf) MustPort(key string) string {
	s := c.MustString(key)
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		c.invalid(key, s, "a TCP port in 1..65535")
	}
	return ":" + s
}
