// Package raw is the bootstrap env reader. It must not import the
// logger package, since the logger is itself configured through it
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf reads env vars under a fixed prefix, e.g. "CORE_API_" or "SYNC_SHEET_"
type Conf struct{ prefix string }

// New returns a root Conf with no prefix
func New() Conf { return Conf{} }

// Prefix returns a child Conf with p appended to the namespace
func (c Conf) Prefix(p string) Conf {
	return Conf{prefix: c.prefix + p}
}

func (c Conf) lookup(key string) string {
	return strings.TrimSpace(os.Getenv(c.prefix + key))
}

// Get returns the trimmed env var, or def when unset or blank
func (c Conf) Get(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// GetBool treats "1", "true" and "yes" as true; anything else unset falls to def
func (c Conf) GetBool(key string, def bool) bool {
	v := strings.ToLower(c.lookup(key))
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "yes":
		return true
	}
	return false
}

// GetInt parses a non-negative integer, falling back to def on anything else
func (c Conf) GetInt(key string, def int) int {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
