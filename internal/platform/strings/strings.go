// Package strings holds the small string and slice helpers the config
// and module layers lean on
package strings

import std "strings"

// IfEmpty substitutes def when vals has no elements
func IfEmpty[T any](vals []T, def []T) []T {
	if len(vals) > 0 {
		return vals
	}
	return def
}

// MustString panics unless v has non whitespace content. name ends up
// in the panic message so the missing setting is obvious
func MustString(v string, name string) string {
	if std.TrimSpace(v) == "" {
		panic(name + " is required")
	}
	return v
}

// MustPrefix normalizes a mount prefix like /members or /periods.
// One leading slash, no trailing slash, and a bare "/" is rejected
func MustPrefix(v string) string {
	v = "/" + std.Trim(std.TrimSpace(v), " /")
	if v == "/" {
		panic("root path is required")
	}
	return v
}
