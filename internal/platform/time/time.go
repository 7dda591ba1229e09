// Package time holds small time helpers shared across services
package time

import "time"

// Ptr turns a possibly-zero time into a nullable one. Optional dates
// live as NULL, so the zero time must never reach the database as year 1
func Ptr(ts time.Time) *time.Time {
	if ts.IsZero() {
		return nil
	}
	return &ts
}
