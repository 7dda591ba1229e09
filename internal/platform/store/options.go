package store

import "readathon/internal/platform/logger"

// Option adjusts the Store while Open assembles it
type Option func(*Store) error

// WithLogger points subclient logging at log instead of the global sink
func WithLogger(log logger.Logger) Option {
	return func(st *Store) error {
		st.Log = log
		return nil
	}
}
