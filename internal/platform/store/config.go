package store

// PGConfig carries postgres connectivity and query tracing knobs.
// SlowQueryMs below zero disables slow query marking
type PGConfig struct {
	Enabled  bool
	URL      string
	MaxConns int32

	LogSQL      bool
	SlowQueryMs int
}

// Config aggregates per backend configuration
type Config struct {
	PG PGConfig
}
