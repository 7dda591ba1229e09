// Package domain defines the types and interfaces for the sync engine
package domain

import "time"

// State is the engine's phase within a run
type State string

// Run states. There is no failed state: an errored run returns to Idle
// with LastError set, and a rerun is the recovery path
const (
	StateIdle      State = "idle"
	StateFetching  State = "fetching"
	StateClearing  State = "clearing"
	StateIngesting State = "ingesting"
	StateScoring   State = "scoring"
)

// Counts aggregates row outcomes for one run
type Counts struct {
	Fetched      int `json:"fetched"`
	Processed    int `json:"processed"`
	UnknownName  int `json:"unknown_name"`
	BadDate      int `json:"bad_date"`
	NoPeriod     int `json:"no_period"`
	Achievements int `json:"achievements"`
	Suppressed   int `json:"suppressed"`
}

// Report is the run summary handed back to the operator
type Report struct {
	Lines      []string  `json:"lines"`
	Counts     Counts    `json:"counts"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Status is the engine's current condition
type Status struct {
	State      State     `json:"state"`
	LastRun    time.Time `json:"last_run,omitzero"`
	LastError  string    `json:"last_error,omitempty"`
	LastReport *Report   `json:"last_report,omitempty"`
}
