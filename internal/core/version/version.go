// Package version exposes the build stamp baked in at link time.
package version

// Overridden via
// -ldflags "-X 'readathon/internal/core/version.version=v0.0.1'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// BuildInfo is the wire shape of the build stamp
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info reports the stamp for the running binary
func Info() BuildInfo {
	return BuildInfo{Service: "readathon-api", Version: version, Commit: commit, Date: date}
}
