package handler

import (
	"net/http"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	SessionID string `json:"session_id"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion reports the running build. version comes from config and
// falls back to DefaultVersion.
func HandleVersion(version, sessionID string) http.HandlerFunc {
	if version == "" {
		version = DefaultVersion
	}
	info := VersionInfo{
		Version:   version,
		GoVersion: runtime.Version(),
		SessionID: sessionID,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}
