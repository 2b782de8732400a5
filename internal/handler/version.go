package handler

import (
	"net/http"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
	GoVersion   string `json:"go_version"`
	BuildTime   string `json:"build_time,omitempty"`
	GitCommit   string `json:"git_commit,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"     // Set via -X flag at build time
	BuildTime = "unknown" // Set via -X flag at build time
	GitCommit = "unset"   // Set via -X flag at build time
)

// HandleVersion returns version information about the application.
// configured is the VERSION setting, used when no build-time version was stamped.
// @Summary Version
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(configured, environment string) http.HandlerFunc {
	info := VersionInfo{
		Version:     resolveVersion(configured),
		Environment: environment,
		GoVersion:   runtime.Version(),
		BuildTime:   BuildTime,
		GitCommit:   GitCommit,
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

// resolveVersion prefers the build-time version over configuration
func resolveVersion(configured string) string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if configured != "" {
		return configured
	}
	return "dev"
}
