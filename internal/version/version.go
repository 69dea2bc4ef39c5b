// Package version carries build version information for margo.
package version

import (
	"fmt"
	"runtime"
)

// Info contains version information about margo.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	GoVer   string `json:"go_version"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// NewInfo creates a new Info from the build variables.
func NewInfo(version, commit, date string) *Info {
	return &Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// String returns a formatted version string.
func (i *Info) String() string {
	return fmt.Sprintf("margo %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// FullString returns a detailed version string.
func (i *Info) FullString() string {
	return fmt.Sprintf(`margo %s
  commit:   %s
  built:    %s
  go:       %s
  platform: %s/%s`, i.Version, i.Commit, i.Date, i.GoVer, i.OS, i.Arch)
}
