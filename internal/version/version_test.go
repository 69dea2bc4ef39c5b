package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo("1.2.3", "abc1234", "2026-08-29")

	if info.Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", info.Version, "1.2.3")
	}
	if info.Commit != "abc1234" {
		t.Errorf("Commit = %q, want %q", info.Commit, "abc1234")
	}
	if info.GoVer != runtime.Version() {
		t.Errorf("GoVer = %q, want %q", info.GoVer, runtime.Version())
	}
	if info.OS != runtime.GOOS || info.Arch != runtime.GOARCH {
		t.Errorf("OS/Arch = %s/%s, want %s/%s", info.OS, info.Arch, runtime.GOOS, runtime.GOARCH)
	}
}

func TestInfoString(t *testing.T) {
	info := NewInfo("1.2.3", "abc1234", "2026-08-29")

	got := info.String()
	for _, want := range []string{"margo 1.2.3", "abc1234", "2026-08-29"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, want to contain %q", got, want)
		}
	}
}

func TestInfoFullString(t *testing.T) {
	info := NewInfo("1.2.3", "abc1234", "2026-08-29")

	got := info.FullString()
	for _, want := range []string{"margo 1.2.3", "commit:", "go:", "platform:"} {
		if !strings.Contains(got, want) {
			t.Errorf("FullString() = %q, want to contain %q", got, want)
		}
	}
}
