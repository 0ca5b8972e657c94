package version

import (
	"strings"
	"testing"
)

func withBuildInfo(t *testing.T, version, commit, buildTime string) {
	t.Helper()
	origVersion, origCommit, origBuildTime := Version, Commit, BuildTime
	t.Cleanup(func() {
		Version, Commit, BuildTime = origVersion, origCommit, origBuildTime
	})
	Version, Commit, BuildTime = version, commit, buildTime
}

func TestString(t *testing.T) {
	t.Run("dev build", func(t *testing.T) {
		withBuildInfo(t, "dev", "unknown", "unknown")

		got := String()
		if !strings.HasPrefix(got, "btc-ticker dev") {
			t.Errorf("String() = %q, want prefix %q", got, "btc-ticker dev")
		}
		if !strings.Contains(got, "(unknown)") {
			t.Errorf("String() = %q, should contain commit in parentheses", got)
		}
	})

	t.Run("release build", func(t *testing.T) {
		withBuildInfo(t, "1.2.3", "abc1234", "2026-01-15T10:00:00Z")

		want := "btc-ticker 1.2.3 (abc1234) built 2026-01-15T10:00:00Z"
		if got := String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})
}

func TestDefaultValues(t *testing.T) {
	// ldflags may override these in release builds, but never with empty strings.
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if Commit == "" {
		t.Error("Commit should not be empty")
	}
	if BuildTime == "" {
		t.Error("BuildTime should not be empty")
	}
}
