package tui

import "testing"

func TestVersionLabel(t *testing.T) {
	oldVersion, oldCommit, oldTime := AppVersion, GitCommit, BuildTime
	t.Cleanup(func() { AppVersion, GitCommit, BuildTime = oldVersion, oldCommit, oldTime })

	AppVersion, GitCommit, BuildTime = "1.2.0", "unknown", "unknown"
	if got := VersionLabel(); got != "1.2.0" {
		t.Fatalf("VersionLabel = %q", got)
	}
	GitCommit, BuildTime = "abc123", "2024-06-12"
	if got := VersionLabel(); got != "1.2.0 (abc123 2024-06-12)" {
		t.Fatalf("VersionLabel = %q", got)
	}
}
