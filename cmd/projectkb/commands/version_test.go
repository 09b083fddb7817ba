// ABOUTME: Tests for version command
// ABOUTME: Verifies the version report format and SetVersion stamping

package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()

	if cmd.Use != "version" {
		t.Errorf("Use = %q, want %q", cmd.Use, "version")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestVersionCmd_Output(t *testing.T) {
	original := versionInfo
	defer func() { versionInfo = original }()

	SetVersion("1.2.3", "abc123", "2026-01-31")

	cmd := NewVersionCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	outputStr := output.String()
	for _, expected := range []string{
		"projectkb version 1.2.3",
		"commit: abc123",
		"built:  2026-01-31",
	} {
		if !strings.Contains(outputStr, expected) {
			t.Errorf("Output should contain %q, got:\n%s", expected, outputStr)
		}
	}
}

func TestVersionInfo_String(t *testing.T) {
	info := VersionInfo{Version: "2.0.0", Commit: "deadbeef", Date: "2026-06-15"}
	got := info.String()

	if !strings.HasPrefix(got, "projectkb version 2.0.0") {
		t.Errorf("String() = %q, should start with the version line", got)
	}
	if !strings.Contains(got, "deadbeef") || !strings.Contains(got, "2026-06-15") {
		t.Errorf("String() = %q, should include commit and build date", got)
	}
}

func TestSetVersion(t *testing.T) {
	original := versionInfo
	defer func() { versionInfo = original }()

	SetVersion("1.0.0", "deadbeef", "2026-01-01")

	if versionInfo.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", versionInfo.Version, "1.0.0")
	}
	if versionInfo.Commit != "deadbeef" {
		t.Errorf("Commit = %q, want %q", versionInfo.Commit, "deadbeef")
	}
	if versionInfo.Date != "2026-01-01" {
		t.Errorf("Date = %q, want %q", versionInfo.Date, "2026-01-01")
	}
}

func TestVersionCmd_ExtraArgsIgnored(t *testing.T) {
	cmd := NewVersionCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"extra", "args"})

	_ = cmd.Execute()

	if !strings.Contains(output.String(), "projectkb version") {
		t.Error("Version output should still be produced with extra args")
	}
}
