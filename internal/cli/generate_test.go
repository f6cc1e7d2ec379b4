package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecuteGenerate_UnknownFormat(t *testing.T) {
	rootCmd.SetArgs([]string{"--config", t.TempDir(), "generate", "alice.test", "--format", "xml"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("generate with bad format should fail")
	}
	if !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("error = %v, want format complaint", err)
	}
}

func TestExecuteGenerate_MissingCredentials(t *testing.T) {
	// Point the credential lookup at env vars that are never set so the
	// check fails regardless of the host environment.
	dir := t.TempDir()
	content := "bluesky:\n  identifier_env: SKYRECAP_TEST_MISSING_ID\n  app_password_env: SKYRECAP_TEST_MISSING_PW\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"--config", dir, "generate", "alice.test", "--format", "terminal"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("generate without credentials should fail")
	}
	if !strings.Contains(err.Error(), "SKYRECAP_TEST_MISSING_ID") {
		t.Errorf("error = %v, want the credential env names", err)
	}
}

func TestExecuteGenerate_NoArgs(t *testing.T) {
	rootCmd.SetArgs([]string{"generate"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("generate without a handle should fail")
	}
}
