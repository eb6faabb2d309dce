package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "profiles")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("Directory should exist after creation: %v", err)
	}

	// Creating again is a no-op.
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Existing directory should not error: %v", err)
	}
}

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Pyrene", "Pyrene"},
		{"a/b\\c", "a_b_c"},
		{"  spaced  ", "spaced"},
		{"na:me*?", "na_me__"},
		{"", "profile"},
		{"   ", "profile"},
	}

	for _, tc := range cases {
		if got := SanitizeFileName(tc.in); got != tc.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUniqueProfilePath(t *testing.T) {
	dir := t.TempDir()

	first := UniqueProfilePath(dir, "Pyrene")
	if filepath.Base(first) != "Pyrene.yaml" {
		t.Errorf("Expected Pyrene.yaml, got %s", filepath.Base(first))
	}

	if err := os.WriteFile(first, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	second := UniqueProfilePath(dir, "Pyrene")
	if filepath.Base(second) != "Pyrene-1.yaml" {
		t.Errorf("Expected Pyrene-1.yaml, got %s", filepath.Base(second))
	}
}

func TestAppDataDir(t *testing.T) {
	dir, err := AppDataDir()
	if err != nil {
		t.Skipf("No user config directory in this environment: %v", err)
	}
	if !strings.HasSuffix(dir, "valexa") {
		t.Errorf("App data directory should end with the app name, got %s", dir)
	}
}
