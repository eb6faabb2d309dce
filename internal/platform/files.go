package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

const (
	appDirName      = "valexa"
	profilesDirName = "profiles"
	profileFileExt  = ".yaml"
)

// AppDataDir returns the per-user data directory of the application,
// creating nothing.
func AppDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// ProfilesDir returns the directory holding exported profile files.
func ProfilesDir() (string, error) {
	dataDir, err := AppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, profilesDirName), nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// SanitizeFileName reduces a compound name to a safe file name: path
// separators and control characters become underscores, surrounding
// whitespace is trimmed, and an empty result falls back to "profile".
func SanitizeFileName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' || r == '"' || r == '<' || r == '>' || r == '|':
			return '_'
		case r < 32:
			return '_'
		default:
			return r
		}
	}, name)

	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "profile"
	}
	return cleaned
}

// UniqueProfilePath returns a path under dir for the given compound name that
// does not collide with an existing file, appending -1, -2, ... as needed.
func UniqueProfilePath(dir, compoundName string) string {
	base := SanitizeFileName(compoundName)

	candidate := filepath.Join(dir, base+profileFileExt)
	if _, err := os.Stat(candidate); os.IsNotExist(err) {
		return candidate
	}

	for i := 1; ; i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s-%d%s", base, i, profileFileExt))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
