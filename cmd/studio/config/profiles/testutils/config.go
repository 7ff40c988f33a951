package testutils

import (
	"path/filepath"
	"testing"

	prof "github.com/opst/synthstudio/cmd/studio/config/profiles"
)

// TempProfile writes a profile store holding only the given profile.
//
// It returns the path to the store, which is removed after the test.
func TempProfile(t *testing.T, name string, profile *prof.StudioProfile) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile")
	if err := (prof.ProfileStore{name: profile}).Save(path); err != nil {
		return "", err
	}
	return path, nil
}
