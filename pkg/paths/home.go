package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/cursorrules/pkg/errors"
)

// HomeDirectory returns the user's home directory, falling back to $HOME.
func HomeDirectory() (string, error) {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home, nil
	}
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}
	return "", errors.New(errors.ErrFileAccess, "unable to determine home directory")
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && (len(path) < 2 || path[0] != '~' || path[1] != '/') {
		return path, nil
	}
	home, err := HomeDirectory()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot expand %s", path)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
