package paths

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/cursorrules/pkg/errors"
	"github.com/arthur-debert/cursorrules/pkg/rules"
)

const (
	// RulesDirName is the directory looked up next to the executable.
	RulesDirName = "rules"

	// OriginEmbedded marks a source backed by the rules compiled into the binary.
	OriginEmbedded = "embedded"
)

// Source is a resolved rule source.
type Source struct {
	FS fs.FS
	// Dir is the slash-separated directory inside FS holding the rules.
	Dir string
	// Origin is the on-disk directory, or OriginEmbedded.
	Origin string
}

// ProjectDir returns the absolute project directory. An empty dir means the
// working directory.
func ProjectDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "cannot determine working directory")
		}
		return wd, nil
	}
	dir, err := ExpandHome(dir)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid project directory %s", dir)
	}
	return abs, nil
}

// ResolveSource picks the rule source. A configured directory wins and must
// exist; relative values are taken from the executable's directory. Without
// one, a rules directory beside the executable is used if present, and the
// embedded rules otherwise.
func ResolveSource(configured string) (Source, error) {
	return resolveSource(configured, executableDir())
}

func resolveSource(configured, exeDir string) (Source, error) {
	if configured != "" {
		dir, err := ExpandHome(configured)
		if err != nil {
			return Source{}, err
		}
		if !filepath.IsAbs(dir) && exeDir != "" {
			dir = filepath.Join(exeDir, dir)
		}
		if !isDir(dir) {
			return Source{}, errors.Newf(errors.ErrNotFound, "rules source directory %s does not exist", dir).
				WithDetail("path", dir)
		}
		return dirSource(dir), nil
	}

	if exeDir != "" {
		candidate := filepath.Join(exeDir, RulesDirName)
		if isDir(candidate) {
			return dirSource(candidate), nil
		}
	}

	return Source{FS: rules.FS(), Dir: rules.Dir, Origin: OriginEmbedded}, nil
}

func dirSource(dir string) Source {
	return Source{FS: os.DirFS(dir), Dir: ".", Origin: dir}
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
