package installer

import (
	stderrors "errors"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/arthur-debert/cursorrules/pkg/errors"
	"github.com/arthur-debert/cursorrules/pkg/filesystem"
	"github.com/arthur-debert/cursorrules/pkg/logging"
	"github.com/arthur-debert/cursorrules/pkg/registry"
)

const (
	dirPerm  fs.FileMode = 0755
	filePerm fs.FileMode = 0644
)

// Result tallies one install run.
type Result struct {
	// Copied is the number of files written to the target.
	Copied int
	// Skipped is the number of files left alone because they already existed.
	Skipped int

	Installed []string
	Present   []string
	Missing   []string
}

// Installer copies rules from a source fs.FS into a target directory.
type Installer struct {
	Source    fs.FS
	SourceDir string
	Target    filesystem.FS
	TargetDir string
}

// Install ensures the target directory exists and installs every file of
// the bundle.
func (i *Installer) Install(bundle registry.Bundle) (*Result, error) {
	logger := logging.GetLogger("installer")
	done := logging.LogOperationStart(logger, "install "+bundle.Key)
	defer done()

	if err := EnsureDirectory(i.Target, i.TargetDir); err != nil {
		return nil, err
	}
	return InstallRules(i.Source, i.SourceDir, i.Target, i.TargetDir, bundle.Files())
}

// EnsureDirectory creates path and any missing parents. An existing
// directory is fine; an existing non-directory is an error.
func EnsureDirectory(fsys filesystem.FS, dir string) error {
	info, err := fsys.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.Newf(errors.ErrDirCreate, "%s exists and is not a directory", dir).
				WithDetail("path", dir)
		}
		return nil
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot inspect %s", dir).
			WithDetail("path", dir)
	}

	if err := fsys.MkdirAll(dir, dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dir).
			WithDetail("path", dir)
	}
	return nil
}

// InstallRules copies each named file from sourceDir (inside src) to
// targetDir (on dst) unless the target already has a file of that name.
// sourceDir uses fs.FS slash-separated paths.
func InstallRules(src fs.FS, sourceDir string, dst filesystem.FS, targetDir string, filenames []string) (*Result, error) {
	logger := logging.GetLogger("installer")
	result := &Result{}

	for _, name := range filenames {
		srcPath := path.Join(sourceDir, name)
		dstPath := filepath.Join(targetDir, name)

		data, err := fs.ReadFile(src, srcPath)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				logger.Warn().Str("rule", name).Str("source", srcPath).Msg("Rule missing from source, skipping")
				result.Missing = append(result.Missing, name)
				continue
			}
			return result, errors.Wrapf(err, errors.ErrFileRead, "cannot read rule %s", name).
				WithDetail("path", srcPath)
		}

		if _, err := dst.Stat(dstPath); err == nil {
			logger.Debug().Str("rule", name).Msg("Rule already present")
			result.Skipped++
			result.Present = append(result.Present, name)
			continue
		} else if !stderrors.Is(err, fs.ErrNotExist) {
			return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", dstPath).
				WithDetail("path", dstPath)
		}

		if err := dst.WriteFile(dstPath, data, filePerm); err != nil {
			return result, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dstPath).
				WithDetail("path", dstPath)
		}
		logger.Info().Str("rule", name).Str("path", dstPath).Msg("Rule installed")
		result.Copied++
		result.Installed = append(result.Installed, name)
	}

	return result, nil
}
