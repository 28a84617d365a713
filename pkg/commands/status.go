package commands

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/cursorrules/pkg/config"
	"github.com/arthur-debert/cursorrules/pkg/errors"
	"github.com/arthur-debert/cursorrules/pkg/filesystem"
	"github.com/arthur-debert/cursorrules/pkg/logging"
	"github.com/arthur-debert/cursorrules/pkg/registry"
)

// StatusOptions defines the options for the Status command.
type StatusOptions struct {
	ProjectDir string
	Config     *config.Config
	Registry   *registry.Registry
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem filesystem.FS
}

// RuleStatus is the install state of one rule.
type RuleStatus struct {
	Filename    string
	Description string
	Installed   bool
}

// StatusResult reports which rules of a bundle are present in the project.
type StatusResult struct {
	TargetDir string
	// DirExists is false when the rules directory has not been created yet;
	// Rules is empty in that case.
	DirExists bool
	Bundle    registry.Bundle
	Rules     []RuleStatus
	Installed int
	Missing   int
}

// Status inspects the project's rules directory.
func Status(opts StatusOptions) (*StatusResult, error) {
	log := logging.GetLogger("commands.status")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	bundle, ok := opts.Registry.Resolve(opts.Config.StatusBundle)
	if !ok {
		return nil, errors.Newf(errors.ErrBundleNotFound, "status bundle %q is not defined", opts.Config.StatusBundle).
			WithDetail("bundle", opts.Config.StatusBundle)
	}

	targetDir := opts.Config.TargetPath(opts.ProjectDir)
	result := &StatusResult{TargetDir: targetDir, Bundle: bundle}

	info, err := fsys.Stat(targetDir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("dir", targetDir).Msg("Rules directory does not exist")
			return result, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", targetDir).
			WithDetail("path", targetDir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrFileAccess, "%s is not a directory", targetDir).
			WithDetail("path", targetDir)
	}
	result.DirExists = true

	for _, name := range bundle.Files() {
		rs := RuleStatus{Filename: name, Description: opts.Registry.DescribeRule(name)}

		_, err := fsys.Stat(filepath.Join(targetDir, name))
		switch {
		case err == nil:
			rs.Installed = true
			result.Installed++
		case stderrors.Is(err, fs.ErrNotExist):
			result.Missing++
		default:
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", name).
				WithDetail("path", filepath.Join(targetDir, name))
		}
		result.Rules = append(result.Rules, rs)
	}

	log.Debug().Int("installed", result.Installed).Int("missing", result.Missing).Msg("Status computed")
	return result, nil
}
