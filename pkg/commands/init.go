package commands

import (
	"strings"

	"github.com/arthur-debert/cursorrules/pkg/config"
	"github.com/arthur-debert/cursorrules/pkg/errors"
	"github.com/arthur-debert/cursorrules/pkg/filesystem"
	"github.com/arthur-debert/cursorrules/pkg/installer"
	"github.com/arthur-debert/cursorrules/pkg/logging"
	"github.com/arthur-debert/cursorrules/pkg/paths"
	"github.com/arthur-debert/cursorrules/pkg/prompt"
	"github.com/arthur-debert/cursorrules/pkg/registry"
)

// BundleChooser asks the user to pick a bundle, with def preselected.
type BundleChooser interface {
	Choose(reg *registry.Registry, def registry.Bundle) (prompt.Choice, error)
}

// SelectedBy records how the bundle was picked.
type SelectedBy string

const (
	SelectedByFlag    SelectedBy = "flag"
	SelectedByPrompt  SelectedBy = "prompt"
	SelectedByDefault SelectedBy = "default"
)

// Selection describes the bundle choice for an init run.
type Selection struct {
	By SelectedBy
	// Requested is what the user asked for, when it differs from an empty answer.
	Requested string
	// FellBack is set when Requested could not be resolved and the default was used.
	FellBack bool
}

// InitOptions defines the options for the Init command.
type InitOptions struct {
	ProjectDir string
	Config     *config.Config
	Registry   *registry.Registry
	// FileSystem is the target filesystem (optional, defaults to OS filesystem)
	FileSystem filesystem.FS
	Source     paths.Source

	// BundleKey selects a bundle non-interactively.
	BundleKey string
	// AssumeYes skips the prompt in favour of the default bundle.
	AssumeYes bool
	// Interactive is false when stdin is not a terminal.
	Interactive bool
	Chooser     BundleChooser
}

// InitResult is the outcome of an init run.
type InitResult struct {
	Bundle       registry.Bundle
	Selection    Selection
	TargetDir    string
	SourceOrigin string
	Install      *installer.Result
}

// Init selects a bundle and installs its rules into the project.
func Init(opts InitOptions) (*InitResult, error) {
	log := logging.GetLogger("commands.init")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	bundle, selection, err := selectBundle(opts)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("bundle", bundle.Key).
		Str("by", string(selection.By)).
		Bool("fellBack", selection.FellBack).
		Msg("Bundle selected")
	if selection.FellBack {
		log.Warn().Str("requested", selection.Requested).Str("bundle", bundle.Key).Msg("Unknown bundle, using default")
	}

	targetDir := opts.Config.TargetPath(opts.ProjectDir)
	inst := &installer.Installer{
		Source:    opts.Source.FS,
		SourceDir: opts.Source.Dir,
		Target:    fs,
		TargetDir: targetDir,
	}

	res := &InitResult{
		Bundle:       bundle,
		Selection:    selection,
		TargetDir:    targetDir,
		SourceOrigin: opts.Source.Origin,
	}

	installResult, err := inst.Install(bundle)
	res.Install = installResult
	if err != nil {
		return res, err
	}

	log.Info().
		Int("copied", installResult.Copied).
		Int("skipped", installResult.Skipped).
		Int("missing", len(installResult.Missing)).
		Msg("Install finished")
	return res, nil
}

// resolveFlag accepts a bundle key in any case or a 1-based ordinal.
func resolveFlag(reg *registry.Registry, value string) (registry.Bundle, bool) {
	if b, ok := reg.Resolve(strings.ToLower(strings.TrimSpace(value))); ok {
		return b, true
	}
	return reg.ParseOrdinal(value)
}

func selectBundle(opts InitOptions) (registry.Bundle, Selection, error) {
	reg := opts.Registry
	def, ok := reg.Resolve(opts.Config.DefaultBundle)
	if !ok {
		return registry.Bundle{}, Selection{}, errors.Newf(errors.ErrBundleNotFound,
			"default bundle %q is not defined", opts.Config.DefaultBundle).
			WithDetail("bundle", opts.Config.DefaultBundle)
	}

	if opts.BundleKey != "" {
		if b, ok := resolveFlag(reg, opts.BundleKey); ok {
			return b, Selection{By: SelectedByFlag, Requested: opts.BundleKey}, nil
		}
		return def, Selection{By: SelectedByFlag, Requested: opts.BundleKey, FellBack: true}, nil
	}

	if opts.AssumeYes || !opts.Interactive || opts.Chooser == nil {
		return def, Selection{By: SelectedByDefault}, nil
	}

	choice, err := opts.Chooser.Choose(reg, def)
	if err != nil {
		return registry.Bundle{}, Selection{}, err
	}
	return choice.Bundle, Selection{
		By:        SelectedByPrompt,
		Requested: choice.Input,
		FellBack:  choice.FellBack,
	}, nil
}
