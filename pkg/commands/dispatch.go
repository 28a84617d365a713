package commands

import (
	"strings"

	"github.com/arthur-debert/cursorrules/pkg/config"
	"github.com/arthur-debert/cursorrules/pkg/errors"
	"github.com/arthur-debert/cursorrules/pkg/filesystem"
	"github.com/arthur-debert/cursorrules/pkg/logging"
	"github.com/arthur-debert/cursorrules/pkg/paths"
	"github.com/arthur-debert/cursorrules/pkg/registry"
)

// CommandType enumerates the supported commands
type CommandType int

const (
	CommandInit CommandType = iota
	CommandStatus
	CommandList
	CommandConfig
	CommandHelp
)

var commandNames = [...]string{
	CommandInit:   "init",
	CommandStatus: "status",
	CommandList:   "list",
	CommandConfig: "config",
	CommandHelp:   "help",
}

// String returns the command's CLI name
func (c CommandType) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// AllCommands returns every command in declaration order
func AllCommands() []CommandType {
	all := make([]CommandType, len(commandNames))
	for i := range commandNames {
		all[i] = CommandType(i)
	}
	return all
}

// ParseCommandType maps a CLI name to its CommandType.
func ParseCommandType(name string) (CommandType, error) {
	name = strings.TrimSpace(name)
	for i, n := range commandNames {
		if n == name {
			return CommandType(i), nil
		}
	}
	return 0, errors.Newf(errors.ErrUnknownCommand, "unknown command %q", name).
		WithDetail("command", name)
}

// DispatchOptions contains all possible options for commands.
// Each command will use only the fields it needs.
type DispatchOptions struct {
	ProjectDir string
	Config     *config.Config
	Registry   *registry.Registry
	FileSystem filesystem.FS
	Source     paths.Source

	// For init command
	BundleKey   string
	AssumeYes   bool
	Interactive bool
	Chooser     BundleChooser
}

// Result holds the outcome of a dispatched command. Only the field matching
// Command is set.
type Result struct {
	Command CommandType
	Init    *InitResult
	Status  *StatusResult
	List    *ListResult
	Config  *config.Config
}

// Dispatch runs the command identified by cmdType.
func Dispatch(cmdType CommandType, opts DispatchOptions) (*Result, error) {
	logger := logging.GetLogger("commands.dispatch")
	logger.Debug().
		Str("command", cmdType.String()).
		Str("projectDir", opts.ProjectDir).
		Str("bundle", opts.BundleKey).
		Bool("yes", opts.AssumeYes).
		Msg("Dispatching command")

	result := &Result{Command: cmdType}
	var err error

	switch cmdType {
	case CommandInit:
		result.Init, err = Init(InitOptions{
			ProjectDir:  opts.ProjectDir,
			Config:      opts.Config,
			Registry:    opts.Registry,
			FileSystem:  opts.FileSystem,
			Source:      opts.Source,
			BundleKey:   opts.BundleKey,
			AssumeYes:   opts.AssumeYes,
			Interactive: opts.Interactive,
			Chooser:     opts.Chooser,
		})
	case CommandStatus:
		result.Status, err = Status(StatusOptions{
			ProjectDir: opts.ProjectDir,
			Config:     opts.Config,
			Registry:   opts.Registry,
			FileSystem: opts.FileSystem,
		})
	case CommandList:
		result.List = List(ListOptions{Registry: opts.Registry})
	case CommandConfig:
		result.Config = opts.Config
	case CommandHelp:
		// Usage text belongs to the CLI layer.
	default:
		return nil, errors.Newf(errors.ErrUnknownCommand, "unknown command %d", int(cmdType))
	}

	if err != nil {
		return nil, err
	}
	return result, nil
}
