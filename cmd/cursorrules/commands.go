package cursorrules

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/cursorrules/internal/version"
	"github.com/arthur-debert/cursorrules/pkg/cobrax/topics"
	"github.com/arthur-debert/cursorrules/pkg/commands"
	"github.com/arthur-debert/cursorrules/pkg/config"
	"github.com/arthur-debert/cursorrules/pkg/errors"
	"github.com/arthur-debert/cursorrules/pkg/filesystem"
	"github.com/arthur-debert/cursorrules/pkg/logging"
	"github.com/arthur-debert/cursorrules/pkg/output"
	"github.com/arthur-debert/cursorrules/pkg/paths"
	"github.com/arthur-debert/cursorrules/pkg/prompt"
	"github.com/arthur-debert/cursorrules/pkg/registry"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const topicsKeyword = "topics"

// app holds the global flags shared by every command.
type app struct {
	verbosity int
	dir       string
	noColor   bool

	// isTerminal reports whether the prompt may read from in.
	isTerminal func(in io.Reader) bool
}

// commandBuilders has one entry per commands.CommandType.
var commandBuilders = map[commands.CommandType]func(a *app) *cobra.Command{
	commands.CommandInit:   newInitCmd,
	commands.CommandStatus: newStatusCmd,
	commands.CommandList:   newListCmd,
	commands.CommandConfig: newConfigCmd,
	commands.CommandHelp:   newHelpCmd,
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{isTerminal: readerIsTerminal})
}

func newRootCmd(a *app) *cobra.Command {
	initTemplateFormatting()

	var (
		bundle string
		yes    bool
	)

	rootCmd := &cobra.Command{
		Use:     "cursorrules",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity, a.noColor)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation installs, anything else is not a command we know.
			if len(args) > 0 {
				_, err := commands.ParseCommandType(args[0])
				return err
			}
			return a.runInit(cmd, bundle, yes)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.dir, "dir", "", MsgFlagDir)
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)

	// init is the default command, so its flags work without naming it.
	rootCmd.Flags().StringVarP(&bundle, "bundle", "b", "", MsgFlagBundle)
	rootCmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)

	rootCmd.SetVersionTemplate(version.Info() + "\n")
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	for _, ct := range commands.AllCommands() {
		cmd := commandBuilders[ct](a)
		if ct == commands.CommandHelp {
			rootCmd.SetHelpCommand(cmd)
			continue
		}
		rootCmd.AddCommand(cmd)
	}

	return rootCmd
}

func newInitCmd(a *app) *cobra.Command {
	var (
		bundle string
		yes    bool
	)

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd, bundle, yes)
		},
	}

	cmd.Flags().StringVarP(&bundle, "bundle", "b", "", MsgFlagBundle)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)

	return cmd
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := a.prepare(cmd)
			if err != nil {
				return err
			}

			result, err := commands.Dispatch(commands.CommandStatus, run.options())
			if err != nil {
				return fmt.Errorf(MsgErrStatus, err)
			}

			run.renderer.RenderStatus(result.Status)
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Long:  MsgListLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.Default()
			if err != nil {
				return err
			}
			renderer, err := output.NewRenderer(cmd.OutOrStdout(), output.ColorEnabled(cmd.OutOrStdout(), a.noColor))
			if err != nil {
				return err
			}

			result, err := commands.Dispatch(commands.CommandList, commands.DispatchOptions{Registry: reg})
			if err != nil {
				return err
			}
			return renderer.RenderList(result.List)
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Example: MsgConfigExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := a.prepare(cmd)
			if err != nil {
				return err
			}

			result, err := commands.Dispatch(commands.CommandConfig, run.options())
			if err != nil {
				return err
			}
			return run.renderer.RenderConfig(result.Config)
		},
	}
}

func newHelpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "help [command or rule]",
		Short: MsgHelpShort,
		Long:  MsgHelpLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, rest, err := cmd.Root().Find(args)
			if err == nil && len(rest) == 0 {
				target.InitDefaultHelpFlag()
				target.InitDefaultVersionFlag()
				return target.Help()
			}
			if len(args) == 0 {
				return err
			}
			return a.showTopic(cmd, args[0])
		},
	}
}

// showTopic prints a rule file, or the list of rules for "topics".
func (a *app) showTopic(cmd *cobra.Command, name string) error {
	run, err := a.prepareWithSource(cmd)
	if err != nil {
		return err
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if run.color {
		renderer = topics.NewGlamourRenderer()
	}
	tm := topics.NewWithOptions(run.source.FS, run.source.Dir, topics.Options{
		Extensions: []string{".mdc"},
		Renderer:   renderer,
	})
	if err := tm.Scan(); err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read rules from %s", run.source.Origin)
	}

	out := cmd.OutOrStdout()
	if name == topicsKeyword {
		names := tm.ListTopics()
		width := 0
		for _, n := range names {
			width = max(width, len(n))
		}
		fmt.Fprintln(out, MsgTopicsHeader)
		for _, n := range names {
			fmt.Fprintf(out, "  %-*s  %s\n", width, n, run.registry.DescribeRule(n+".mdc"))
		}
		fmt.Fprintf(out, "\n%s\n", MsgTopicsFooter)
		return nil
	}

	topic, ok := tm.GetTopic(name)
	if !ok {
		_, err := commands.ParseCommandType(name)
		return err
	}
	fmt.Fprint(out, tm.Render(topic))
	return nil
}

func (a *app) runInit(cmd *cobra.Command, bundle string, yes bool) error {
	run, err := a.prepareWithSource(cmd)
	if err != nil {
		return err
	}

	opts := run.options()
	opts.BundleKey = bundle
	opts.AssumeYes = yes
	opts.Interactive = a.isTerminal(cmd.InOrStdin())
	opts.Chooser = prompt.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())

	log.Info().
		Str("project", run.projectDir).
		Str("source", run.source.Origin).
		Msg("Installing rules")

	result, err := commands.Dispatch(commands.CommandInit, opts)
	if err != nil {
		return fmt.Errorf(MsgErrInit, err)
	}

	run.renderer.RenderInit(result.Init, run.registry)
	return nil
}

// runEnv is everything a command needs once flags are parsed.
type runEnv struct {
	projectDir string
	config     *config.Config
	registry   *registry.Registry
	// source is only resolved for commands that read rule files.
	source     paths.Source
	color      bool
	renderer   *output.Renderer
}

func (a *app) prepare(cmd *cobra.Command) (*runEnv, error) {
	projectDir, err := paths.ProjectDir(a.dir)
	if err != nil {
		return nil, fmt.Errorf(MsgErrSetup, err)
	}

	var overrides map[string]interface{}
	if a.noColor {
		overrides = map[string]interface{}{config.KeyNoColor: true}
	}
	cfg, err := config.Load(projectDir, overrides)
	if err != nil {
		return nil, fmt.Errorf(MsgErrSetup, err)
	}
	if cfg.NoColor && !a.noColor {
		logging.SetupLogger(a.verbosity, true)
	}

	reg, err := registry.Default()
	if err != nil {
		return nil, fmt.Errorf(MsgErrSetup, err)
	}

	out := cmd.OutOrStdout()
	color := output.ColorEnabled(out, cfg.NoColor)
	renderer, err := output.NewRenderer(out, color)
	if err != nil {
		return nil, fmt.Errorf(MsgErrSetup, err)
	}

	log.Debug().
		Str("project", projectDir).
		Str("target", cfg.TargetPath(projectDir)).
		Msg("Run prepared")

	return &runEnv{
		projectDir: projectDir,
		config:     cfg,
		registry:   reg,
		color:      color,
		renderer:   renderer,
	}, nil
}

// prepareWithSource is prepare plus the rule source, for the commands that
// read rule files.
func (a *app) prepareWithSource(cmd *cobra.Command) (*runEnv, error) {
	run, err := a.prepare(cmd)
	if err != nil {
		return nil, err
	}

	run.source, err = paths.ResolveSource(run.config.SourceDir)
	if err != nil {
		return nil, fmt.Errorf(MsgErrSetup, err)
	}
	log.Debug().Str("source", run.source.Origin).Msg("Rule source resolved")
	return run, nil
}

func (r *runEnv) options() commands.DispatchOptions {
	return commands.DispatchOptions{
		ProjectDir: r.projectDir,
		Config:     r.config,
		Registry:   r.registry,
		FileSystem: filesystem.NewOS(),
		Source:     r.source,
	}
}

func readerIsTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
