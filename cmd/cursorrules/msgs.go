package cursorrules

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort   = "Install curated Cursor IDE rules into a project"
	MsgInitShort   = "Install a rule bundle into the project"
	MsgStatusShort = "Show which rules are installed"
	MsgListShort   = "List available rules and bundles"
	MsgConfigShort = "Print the effective configuration"
	MsgHelpShort   = "Help about any command"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDir     = "Project directory (default is the working directory)"
	MsgFlagNoColor = "Disable coloured output"
	MsgFlagBundle  = "Bundle to install (minimal, standard, complete or its number)"
	MsgFlagYes     = "Install the default bundle without prompting"

	// Topics
	MsgTopicsHeader = "Rules you can read with 'cursorrules help <rule>':"
	MsgTopicsFooter = "Rule text comes from the same source init installs from."

	// Hints
	MsgUsageHint = "Run 'cursorrules --help' for usage."

	// Error messages
	MsgErrInit   = "failed to install rules: %w"
	MsgErrStatus = "failed to check rules: %w"
	MsgErrSetup  = "failed to prepare run: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/status-example.txt
	msgStatusExampleRaw string
	MsgStatusExample    = strings.TrimRight(msgStatusExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/config-example.txt
	msgConfigExampleRaw string
	MsgConfigExample    = strings.TrimRight(msgConfigExampleRaw, "\n")

	//go:embed msgs/help-long.txt
	msgHelpLongRaw string
	MsgHelpLong    = strings.TrimSpace(msgHelpLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
