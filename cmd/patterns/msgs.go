package patterns

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A showcase of the Factory Method, Composite and Strategy patterns"
	MsgUsersShort      = "Create users by role and describe them"
	MsgTreeShort       = "Render a file system tree"
	MsgEncodeShort     = "Encode text with a strategy"
	MsgAllShort        = "Run every demonstration in order"
	MsgRolesShort      = "List the registered user roles"
	MsgStrategiesShort = "List the registered encoding strategies"
	MsgFormatsShort    = "List the tree export formats"
	MsgGenConfigShort  = "Print a commented default configuration file"
	MsgGenConfigLong   = "Print the built-in configuration with every value commented out.\n\nSave the output as the user config file and uncomment what you want to change."
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that explain the patterns behind each command."
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgRolesHeader      = "Roles:"
	MsgStrategiesHeader = "Strategies:"
	MsgFormatsHeader    = "Formats:"
	MsgVersionFormat    = "patterns version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrOpenTree   = "failed to open tree definition: %w"
	MsgErrDecodeText = "--decode needs at least one encoded text"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Path to a TOML config file (default $XDG_CONFIG_HOME/patterns/config.toml)"
	MsgFlagNoColor  = "Disable colored output"
	MsgFlagFormat   = "Output format (text, xml, yaml, toml)"
	MsgFlagFrom     = "Read the tree from a YAML definition file"
	MsgFlagNeutral  = "Use Node:/Leaf: labels instead of the configured ones"
	MsgFlagStrategy = "Encoding strategy to apply to every input"
	MsgFlagDecode   = "Decode encoded input instead of encoding it"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/users-long.txt
	msgUsersLongRaw string
	MsgUsersLong    = strings.TrimSpace(msgUsersLongRaw)

	//go:embed msgs/users-example.txt
	msgUsersExampleRaw string
	MsgUsersExample    = strings.TrimRight(msgUsersExampleRaw, "\n")

	//go:embed msgs/tree-long.txt
	msgTreeLongRaw string
	MsgTreeLong    = strings.TrimSpace(msgTreeLongRaw)

	//go:embed msgs/tree-example.txt
	msgTreeExampleRaw string
	MsgTreeExample    = strings.TrimRight(msgTreeExampleRaw, "\n")

	//go:embed msgs/encode-long.txt
	msgEncodeLongRaw string
	MsgEncodeLong    = strings.TrimSpace(msgEncodeLongRaw)

	//go:embed msgs/encode-example.txt
	msgEncodeExampleRaw string
	MsgEncodeExample    = strings.TrimRight(msgEncodeExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
