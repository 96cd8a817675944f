package patterns

import (
	"fmt"

	"github.com/arthur-debert/patterns/internal/version"
	"github.com/arthur-debert/patterns/pkg/config"
	"github.com/arthur-debert/patterns/pkg/logging"
	"github.com/arthur-debert/patterns/pkg/showcase"
	"github.com/arthur-debert/patterns/pkg/style"
	"github.com/arthur-debert/patterns/pkg/topics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries the global flag values and the configuration loaded for the
// running command
type app struct {
	verbosity  int
	configPath string
	noColor    bool
	cfg        *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "patterns",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			style.Configure(cmd.OutOrStdout(), a.noColor)

			cfg, err := config.Load(config.LoadOptions{Path: a.configPath})
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			a.cfg = cfg
			return nil
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: the interactive menu
			opts := []showcase.Option{}
			if style.IsTerminal(cmd.InOrStdin()) {
				opts = append(opts, showcase.WithPrompt(cmd.ErrOrStderr()))
			}
			return showcase.New(a.cfg, cmd.OutOrStdout(), opts...).Interact(cmd.InOrStdin())
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)

	// Disable automatic help command (we'll use our custom one from topics)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "demo",
		Title: "DEMONSTRATIONS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "registry",
		Title: "REGISTRIES:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newUsersCmd(a))
	rootCmd.AddCommand(newTreeCmd(a))
	rootCmd.AddCommand(newEncodeCmd(a))
	rootCmd.AddCommand(newAllCmd(a))
	rootCmd.AddCommand(newRolesCmd())
	rootCmd.AddCommand(newStrategiesCmd())
	rootCmd.AddCommand(newFormatsCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize topic-based help system from the embedded topics
	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, topics.Builtin(), opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}
