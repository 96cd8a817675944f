package patterns

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/arthur-debert/patterns/internal/version"
	"github.com/arthur-debert/patterns/pkg/config"
	"github.com/arthur-debert/patterns/pkg/encoding"
	"github.com/arthur-debert/patterns/pkg/errors"
	"github.com/arthur-debert/patterns/pkg/logging"
	"github.com/arthur-debert/patterns/pkg/registry"
	"github.com/arthur-debert/patterns/pkg/showcase"
	"github.com/arthur-debert/patterns/pkg/style"
	"github.com/arthur-debert/patterns/pkg/tree"
	"github.com/arthur-debert/patterns/pkg/users"
	"github.com/spf13/cobra"
)

func newUsersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "users [role...]",
		Short:             MsgUsersShort,
		Long:              MsgUsersLong,
		Example:           MsgUsersExample,
		GroupID:           "demo",
		ValidArgsFunction: variantCompletion(users.Variants()),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.LogCommand(cmd.Name(), args)

			s := showcase.New(a.cfg, cmd.OutOrStdout())
			if len(args) == 0 {
				return s.Users()
			}
			return s.UsersFor(args)
		},
	}
}

func newTreeCmd(a *app) *cobra.Command {
	var (
		format  string
		from    string
		neutral bool
	)

	cmd := &cobra.Command{
		Use:     "tree",
		Short:   MsgTreeShort,
		Long:    MsgTreeLong,
		Example: MsgTreeExample,
		GroupID: "demo",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.LogCommand(cmd.Name(), args)

			root, err := loadTree(a.cfg, from)
			if err != nil {
				return err
			}

			cfg := *a.cfg
			if neutral {
				labels := tree.NeutralLabels()
				cfg.Tree.DirectoryLabel = labels.Directory
				cfg.Tree.FileLabel = labels.File
				cfg.Tree.Indent = labels.Indent
			}

			if format == tree.FormatText {
				return showcase.New(&cfg, cmd.OutOrStdout()).TreeFor(root)
			}
			return tree.Export(cmd.OutOrStdout(), root, format, cfg.Labels())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", tree.FormatText, MsgFlagFormat)
	cmd.Flags().StringVar(&from, "from", "", MsgFlagFrom)
	cmd.Flags().BoolVar(&neutral, "neutral", false, MsgFlagNeutral)
	_ = cmd.RegisterFlagCompletionFunc("format", variantCompletion(tree.Variants()))

	return cmd
}

// loadTree builds the tree from a YAML definition file, or the configured
// sample when path is empty
func loadTree(cfg *config.Config, path string) (tree.Component, error) {
	if path == "" {
		return cfg.SampleTree()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(MsgErrOpenTree, err)
	}
	defer func() { _ = f.Close() }()

	spec, err := tree.LoadSpec(f)
	if err != nil {
		return nil, err
	}
	return tree.Build(spec)
}

func newEncodeCmd(a *app) *cobra.Command {
	var (
		strategy string
		decode   bool
	)

	cmd := &cobra.Command{
		Use:     "encode [text...]",
		Short:   MsgEncodeShort,
		Long:    MsgEncodeLong,
		Example: MsgEncodeExample,
		GroupID: "demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.LogCommand(cmd.Name(), args)

			if decode && len(args) == 0 {
				return errors.New(errors.ErrInvalidInput, MsgErrDecodeText)
			}
			samples := encodeInputs(a.cfg, strategy, args)

			if !decode {
				return showcase.New(a.cfg, cmd.OutOrStdout()).EncodingFor(samples)
			}
			return decodeSamples(cmd.OutOrStdout(), samples)
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", MsgFlagStrategy)
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, MsgFlagDecode)
	_ = cmd.RegisterFlagCompletionFunc("strategy", variantCompletion(encoding.Variants()))

	return cmd
}

// encodeInputs pairs every input with a strategy. Without text the
// configured samples are used; an explicit strategy replaces theirs.
func encodeInputs(cfg *config.Config, strategy string, texts []string) []config.Sample {
	if len(texts) == 0 {
		samples := make([]config.Sample, len(cfg.Encoding.Samples))
		copy(samples, cfg.Encoding.Samples)
		if strategy != "" {
			for i := range samples {
				samples[i].Strategy = strategy
			}
		}
		return samples
	}

	if strategy == "" {
		strategy = encoding.StrategyBase64
	}
	samples := make([]config.Sample, 0, len(texts))
	for _, text := range texts {
		samples = append(samples, config.Sample{Strategy: strategy, Text: text})
	}
	return samples
}

func decodeSamples(w io.Writer, samples []config.Sample) error {
	decoded := make([]string, 0, len(samples))
	for _, sample := range samples {
		t, err := encoding.Create(sample.Strategy)
		if err != nil {
			return err
		}
		text, err := encoding.Payload(t, sample.Text)
		if err != nil {
			return err
		}
		decoded = append(decoded, text)
	}

	for _, text := range decoded {
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}

func newAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "all",
		Short:   MsgAllShort,
		GroupID: "demo",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.LogCommand(cmd.Name(), args)
			return showcase.New(a.cfg, cmd.OutOrStdout()).All()
		},
	}
}

func newRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "roles",
		Short:   MsgRolesShort,
		GroupID: "registry",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVariants(cmd.OutOrStdout(), MsgRolesHeader, users.Variants())
		},
	}
}

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "strategies",
		Short:   MsgStrategiesShort,
		GroupID: "registry",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVariants(cmd.OutOrStdout(), MsgStrategiesHeader, encoding.Variants())
		},
	}
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "formats",
		Short:   MsgFormatsShort,
		GroupID: "registry",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVariants(cmd.OutOrStdout(), MsgFormatsHeader, tree.Variants())
		},
	}
}

// printVariants lists the canonical names of v with their aliases
func printVariants[T any](w io.Writer, header string, v *registry.Variants[T]) {
	aliases := make(map[string][]string)
	for _, alias := range v.Aliases() {
		name, err := v.Resolve(alias)
		if err != nil {
			continue
		}
		aliases[name] = append(aliases[name], alias)
	}
	for name := range aliases {
		sort.Strings(aliases[name])
	}

	_, _ = fmt.Fprintln(w, style.RenderHeader(header))
	_, _ = fmt.Fprint(w, style.RenderNames(v.Names(), aliases))
}

// variantCompletion completes canonical names and aliases of v
func variantCompletion[T any](v *registry.Variants[T]) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return append(v.Names(), v.Aliases()...), cobra.ShellCompDirectiveNoFileComp
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
