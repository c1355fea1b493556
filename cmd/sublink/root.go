// Package sublink wires the CLI together. The actual work lives in
// pkg/; commands here only resolve paths and configuration, run one
// operation and render its result.
package sublink

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/sublink/internal/version"
	"github.com/arthur-debert/sublink/pkg/catalog"
	"github.com/arthur-debert/sublink/pkg/config"
	"github.com/arthur-debert/sublink/pkg/logging"
	"github.com/arthur-debert/sublink/pkg/paths"
	"github.com/arthur-debert/sublink/pkg/types"
)

// rootFlags holds the persistent flag values shared by all commands.
type rootFlags struct {
	verbosity int
	source    string
	target    string
}

// NewRootCmd creates the sublink root command with all subcommands.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "sublink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given; show help.
			return cmd.Help()
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&flags.source, "source", "", MsgFlagSource)
	rootCmd.PersistentFlags().StringVar(&flags.target, "target", "", MsgFlagTarget)

	rootCmd.AddCommand(newInstallCmd(flags))
	rootCmd.AddCommand(newStatusCmd(flags))
	rootCmd.AddCommand(newListCmd(flags))
	rootCmd.AddCommand(newCheckCmd(flags))
	rootCmd.AddCommand(newGenConfigCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// resolve builds the paths, configuration and catalog for the given
// flag values. Every command that touches the catalog goes through it.
func resolve(flags *rootFlags) (*paths.Paths, []types.LinkEntry, error) {
	p, err := paths.New(flags.source, flags.target)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(p.SourceRoot())
	if err != nil {
		return nil, nil, err
	}

	return p, catalog.Build(cfg, p), nil
}
