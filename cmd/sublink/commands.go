package sublink

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/sublink/internal/version"
	"github.com/arthur-debert/sublink/pkg/config"
	"github.com/arthur-debert/sublink/pkg/errors"
	"github.com/arthur-debert/sublink/pkg/filesystem"
	"github.com/arthur-debert/sublink/pkg/linker"
	"github.com/arthur-debert/sublink/pkg/logging"
	"github.com/arthur-debert/sublink/pkg/output"
	"github.com/arthur-debert/sublink/pkg/syntaxcheck"
)

func newInstallCmd(flags *rootFlags) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: MsgInstallShort,
		Long:  MsgInstallLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.install")

			p, entries, err := resolve(flags)
			if err != nil {
				return err
			}

			// The precondition runs before any mutation. With an
			// explicit --source or SUBLINK_ROOT it is a no-op.
			if err := p.CheckWorkingDir(); err != nil {
				return err
			}

			logger.Info().
				Str("sourceRoot", p.SourceRoot()).
				Str("packagesDir", p.PackagesDir()).
				Int("entries", len(entries)).
				Bool("dryRun", dryRun).
				Msg("starting install")

			result := linker.New(filesystem.NewOS(), dryRun).Install(entries)

			fmt.Fprintln(cmd.OutOrStdout(), output.NewRenderer().RenderInstall(result))

			if !result.Ok() {
				return errors.Newf(errors.ErrSymlinkCreate,
					"%d of %d entries failed", result.FailureCount(), len(result.Results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	return cmd
}

func newStatusCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Long:  MsgStatusLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, entries, err := resolve(flags)
			if err != nil {
				return err
			}

			statuses := linker.New(filesystem.NewOS(), false).Status(entries)
			fmt.Fprintln(cmd.OutOrStdout(), output.NewRenderer().RenderStatus(statuses))
			return nil
		},
	}
}

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, entries, err := resolve(flags)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), output.NewRenderer().RenderCatalog(entries))
			return nil
		},
	}
}

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, entries, err := resolve(flags)
			if err != nil {
				return err
			}

			results := syntaxcheck.Check(filesystem.NewOS(), entries)
			fmt.Fprintln(cmd.OutOrStdout(), output.NewRenderer().RenderCheck(results))

			for _, res := range results {
				if res.Err != nil {
					return errors.New(errors.ErrSyntaxParse, "one or more syntax definitions failed to parse")
				}
			}
			return nil
		},
	}
}

func newGenConfigCmd(flags *rootFlags) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := resolve(flags)
			if err != nil {
				return err
			}

			cfg, err := config.Load(p.SourceRoot())
			if err != nil {
				return err
			}

			data, err := toml.Marshal(cfg)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "cannot marshal config")
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}

			path := p.SourcePath(config.ConfigFileNames[0])
			if err := os.WriteFile(path, data, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad, "cannot write %s", path)
			}
			log.Info().Str("path", path).Msg("wrote config template")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sublink version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}
