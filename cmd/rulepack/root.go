package rulepack

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/winclean/rulepack/cmd/rulepack/commands/genconfig"
	"github.com/winclean/rulepack/cmd/rulepack/commands/info"
	"github.com/winclean/rulepack/cmd/rulepack/commands/pack"
	"github.com/winclean/rulepack/cmd/rulepack/commands/unpack"
	"github.com/winclean/rulepack/internal/version"
	"github.com/winclean/rulepack/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		quiet     bool
	)

	rootCmd := &cobra.Command{
		Use:     "rulepack",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given: show help but signal incorrect usage.
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, MsgFlagQuiet)

	// Add all commands
	rootCmd.AddCommand(pack.NewCommand())
	rootCmd.AddCommand(unpack.NewCommand())
	rootCmd.AddCommand(info.NewCommand())
	rootCmd.AddCommand(genconfig.NewCommand())

	return rootCmd
}
