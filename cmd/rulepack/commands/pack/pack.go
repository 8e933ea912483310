package pack

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/winclean/rulepack/pkg/commands"
	"github.com/winclean/rulepack/pkg/config"
	"github.com/winclean/rulepack/pkg/style"
)

// NewCommand creates the pack command
func NewCommand() *cobra.Command {
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:     "pack",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load("")
			if err != nil {
				return err
			}

			input := cfg.Pack.Input
			if cmd.Flags().Changed("input") {
				input, _ = cmd.Flags().GetString("input")
			}
			output := cfg.Pack.Output
			if cmd.Flags().Changed("output") {
				output, _ = cmd.Flags().GetString("output")
			}
			compression := cfg.Pack.Compress
			if cmd.Flags().Changed("compress") {
				compression, _ = cmd.Flags().GetString("compress")
			}

			result, err := commands.PackRules(commands.PackRulesOptions{
				InputDir:    input,
				OutputPath:  output,
				Compression: compression,
				Glob:        cfg.Patterns.Glob,
			})
			if err != nil {
				return err
			}

			quiet, _ := cmd.Flags().GetBool("quiet")
			renderer := style.NewRenderer(quiet)
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderPackResult(result))
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", defaults.Pack.Input, "Rules directory to pack")
	cmd.Flags().StringP("output", "o", defaults.Pack.Output, "Output package file")
	cmd.Flags().StringP("compress", "c", defaults.Pack.Compress, "Compression algorithm (none, zstd)")

	return cmd
}
