package unpack

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/winclean/rulepack/pkg/commands"
	"github.com/winclean/rulepack/pkg/config"
	"github.com/winclean/rulepack/pkg/style"
)

// NewCommand creates the unpack command
func NewCommand() *cobra.Command {
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:     "unpack",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load("")
			if err != nil {
				return err
			}

			input, _ := cmd.Flags().GetString("input")
			output := cfg.Unpack.Output
			if cmd.Flags().Changed("output") {
				output, _ = cmd.Flags().GetString("output")
			}

			result, err := commands.UnpackRules(commands.UnpackRulesOptions{
				InputPath: input,
				OutputDir: output,
			})
			if err != nil {
				return err
			}

			quiet, _ := cmd.Flags().GetBool("quiet")
			renderer := style.NewRenderer(quiet)
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderUnpackResult(result))
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "Package file to unpack")
	cmd.Flags().StringP("output", "o", defaults.Unpack.Output, "Directory to unpack into")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
