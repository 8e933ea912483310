package info

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/winclean/rulepack/pkg/commands"
	"github.com/winclean/rulepack/pkg/style"
)

// NewCommand creates the info command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "info",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")

			result, err := commands.ShowInfo(commands.ShowInfoOptions{InputPath: input})
			if err != nil {
				return err
			}

			quiet, _ := cmd.Flags().GetBool("quiet")
			renderer := style.NewRenderer(quiet)
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderInfoResult(result))
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "Package file to inspect")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
