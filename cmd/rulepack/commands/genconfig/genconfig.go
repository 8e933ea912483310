package genconfig

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/winclean/rulepack/pkg/config"
)

const configFileName = ".rulepack.toml"

// NewCommand creates the genconfig command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := toml.Marshal(config.Default())
			if err != nil {
				return fmt.Errorf("cannot marshal default configuration: %w", err)
			}

			write, _ := cmd.Flags().GetBool("write")
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), string(content))
				return nil
			}

			if err := os.WriteFile(configFileName, content, 0644); err != nil {
				return fmt.Errorf("cannot write %s: %w", configFileName, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().Bool("write", false, "Write the configuration to "+configFileName)

	return cmd
}
