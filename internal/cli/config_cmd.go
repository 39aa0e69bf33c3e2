package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Print the configuration that a scoring run would use: defaults, overlaid
with --config, overlaid with any explicitly set flags. The output is a valid
configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.flags.resolve(cmd)
			if err != nil {
				return err
			}

			return cfg.Encode(cmd.OutOrStdout())
		},
	}
}
