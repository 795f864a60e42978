package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/cropframe/pkg/config"
)

// configCommand prints the effective configuration.
func (c *CLI) configCommand() *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as TOML: built-in defaults merged with
the config file. The output can be saved as a starting config file.`,
		Example: `  cropframe config > ~/.config/cropframe/config.toml
  cropframe config --path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showPath {
				path := c.configPath
				if path == "" {
					p, err := config.Path()
					if err != nil {
						return err
					}
					path = p
				}
				printKeyValue(out, "config", path)
				return nil
			}

			data, err := c.config.Encode()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, "print the config file path instead")

	return cmd
}
