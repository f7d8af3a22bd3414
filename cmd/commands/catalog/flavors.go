package catalog

import (
	"github.com/sonic182/hyperstack-api/pkg/hyperstack"

	"github.com/spf13/cobra"
)

func FlavorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "flavors",
		Short: "List available instance flavors",
		Long: `List available instance flavors.

Example:
  hyperstack catalog flavors`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, "flavors", func(c *hyperstack.Client) (any, error) {
				return c.GetFlavors(cmd.Context())
			})
		},
		SilenceUsage: true,
	}
}
