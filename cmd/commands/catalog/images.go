package catalog

import (
	"github.com/sonic182/hyperstack-api/pkg/hyperstack"

	"github.com/spf13/cobra"
)

func ImagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "images",
		Short: "List available system images",
		Long: `List available system images.

Example:
  hyperstack catalog images`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, "images", func(c *hyperstack.Client) (any, error) {
				return c.GetImages(cmd.Context())
			})
		},
		SilenceUsage: true,
	}
}
