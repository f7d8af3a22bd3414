package catalog

import (
	"github.com/sonic182/hyperstack-api/pkg/hyperstack"

	"github.com/spf13/cobra"
)

func GPUStocksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gpu-stocks",
		Short: "Show current GPU stock levels",
		Long: `Show current GPU stock levels per region.

Example:
  hyperstack catalog gpu-stocks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, "GPU stocks", func(c *hyperstack.Client) (any, error) {
				return c.GetGPUStocks(cmd.Context())
			})
		},
		SilenceUsage: true,
	}
}
