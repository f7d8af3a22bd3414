package catalog

import (
	"fmt"

	"github.com/sonic182/hyperstack-api/internal/format"
	"github.com/sonic182/hyperstack-api/internal/session"
	"github.com/sonic182/hyperstack-api/pkg/hyperstack"

	"github.com/spf13/cobra"
)

// NewCommand returns the "catalog" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse available flavors, images and GPU stock",
		Long: `Browse the Hyperstack catalog.

Catalog queries are read-only and do not require an environment.`,
	}

	cmd.AddCommand(FlavorsCommand())
	cmd.AddCommand(ImagesCommand())
	cmd.AddCommand(GPUStocksCommand())
	cmd.AddCommand(AllCommand())

	return cmd
}

// runQuery is the shared body of the single-endpoint catalog commands.
func runQuery(cmd *cobra.Command, what string, query func(*hyperstack.Client) (any, error)) error {
	client, err := session.FromCommand(cmd)
	if err != nil {
		return err
	}

	result, err := query(client)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", what, err)
	}

	return format.PrintResult(cmd, result)
}
