package catalog

import (
	"fmt"

	"github.com/sonic182/hyperstack-api/internal/format"
	"github.com/sonic182/hyperstack-api/internal/session"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func AllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Fetch flavors, images and GPU stock in one call",
		Long: `Fetch flavors, images and GPU stock concurrently and print them
as a single document keyed by section.

Example:
  hyperstack catalog all`,
		RunE:         runAll,
		SilenceUsage: true,
	}
}

func runAll(cmd *cobra.Command, args []string) error {
	client, err := session.FromCommand(cmd)
	if err != nil {
		return err
	}

	var flavors, images, stocks any
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		flavors, err = client.GetFlavors(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		images, err = client.GetImages(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stocks, err = client.GetGPUStocks(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to fetch catalog: %w", err)
	}

	return format.PrintResult(cmd, map[string]any{
		"flavors":    flavors,
		"images":     images,
		"gpu_stocks": stocks,
	})
}
